package sheet

import (
	"regexp"
	"strings"

	"github.com/pluqqy/pluqqy-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]+`)
	leadingNumber = regexp.MustCompile(`^-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)`)
)

// ParseAmount reads a monetary cell. Every character other than a digit,
// '.' or '-' is dropped, then the longest leading decimal literal is
// parsed: "$23,631" is 23631, "1.2.3" is 1.2 and "12-3" is 12. Anything
// without a leading number, including the empty string, is zero.
func ParseAmount(s string) decimal.Decimal {
	literal := leadingNumber.FindString(nonNumeric.ReplaceAllString(s, ""))
	if literal == "" {
		return decimal.Zero
	}
	literal = strings.TrimSuffix(literal, ".")
	if strings.HasPrefix(literal, "-.") {
		literal = "-0" + literal[1:]
	} else if strings.HasPrefix(literal, ".") {
		literal = "0" + literal
	}
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeTotal sums the first column named ValueColumn over every row,
// rounded half away from zero to two places. A table without that column
// totals zero.
func ComputeTotal(t models.Table) decimal.Decimal {
	col := t.ColumnIndex(ValueColumn)
	if col < 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range t.Rows {
		if col < len(r.Values) {
			sum = sum.Add(ParseAmount(r.Values[col]))
		}
	}
	return sum.Round(2)
}

// ComputeDocumentTotal sums ComputeTotal over every table of every tab,
// not only the active one.
func ComputeDocumentTotal(d Document) decimal.Decimal {
	sum := decimal.Zero
	for _, tab := range d.tabs {
		for _, t := range tab.Tables {
			sum = sum.Add(ComputeTotal(t))
		}
	}
	return sum.Round(2)
}

// FormatAmount renders d with two decimals behind the currency symbol,
// e.g. "$23,741.00". The sign goes before the symbol.
func FormatAmount(d decimal.Decimal, currency string, grouped bool) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	digits := d.StringFixed(2)
	if grouped {
		digits = groupThousands(digits)
	}
	return sign + currency + digits
}

// groupThousands puts a comma between every three digits of the integer
// part of an unsigned fixed-point literal.
func groupThousands(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
