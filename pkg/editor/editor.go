// Package editor is the command surface the rendering layer drives. It
// holds the current document snapshot, routes UI events to the sheet
// operations and swaps in the resulting snapshot. It contains no business
// logic of its own.
//
// An Editor is not safe for concurrent use; events are expected one at a
// time, each fully applied before the next.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pluqqy/pluqqy-ledger/pkg/sheet"
)

// FieldKind identifies which editable text region lost focus.
type FieldKind int

const (
	CellField FieldKind = iota
	TableTitleField
	TabNameField
)

func (k FieldKind) String() string {
	switch k {
	case CellField:
		return "cell"
	case TableTitleField:
		return "table title"
	case TabNameField:
		return "tab name"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field addresses an editable text region. TableID, Row and Col are used
// for cells, TableID for titles and TabIndex for tab names.
type Field struct {
	Kind     FieldKind
	TableID  string
	TabIndex int
	Row      int
	Col      int
}

// Editor owns the current snapshot.
type Editor struct {
	doc     sheet.Document
	logger  *slog.Logger
	session string
}

// New returns an editor over doc. A nil logger discards.
func New(doc sheet.Document, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	session := uuid.NewString()
	return &Editor{
		doc:     doc,
		logger:  logger.With("session", session),
		session: session,
	}
}

// Session returns the id that tags this editor's log records.
func (e *Editor) Session() string {
	return e.session
}

// Document returns the current snapshot.
func (e *Editor) Document() sheet.Document {
	return e.doc
}

// GrandTotal is the total of every table in every tab.
func (e *Editor) GrandTotal() decimal.Decimal {
	return sheet.ComputeDocumentTotal(e.doc)
}

// TableTotal is the footer total of one table.
func (e *Editor) TableTotal(tableID string) decimal.Decimal {
	t, ok := e.doc.FindTable(tableID)
	if !ok {
		return decimal.Zero
	}
	return sheet.ComputeTotal(t)
}

// apply swaps in next unless err is set.
func (e *Editor) apply(op string, next sheet.Document, err error, attrs ...any) error {
	if err != nil {
		e.logger.Warn("command rejected", append([]any{"op", op, "error", err}, attrs...)...)
		return err
	}
	e.doc = next
	e.logger.Debug("command applied", append([]any{"op", op}, attrs...)...)
	return nil
}

// OnSelectTab switches the displayed tab.
func (e *Editor) OnSelectTab(index int) error {
	next, err := e.doc.SwitchTab(index)
	return e.apply("select tab", next, err, "index", index)
}

// OnBlurEditableField commits the text of a field that lost focus.
func (e *Editor) OnBlurEditableField(f Field, text string) error {
	var (
		next sheet.Document
		err  error
	)
	switch f.Kind {
	case CellField:
		next, err = e.doc.EditCell(f.TableID, f.Row, f.Col, text)
	case TableTitleField:
		next, err = e.doc.RenameTableTitle(f.TableID, text)
	case TabNameField:
		next, err = e.doc.RenameTabName(f.TabIndex, text)
	default:
		return fmt.Errorf("unknown field kind %v", f.Kind)
	}
	return e.apply("commit "+f.Kind.String(), next, err, "table", f.TableID, "row", f.Row, "col", f.Col)
}

// AddRow appends a blank row to a table of the active tab.
func (e *Editor) AddRow(tableID string) error {
	next, err := e.doc.AddRow(tableID)
	return e.apply("add row", next, err, "table", tableID)
}

// RemoveRow deletes a row of a table of the active tab.
func (e *Editor) RemoveRow(tableID string, index int) error {
	next, err := e.doc.RemoveRow(tableID, index)
	return e.apply("remove row", next, err, "table", tableID, "row", index)
}

// AddColumn appends a column to a table of the active tab.
func (e *Editor) AddColumn(tableID, name string) error {
	next, err := e.doc.AddColumn(tableID, name)
	return e.apply("add column", next, err, "table", tableID)
}

// AddTable appends a default table to a tab.
func (e *Editor) AddTable(tabID string) error {
	next, err := e.doc.AddTable(tabID)
	return e.apply("add table", next, err, "tab", tabID)
}

// AddTab appends a tab and makes it active.
func (e *Editor) AddTab() {
	_ = e.apply("add tab", e.doc.AddTab(), nil)
}
