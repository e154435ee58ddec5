package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-ledger/internal/cli"
)

// runLedger executes the root command in a fresh working directory and
// returns what it wrote to stdout, the print helpers included.
func runLedger(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cli.SetStreams(&out, &errOut, strings.NewReader(input))
	t.Cleanup(func() {
		cli.SetStreams(os.Stdout, os.Stderr, os.Stdin)
	})

	root, opts := newRootCommand("1.2.3")
	t.Cleanup(opts.close)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// inTempDir moves the test into an empty directory without LEDGER_
// variables or NO_COLOR leaking in from the environment.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "LEDGER_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	return dir
}

func writeSettings(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
