package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const x86 = "../../regfile/testdata/x86.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// rowFields splits the table row for the given first cell into its cells.
func rowFields(out, first string) []string {
	for _, line := range strings.Split(out, "\n") {
		cells := strings.FieldsFunc(line, func(r rune) bool { return r == '|' })
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if len(cells) > 0 && cells[0] == first {
			return cells
		}
	}
	return nil
}

func TestOverlap(t *testing.T) {
	out, err := run(t, "--regfile", x86, "overlap", "eax", "ah")
	require.NoError(t, err)
	assert.Equal(t, []string{"eax", "ah", "true", "true", "8"}, rowFields(out, "eax"))
	assert.Equal(t, []string{"ah", "eax", "true", "false", "-1"}, rowFields(out, "ah"))

	out, err = run(t, "--regfile", x86, "overlap", "stack:4:4", "stack:7:1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Stack+0004", "Stack+0007", "true", "true", "3"}, rowFields(out, "Stack+0004"))
}

func TestMatrix(t *testing.T) {
	out, err := run(t, "--regfile", x86, "matrix", "al", "ah", "ax", "fpu:0", "fpu:1")
	require.NoError(t, err)
	assert.Equal(t, []string{"al", "=", ".", "O", ".", "."}, rowFields(out, "al"))
	assert.Equal(t, []string{"ax", "C", "C", "=", ".", "."}, rowFields(out, "ax"))
	assert.Equal(t, []string{"ST(1)", ".", ".", ".", ".", "="}, rowFields(out, "ST(1)"))
}

func TestOrder(t *testing.T) {
	out, err := run(t, "--regfile", x86, "order", "ebx", "cl", "tmp:0:32", "eax", "dx")
	require.NoError(t, err)

	assert.Less(t, strings.Index(out, "| eax"), strings.Index(out, "| dx"))
	assert.Less(t, strings.Index(out, "| dx"), strings.Index(out, "| cl"))
	assert.Less(t, strings.Index(out, "| cl"), strings.Index(out, "| ebx"))
	assert.Less(t, strings.Index(out, "| ebx"), strings.Index(out, "| tmp0"))
	assert.Equal(t, []string{"cl", "r1", "2"}, rowFields(out, "cl"))
	assert.Equal(t, []string{"ebx", "r3", "-"}, rowFields(out, "ebx"))
}

func TestConfigFile(t *testing.T) {
	abs, err := filepath.Abs(x86)
	require.NoError(t, err)

	cfg := filepath.Join(t.TempDir(), "stgquery.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("regfile: "+abs+"\n"), 0o600))

	out, err := run(t, "--config", cfg, "overlap", "SZC", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"SZC", "C", "true", "true", "0"}, rowFields(out, "SZC"))
}

func TestErrors(t *testing.T) {
	_, err := run(t, "overlap", "eax", "ah")
	assert.Error(t, err, "missing register file")

	_, err = run(t, "--regfile", x86, "overlap", "eax", "r99")
	assert.Error(t, err)

	_, err = run(t, "--regfile", x86, "--log.level", "LOUD", "order", "eax")
	assert.Error(t, err)
}
