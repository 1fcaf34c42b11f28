package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickymagner/ast-calc/internal/config"
)

func TestEvalLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EvalLine(&buf, "1+2*3", false, config.ViewHierarchy))
	assert.Equal(t, "The expression evaluates to: 7\n", buf.String())
}

func TestEvalLineAST(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EvalLine(&buf, "1+2*3", true, config.ViewHierarchy))
	want := strings.Join([]string{
		"Here is the AST for your expression:",
		"└── +",
		"    ├── 1",
		"    └── *",
		"        ├── 2",
		"        └── 3",
		"The expression evaluates to: 7",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestEvalLineGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EvalLine(&buf, "5", true, config.ViewGrid))
	want := strings.Join([]string{
		"Here is the AST for your expression:",
		" 5 ",
		"   ",
		"The expression evaluates to: 5",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestEvalLineErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, EvalLine(&buf, "1 $", false, config.ViewHierarchy))
	assert.Empty(t, buf.String())

	buf.Reset()
	assert.Error(t, EvalLine(&buf, "1+", false, config.ViewHierarchy))
	assert.Empty(t, buf.String())
}

func TestIsExit(t *testing.T) {
	for _, line := range []string{"exit", "quit", "q", "  exit  ", "\tq\n"} {
		assert.True(t, isExit(line), "line %q", line)
	}
	for _, line := range []string{"", "exit now", "quit()", "Q", "1+1"} {
		assert.False(t, isExit(line), "line %q", line)
	}
}

func TestNewHistoryPath(t *testing.T) {
	cfg := config.Default()
	cfg.History = "/tmp/custom_history"
	assert.Equal(t, "/tmp/custom_history", New(cfg).hist)

	t.Setenv("HOME", t.TempDir())
	cfg.History = ""
	s := New(cfg)
	assert.Equal(t, historyFile, filepath.Base(s.hist))
}

func TestHistoryRoundTrip(t *testing.T) {
	hist := filepath.Join(t.TempDir(), "hist")
	s := &Session{cfg: config.Default(), hist: hist}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.AppendHistory("1+1")
	ln.AppendHistory("2*3")
	s.saveHistory(ln)

	data, err := os.ReadFile(hist)
	require.NoError(t, err)
	assert.Equal(t, "1+1\n2*3\n", string(data))

	ln2 := liner.NewLiner()
	defer ln2.Close()
	s.loadHistory(ln2)
	var buf bytes.Buffer
	_, err = ln2.WriteHistory(&buf)
	require.NoError(t, err)
	assert.Equal(t, "1+1\n2*3\n", buf.String())
}
