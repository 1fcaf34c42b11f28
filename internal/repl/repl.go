// Package repl runs the interactive read-eval-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	astcalc "github.com/rickymagner/ast-calc"
	"github.com/rickymagner/ast-calc/internal/config"
	"github.com/rickymagner/ast-calc/internal/log"
)

const (
	banner      = "Type exit or quit to stop the program!"
	historyFile = ".astcalc_history"
)

var exitCommands = map[string]bool{
	"exit": true,
	"quit": true,
	"q":    true,
}

// isExit reports whether the line is an exit command. Surrounding
// whitespace is ignored, but the command itself must be the whole line.
func isExit(line string) bool {
	return exitCommands[strings.TrimSpace(line)]
}

// Session is an interactive calculator session.
type Session struct {
	cfg  *config.Config
	hist string
}

// New creates a session from the configuration. The history file defaults
// to a dotfile in the user's home directory.
func New(cfg *config.Config) *Session {
	hist := cfg.History
	if hist == "" {
		if home, err := os.UserHomeDir(); err == nil {
			hist = filepath.Join(home, historyFile)
		}
	}
	return &Session{cfg: cfg, hist: hist}
}

// Run prompts for expressions until EOF or an exit command. Input errors
// are reported and the loop continues; only terminal failures end it.
func (s *Session) Run() error {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	s.loadHistory(ln)
	defer s.saveHistory(ln)

	for {
		line, err := ln.Prompt(s.cfg.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}

		if isExit(line) {
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if err := EvalLine(os.Stdout, line, s.cfg.AST, s.cfg.View); err != nil {
			log.Errorf("%v", err)
		}
	}
}

func (s *Session) loadHistory(ln *liner.State) {
	if s.hist == "" {
		return
	}
	f, err := os.Open(s.hist)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err := ln.ReadHistory(f); err != nil {
		log.Debugf("cannot read history %s: %v", s.hist, err)
	}
}

func (s *Session) saveHistory(ln *liner.State) {
	if s.hist == "" {
		return
	}
	f, err := os.Create(s.hist)
	if err != nil {
		log.Debugf("cannot save history %s: %v", s.hist, err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Debugf("cannot write history %s: %v", s.hist, err)
	}
}

// EvalLine parses and evaluates a single expression, writing the rendered
// tree (when ast is set) and the result to w. view selects the rendering,
// config.ViewHierarchy or config.ViewGrid.
func EvalLine(w io.Writer, line string, ast bool, view string) error {
	a, err := astcalc.Parse(line)
	if err != nil {
		return err
	}
	if ast {
		fmt.Fprintln(w, "Here is the AST for your expression:")
		if view == config.ViewGrid {
			fmt.Fprint(w, a.Grid())
		} else {
			fmt.Fprint(w, a.Hierarchy())
		}
	}
	v, err := a.Eval()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The expression evaluates to: %g\n", v)
	return nil
}
