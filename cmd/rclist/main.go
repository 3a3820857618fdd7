package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/tcard/rclist/internal/session"
)

const (
	appName     = "rclist"
	historyFile = ".rclist_history"
	prompt      = "rclist> "
	banner      = "rclist: shared persistent lists. Ctrl+D to exit, \"help\" for commands."
)

func main() {
	var script string
	flag.StringVar(&script, "e", "", "run the given ;-separated commands and exit")
	flag.Parse()

	if script != "" {
		os.Exit(runScript(script))
	}
	os.Exit(runREPL())
}

func runScript(script string) int {
	s := session.New()
	defer s.Close()
	for _, line := range strings.Split(script, ";") {
		out, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
			return 1
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return 0
}

func runREPL() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s := session.New()
	defer s.Close()

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Println()
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		ln.AppendHistory(line)

		out, err := s.Exec(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if out != "" {
			fmt.Println(strings.TrimRight(out, "\n"))
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}
