package main

import (
	"io"
	"os"

	"github.com/shu-go/git-cxlint/source"
)

type checkCmd struct {
}

// Run validates a single message, as a commit-msg hook does.
// Without a file argument, or with "-", the message is read from stdin.
func (c checkCmd) Run(g globalCmd, args []string) error {
	var r io.Reader = os.Stdin
	if len(args) > 0 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	msg, err := source.ReadMessage(r)
	if err != nil {
		return err
	}

	log := g.logger()
	count := lint([]string{msg}, g.config("", log), &consoleSink{w: os.Stderr}, log)
	return lintResult(count)
}
