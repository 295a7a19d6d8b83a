package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shu-go/git-cxlint/source"
)

type logCmd struct {
	From  string `cli:"from" help:"exclusive start revision (default: the root commit)"`
	To    string `cli:"to" default:"HEAD" help:"end revision"`
	Count int    `cli:"count,n" default:"0" help:"max number of commits, 0 for no limit"`
}

func (c logCmd) Run(g globalCmd, args []string) error {
	repos, err := source.OpenRepository(".")
	if err != nil {
		return err
	}

	log := g.logger()

	messages, err := repos.Messages(context.Background(), source.LogOptions{
		From:  c.From,
		To:    c.To,
		Count: c.Count,
	})
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Fprintln(os.Stderr, "no commits")
		return nil
	}

	sink := &consoleSink{w: os.Stderr, Grouped: len(messages) > 1}
	return lintResult(lint(messages, g.config("", log), sink, log))
}
