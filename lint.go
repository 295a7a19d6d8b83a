package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shu-go/git-cxlint/commitmsg"
)

// commitAware reporters are told which commit the next violations belong to.
type commitAware interface {
	Begin(header string)
}

// lint validates messages in order and returns the number of violations reported to r.
func lint(messages []string, cfg commitmsg.Config, r commitmsg.Reporter, log *slog.Logger) int {
	counter := &commitmsg.Counter{Next: r}

	for _, raw := range messages {
		msg := commitmsg.Parse(raw)
		log.Debug("commit message",
			"header", msg.Header,
			"body", msg.Body,
			"footer", lo.FromPtr(msg.Footer),
		)

		if ca, ok := r.(commitAware); ok {
			ca.Begin(msg.Header)
		}
		commitmsg.Validate(msg, cfg, counter)
	}

	return counter.Count
}

type violationsError int

func (e violationsError) Error() string {
	if e == 1 {
		return "1 violation found"
	}
	return fmt.Sprintf("%d violations found", int(e))
}

func lintResult(count int) error {
	if count == 0 {
		return nil
	}
	return violationsError(count)
}
