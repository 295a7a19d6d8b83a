package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/elk-language/go-prompt"
	pstrings "github.com/elk-language/go-prompt/strings"
	"github.com/kyokomi/emoji/v2"

	"github.com/shu-go/git-cxlint/commitmsg"
)

type tryCmd struct {
}

// Run prompts for a header and a body, then validates them as one message.
func (c tryCmd) Run(g globalCmd, args []string) error {
	log := g.logger()
	cfg := g.config("", log)

	header := promptHeader(cfg)
	body := readBody(os.Stdin)

	msg := header
	if body != "" {
		msg += "\n\n" + body
	}

	count := lint([]string{msg}, cfg, &consoleSink{w: os.Stderr}, log)
	if count == 0 {
		emoji.Fprintln(os.Stderr, ":white_check_mark:ok")
	}
	return lintResult(count)
}

func promptHeader(cfg commitmsg.Config) string {
	items := make([]prompt.Suggest, 0, len(cfg.ValidTypes.Keys()))
	for _, k := range cfg.ValidTypes.Keys() {
		typ, _ := cfg.ValidTypes.Get(k)
		items = append(items, prompt.Suggest{
			Text:        k,
			Description: typ.Desc,
		})
	}

	headerCompleter := func(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
		endIndex := in.CurrentRuneIndex()
		w := in.GetWordBeforeCursor()
		startIndex := endIndex - pstrings.RuneCountInString(w)

		// complete types only at the beginning of the header
		if strings.ContainsAny(in.TextBeforeCursor(), "(: ") {
			return nil, startIndex, endIndex
		}
		return prompt.FilterHasPrefix(items, w, true), startIndex, endIndex
	}

	return prompt.Input(
		prompt.WithPrefix("Header: "),
		prompt.WithCompleter(headerCompleter),
		prompt.WithShowCompletionAtStart(),
	)
}

// readBody reads lines until two empty lines in a row.
// Unlike the header, lines are kept untrimmed so that spacing rules can be checked.
func readBody(r io.Reader) string {
	fmt.Println("Body: (Enter 2 empty lines to finish)")

	var lines []string

	prevEmpty := false
	buf := bufio.NewReader(r)
	for {
		linebyte, _, err := buf.ReadLine()
		if err != nil {
			break
		}

		line := string(linebyte)

		if strings.TrimSpace(line) == "" {
			if prevEmpty {
				break
			}
			prevEmpty = true
			line = ""
		} else {
			prevEmpty = false
		}

		lines = append(lines, line)
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
