// Package commitmsg parses commit messages into header, body and footer
// and checks them against the commit convention.
package commitmsg

import "strings"

const sectionSeparator = "\n\n"

// Message is a commit message split into its sections.
type Message struct {
	Header string `json:"header"`
	// Body holds the paragraphs between header and footer, in order.
	Body   []string `json:"body"`
	Footer *string  `json:"footer"`
}

func (m Message) HasBody() bool {
	return len(m.Body) > 0
}

func (m Message) HasFooter() bool {
	return m.Footer != nil
}

// Parse splits raw on blank lines. It never fails.
//
// Merge and revert commits keep only their header.
// The last section is the footer if it is not the header and looks like an issue reference.
func Parse(raw string) Message {
	sections := strings.Split(raw, sectionSeparator)
	header := sections[0]

	if isMergeOrRevert(header) || len(sections) == 1 {
		return Message{Header: header, Body: []string{}}
	}

	last := sections[len(sections)-1]
	if footerPattern.MatchString(last) {
		return Message{
			Header: header,
			Body:   sections[1 : len(sections)-1],
			Footer: &last,
		}
	}

	return Message{Header: header, Body: sections[1:]}
}
