package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/kyokomi/emoji/v2"
)

// githubSink reports violations as workflow error commands, which also fail the job step.
type githubSink struct {
	w io.Writer
}

var workflowDataEscaper = strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")

func (s githubSink) Report(violation string) {
	fmt.Fprintf(s.w, "::error::%s\n", workflowDataEscaper.Replace(violation))
}

// consoleSink prints violations for humans, grouped under the commit header.
type consoleSink struct {
	w io.Writer

	// Grouped prints the header once before the first violation of each commit.
	Grouped bool

	header  string
	printed bool
}

var (
	headerStyle    = color.New(color.OpBold)
	violationStyle = color.New(color.FgRed)
)

func (s *consoleSink) Begin(header string) {
	s.header = header
	s.printed = false
}

func (s *consoleSink) Report(violation string) {
	indent := ""
	if s.Grouped {
		if !s.printed {
			fmt.Fprintln(s.w, headerStyle.Render(s.header))
			s.printed = true
		}
		indent = "  "
	}
	fmt.Fprintf(s.w, "%s%s%s\n", indent, emoji.Sprint(":x:"), violationStyle.Render(violation))
}
