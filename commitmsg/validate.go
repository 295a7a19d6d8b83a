package commitmsg

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxSubjectLength  = 80
	maxBodyLineLength = 100

	footerSeparator = "/"
)

// Validate checks msg against cfg and reports every violation to r.
//
// Merge and revert commits are exempt from all checks.
// An unparsable header skips the type, scope and subject checks, but body and footer are still checked.
func Validate(msg Message, cfg Config, r Reporter) {
	cfg = cfg.withDefaults()

	if cfg.MergePattern.MatchString(msg.Header) || cfg.RevertPattern.MatchString(msg.Header) {
		return
	}

	validateHeader(msg.Header, cfg, r)

	if msg.HasBody() {
		validateBody(msg.Body, r)
	}
	if msg.HasFooter() {
		validateFooter(*msg.Footer, cfg, r)
	}
}

func validateHeader(header string, cfg Config, r Reporter) {
	match := cfg.HeaderPattern.FindStringSubmatchIndex(header)
	if match == nil {
		r.Report(fmt.Sprintf("Invalid header: %s", header))
		return
	}

	typ := header[match[2]:match[3]]
	subject := header[match[6]:match[7]]

	validateType(typ, cfg, r)
	// the scope group did not participate
	if match[4] >= 0 {
		validateScope(header[match[4]:match[5]], cfg, r)
	}
	validateSubject(subject, r)
}

func validateType(typ string, cfg Config, r Reporter) {
	if !cfg.validType(typ) {
		r.Report(fmt.Sprintf("Invalid type: %s", typ))
	}
}

func validateScope(scope string, cfg Config, r Reporter) {
	if !cfg.validScope(scope) {
		r.Report(fmt.Sprintf("Invalid scope: %s", scope))
	}
}

func validateSubject(subject string, r Reporter) {
	trimmed := strings.TrimSpace(subject)

	if utf8.RuneCountInString(subject) > maxSubjectLength {
		r.Report(fmt.Sprintf("Subject is too long: %s", subject))
	}
	if strings.HasPrefix(subject, " ") || strings.HasSuffix(subject, " ") {
		r.Report(fmt.Sprintf("Subject should not start or end with a space: %s", subject))
	}
	if first, ok := firstRune(trimmed); ok && first == unicode.ToUpper(first) {
		r.Report(fmt.Sprintf("Subject should not start with an uppercase letter: %s", subject))
	}
	if strings.HasSuffix(trimmed, ".") {
		r.Report(fmt.Sprintf("Subject should not end with a period: %s", subject))
	}
}

func validateBody(body []string, r Reporter) {
	for _, paragraph := range body {
		trimmed := strings.TrimSpace(paragraph)
		if first, ok := firstRune(trimmed); ok && first != unicode.ToUpper(first) {
			r.Report(fmt.Sprintf("Body paragraph should start with an uppercase letter: %s", paragraph))
		}

		for _, line := range strings.Split(paragraph, "\n") {
			if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
				r.Report(fmt.Sprintf("Body line should not start or end with a space: %s", line))
			}
			if utf8.RuneCountInString(strings.TrimSpace(line)) > maxBodyLineLength {
				r.Report(fmt.Sprintf("Body line is too long: %s", line))
			}
		}
	}
}

func validateFooter(footer string, cfg Config, r Reporter) {
	for _, segment := range strings.Split(footer, footerSeparator) {
		if !cfg.FooterPattern.MatchString(segment) {
			r.Report(fmt.Sprintf("Invalid footer: %s", segment))
		}
	}
}

// firstRune is false for an empty s.
// Casing compares the rune with its upper-case form, so digits and punctuation count as upper-case.
func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
