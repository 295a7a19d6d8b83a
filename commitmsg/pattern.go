package commitmsg

import (
	"regexp"

	"github.com/shu-go/orderedmap"
)

var (
	// <type>(<scope>): <subject>, (<scope>) is optional
	headerPattern = regexp.MustCompile(`^(.+?)(?:\((.+)\))?: (.+)$`)
	// Merge pull request #<number> from <branch>
	mergePattern = regexp.MustCompile(`^Merge pull request #[0-9]+ from .+$`)
	// Revert "<commit_header>"
	revertPattern = regexp.MustCompile(`^Revert ".+"$`)
	// close #123, fix #456
	footerPattern = regexp.MustCompile(`^((close|fix) #[0-9]+)(, (close|fix) #[0-9]+)*$`)
	scopePattern  = regexp.MustCompile(`^[A-Za-z0-9]+$|^\*$`)
)

// WildcardScope means that a change affects more than a single scope.
const WildcardScope = "*"

// CommitType describes one entry of the type vocabulary.
type CommitType struct {
	Desc string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DefaultTypes returns the allowed commit types in their canonical order.
func DefaultTypes() *orderedmap.OrderedMap[string, CommitType] {
	ct := orderedmap.New[string, CommitType]()
	ct.Set("feat", CommitType{Desc: "A new feature"})
	ct.Set("fix", CommitType{Desc: "A bug fix"})
	ct.Set("docs", CommitType{Desc: "Documentation only changes"})
	ct.Set("style", CommitType{Desc: "Changes that do not affect the meaning of the code"})
	ct.Set("refactor", CommitType{Desc: "A code change that neither fixes a bug nor adds a feature"})
	ct.Set("perf", CommitType{Desc: "A code change that improves performance"})
	ct.Set("test", CommitType{Desc: "Adding missing tests or correcting existing tests"})
	ct.Set("chore", CommitType{Desc: "Other changes that don't modify src or test files"})
	return ct
}

func isMergeOrRevert(header string) bool {
	return mergePattern.MatchString(header) || revertPattern.MatchString(header)
}
