package commitmsg

import (
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shu-go/orderedmap"
)

// Config is the rule set a run validates against.
// It is built once by NewConfig and only read afterwards.
// The zero value validates like NewConfig(nil).
type Config struct {
	HeaderPattern *regexp.Regexp
	MergePattern  *regexp.Regexp
	RevertPattern *regexp.Regexp
	FooterPattern *regexp.Regexp

	ValidTypes *orderedmap.OrderedMap[string, CommitType]

	// ScopeValues is empty in generic mode.
	// Otherwise it holds the allowed scopes followed by WildcardScope.
	ScopeValues []string
}

// NewConfig combines the fixed grammars with an optional scope allow-list.
func NewConfig(scopes []string) Config {
	cfg := Config{
		HeaderPattern: headerPattern,
		MergePattern:  mergePattern,
		RevertPattern: revertPattern,
		FooterPattern: footerPattern,
		ValidTypes:    DefaultTypes(),
	}
	if len(scopes) > 0 {
		cfg.ScopeValues = append(slices.Clone(scopes), WildcardScope)
	}
	return cfg
}

// SplitScopes turns a comma separated setting into a scope list.
// Entries are trimmed and empty ones dropped.
func SplitScopes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	scopes := lo.Map(strings.Split(s, ","), func(scope string, _ int) string {
		return strings.TrimSpace(scope)
	})
	return lo.Uniq(lo.Compact(scopes))
}

func (c Config) validScope(scope string) bool {
	if len(c.ScopeValues) == 0 {
		return scopePattern.MatchString(scope)
	}
	return slices.Contains(c.ScopeValues, scope)
}

// withDefaults fills what a zero Config lacks.
func (c Config) withDefaults() Config {
	if c.HeaderPattern == nil {
		c.HeaderPattern = headerPattern
	}
	if c.MergePattern == nil {
		c.MergePattern = mergePattern
	}
	if c.RevertPattern == nil {
		c.RevertPattern = revertPattern
	}
	if c.FooterPattern == nil {
		c.FooterPattern = footerPattern
	}
	if c.ValidTypes == nil {
		c.ValidTypes = DefaultTypes()
	}
	return c
}

func (c Config) validType(typ string) bool {
	_, found := c.ValidTypes.Get(typ)
	return found
}
