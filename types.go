package main

// Rule is the content of a rule file.
type Rule struct {
	// Scopes is the scope allow-list. Empty allows any alphanumeric scope.
	Scopes []string `json:"scopes" yaml:"scopes"`
}
