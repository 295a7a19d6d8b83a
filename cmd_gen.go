package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shu-go/git-cxlint/commitmsg"
	"gopkg.in/yaml.v3"
)

type genCmd struct {
}

func (c genCmd) Run(g globalCmd, args []string) error {
	filename := defaultRuleFileName + ".yaml"
	if len(args) > 0 {
		filename = args[0]
	}

	filename, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "output: %v\n", filename)

	rule := defaultRule()
	if scopes := commitmsg.SplitScopes(g.Scopes); len(scopes) > 0 {
		rule.Scopes = scopes
	}

	return writeRuleFile(filename, rule)
}

func writeRuleFile(filename string, rule Rule) error {
	var content []byte
	var err error
	if in(filepath.Ext(filename), ".json") {
		content, err = json.MarshalIndent(rule, "", "  ")
	} else {
		content, err = yaml.Marshal(rule)
	}
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.Write(content)
	return err
}
