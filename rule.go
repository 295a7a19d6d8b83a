package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/shu-go/findcfg"
	"gopkg.in/yaml.v3"
)

func openRepository() *git.Repository {
	repos, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	return repos
}

// readRuleFile looks for the rule file.
// exactPath wins over the git config, which wins over the usual locations.
// The default rule is returned when nothing readable is found.
func readRuleFile(repos *git.Repository, exactPath string) (*Rule, string) {
	var rootDir string
	if repos != nil {
		if wt, err := repos.Worktree(); err == nil {
			rootDir = wt.Filesystem.Root()
		}
	}

	if exactPath == "" && rootDir != "" {
		// config
		if cfg := getGitConfig(repos, configRule); cfg != nil {
			exactPath = filepath.Join(rootDir, *cfg)
		}
	}

	finder := findcfg.New(
		findcfg.Name(defaultRuleFileName),
		findcfg.ExactPath(exactPath),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(rootDir),
		findcfg.UserConfigDir(userConfigFolder),
		findcfg.ExecutableDir(),
	)
	found := finder.Find()
	if found != nil {
		if r, err := tryReadRuleFile(found.Path); err == nil {
			return r, found.Path
		}
	}

	r := defaultRule()
	return &r, finder.FallbackPath()
}

func defaultRule() Rule {
	return Rule{
		Scopes: []string{},
	}
}

func tryReadRuleFile(filename string) (*Rule, error) {
	if s, err := os.Stat(filename); err != nil || s.IsDir() {
		if err == nil {
			err = os.ErrNotExist
		}
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	r := defaultRule()

	if in(filepath.Ext(filename), ".yaml", ".yml") {
		if err := yaml.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if in(filepath.Ext(filename), ".json") {
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if err := yaml.Unmarshal(content, &r); err != nil {
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	return &r, nil
}

func getGitConfig(repos *git.Repository, key string) *string {
	config, err := repos.Config()
	if err != nil {
		return nil
	}

	var ss *gitconfig.Section
	var found bool
	for _, s := range config.Raw.Sections {
		if s.Name == configSection {
			found = true
			ss = s
		}
	}
	if !found {
		return nil
	}

	if ctp := ss.Options.Get(key); ctp != "" {
		return &ctp
	}
	return nil
}
