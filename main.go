package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/shu-go/gli"

	"github.com/shu-go/git-cxlint/commitmsg"
	"github.com/shu-go/git-cxlint/source"
)

const (
	userConfigFolder = "git-cxlint"

	defaultRuleFileName = ".cxlint"

	configSection = "cxlint"
	configRule    = "rule"
)

type globalCmd struct {
	Scopes   string `cli:"scopes,s" help:"comma separated allowed scopes (default: any alphanumeric scope or *)"`
	RuleFile string `cli:"rule" help:"rule file path"`

	Debug bool `cli:"debug" default:"false" help:"output debug logs to stderr"`

	Check checkCmd `cli:"check" help:"validate a commit message file or stdin"`
	Log   logCmd   `cli:"log" help:"validate commits of the local repository"`
	Gen   genCmd   `cli:"generate,gen" help:"generate rule file"`
	Try   tryCmd   `cli:"try" help:"type a commit message and validate it"`
}

// actionEnv is what a workflow runner provides to the step.
type actionEnv struct {
	EventName   string `envconfig:"GITHUB_EVENT_NAME" required:"true"`
	EventPath   string `envconfig:"GITHUB_EVENT_PATH" required:"true"`
	Token       string `envconfig:"GITHUB_TOKEN"`
	APIURL      string `envconfig:"GITHUB_API_URL"`
	ScopeValues string `envconfig:"INPUT_SCOPE-VALUES"`
}

// Run validates the commits of the workflow trigger event.
func (c globalCmd) Run() error {
	sink := githubSink{w: os.Stdout}

	count, err := c.runAction(context.Background(), sink)
	if err != nil {
		sink.Report(fmt.Sprintf("Action failed with error %v", err))
		return err
	}
	return lintResult(count)
}

func (c globalCmd) runAction(ctx context.Context, r commitmsg.Reporter) (int, error) {
	log := c.logger()

	var env actionEnv
	if err := envconfig.Process("", &env); err != nil {
		return 0, fmt.Errorf("read workflow environment: %w", err)
	}

	cfg := c.config(env.ScopeValues, log)

	payload, err := os.Open(env.EventPath)
	if err != nil {
		return 0, fmt.Errorf("open event payload: %w", err)
	}
	defer payload.Close()

	client, err := source.NewClient(nil, env.Token, env.APIURL)
	if err != nil {
		return 0, err
	}

	gh := source.GitHub{Client: client, Log: log}
	messages, err := gh.EventMessages(ctx, env.EventName, payload)
	if err != nil {
		return 0, err
	}

	return lint(messages, cfg, r, log), nil
}

// config builds the validation config.
// The --scopes flag wins over the scope-values input, which wins over the rule file.
func (c globalCmd) config(inputScopes string, log *slog.Logger) commitmsg.Config {
	scopes := commitmsg.SplitScopes(c.Scopes)
	if len(scopes) == 0 {
		scopes = commitmsg.SplitScopes(inputScopes)
	}
	if len(scopes) == 0 {
		rule, path := readRuleFile(openRepository(), c.RuleFile)
		log.Debug("rule file", "path", path, "scopes", rule.Scopes)
		scopes = commitmsg.SplitScopes(strings.Join(rule.Scopes, ","))
	}
	return commitmsg.NewConfig(scopes)
}

func (c globalCmd) logger() *slog.Logger {
	if c.Debug {
		return logs.GetLoggerFromLevel(slog.LevelDebug)
	}
	return logs.GetLoggerFromLevel(slog.LevelWarn)
}

// Version is app version
var Version string

func main() {
	app := gli.NewWith(&globalCmd{})
	app.Name = "git-cxlint"
	app.Desc = "A conventional commits linter"
	app.Version = Version
	app.Usage = `
# GitHub Actions (push, pull_request)
git-cxlint
# with: scope-values: api, cli

# commit-msg hook
git-cxlint check "$1"

# local history
git cxlint log --from origin/main

# customize
git cxlint gen
(edit .cxlint.yaml)
(gitconfig: [cxlint] rule=path/to/rule.yaml)`
	app.Copyright = "(C) 2024 Shuhei Kubota"
	app.SuppressErrorOutput = true
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func in(s string, choices ...string) bool {
	if len(choices) == 0 {
		return false
	}

	for i := 0; i < len(choices); i++ {
		if strings.EqualFold(s, choices[i]) {
			return true
		}
	}

	return false
}
