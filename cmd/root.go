// Package cmd provides the root command and CLI setup for connlint.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"connlint.dev/pkg/connlint/internal/adapter"
	"connlint.dev/pkg/connlint/internal/controller"
	"connlint.dev/pkg/connlint/internal/domain"
	"connlint.dev/pkg/connlint/internal/domain/rules"
	m "connlint.dev/pkg/connlint/internal/model"
)

var fsAdapter adapter.SourceFSAdapter

// buildWorkflow assembles the workflow for a command from the current configuration.
var buildWorkflow func(cmd *cobra.Command) (domain.Workflow, error)

// rootFlag is the directory the glob pattern is resolved against.
var rootFlag string

// ignorePatterns is a root-level flag listing paths excluded from the file set.
var ignorePatterns []string

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	buildWorkflow = newWorkflow
}

const patternHelp = `The optional pattern argument is a glob resolved under --root:
  - **            matches any number of directories
  - *             matches within a single path segment
Default: ` + defaultPattern

const rootLongDescription = `connlint checks the structure of Solidity connector contracts.

Every resolved file is run through an ordered set of rules: events live in
events.sol, interfaces live in interface.sol and helpers contracts inherit
the shared Basic contract. Any diagnostic fails the run.

` + patternHelp

const checkLongDescription = `Lint the connector files matched by the pattern (default: all connectors).

Exits with status 1 when at least one diagnostic is reported. On GitHub
Actions the outcome is also published as a step output, and with --comment
the diagnostics table is posted to the pull request.

` + patternHelp

const filesLongDescription = `List the files a check would lint, after the ignore list is applied.

` + patternHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connlint",
		Short: "Solidity connector structure linter",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configErr != nil {
				slog.Error("Failed to read config file", "error", configErr)
				return configErr
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&rootFlag, rootFlagName, "r", viper.GetString(rootConfigKey), "directory the pattern is resolved against")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&ignorePatterns, ignoreFlagName, "x", viper.GetStringSlice(ignoreConfigKey), "ignore a path or glob relative to the root (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(ignoreFlagName), ignoreConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newWorkflow wires the production adapters for cmd.
func newWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	format, err := controller.ParseFormat(viper.GetString(formatConfigKey))
	if err != nil {
		return nil, err
	}

	ui := controller.NewUI(cmd, format, viper.GetBool(tuiConfigKey))
	engine := domain.NewEngine(rules.Default(), viper.GetInt(runParallelConfigKey))

	var commands io.Writer = io.Discard
	if viper.GetBool(githubActionsKey) {
		commands = cmd.OutOrStdout()
	}

	actions := adapter.NewGitHubActionsAdapter(viper.GetString(githubOutputKey), commands)

	var github adapter.GitHubAdapter

	if token := viper.GetString(githubTokenKey); token != "" {
		remote, err := adapter.NewRemoteGitHubAdapter(token)
		if err != nil {
			return nil, err
		}

		github = remote
	}

	return domain.NewWorkflow(fsAdapter, actions, github, ui, engine), nil
}

// loadArgs resolves the file set arguments from the positional pattern and configuration.
func loadArgs(args []string) domain.LoadArgs {
	pattern := viper.GetString(patternConfigKey)
	if len(args) > 0 && args[0] != "" {
		pattern = args[0]
	}

	return domain.LoadArgs{
		Root:    m.Path(viper.GetString(rootConfigKey)),
		Pattern: pattern,
		Ignore:  viper.GetStringSlice(ignoreConfigKey),
		Threads: viper.GetInt(runParallelConfigKey),
	}
}
