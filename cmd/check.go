package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"connlint.dev/pkg/connlint/internal/adapter"
	"connlint.dev/pkg/connlint/internal/domain"
)

var runParallelFlag int
var formatFlag string
var tuiFlag bool
var commentFlag bool
var repoFlag string
var prFlag int

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check [pattern]",
		Short:        "Lint connector contracts",
		Long:         checkLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pullRequest, err := pullRequestRef()
			if err != nil {
				return err
			}

			workflow, err := buildWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				LoadArgs:    loadArgs(args),
				PullRequest: pullRequest,
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of rules and file reads run concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "report format: table, markdown or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatConfigKey)

	cmd.Flags().BoolVar(&tuiFlag, tuiFlagName, viper.GetBool(tuiConfigKey), "browse diagnostics interactively when attached to a terminal")
	bindFlagToConfig(cmd.Flags().Lookup(tuiFlagName), tuiConfigKey)

	cmd.Flags().BoolVar(&commentFlag, commentFlagName, viper.GetBool(githubCommentKey), "post the diagnostics table to the pull request on failure")
	bindFlagToConfig(cmd.Flags().Lookup(commentFlagName), githubCommentKey)

	cmd.Flags().StringVar(&repoFlag, repoFlagName, viper.GetString(githubRepositoryKey), "repository as owner/repo (default: $GITHUB_REPOSITORY)")
	bindFlagToConfig(cmd.Flags().Lookup(repoFlagName), githubRepositoryKey)

	cmd.Flags().IntVar(&prFlag, prFlagName, viper.GetInt(githubPRKey), "pull request number (default: read from $GITHUB_EVENT_PATH)")
	bindFlagToConfig(cmd.Flags().Lookup(prFlagName), githubPRKey)
}

// pullRequestRef returns the pull request to comment on, or nil when commenting is off.
func pullRequestRef() (*adapter.PullRequestRef, error) {
	if !viper.GetBool(githubCommentKey) {
		return nil, nil
	}

	owner, repo, err := adapter.ParseRepository(viper.GetString(githubRepositoryKey))
	if err != nil {
		return nil, err
	}

	number := viper.GetInt(githubPRKey)
	if number <= 0 {
		eventPath := viper.GetString(githubEventPathKey)
		if eventPath == "" {
			return nil, errors.New("pull request number is required: set --pr or GITHUB_EVENT_PATH")
		}

		number, err = adapter.PullRequestNumberFromEvent(eventPath)
		if err != nil {
			return nil, fmt.Errorf("resolve pull request: %w", err)
		}
	}

	return &adapter.PullRequestRef{Owner: owner, Repo: repo, Number: number}, nil
}
