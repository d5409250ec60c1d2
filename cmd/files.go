package cmd

import (
	"github.com/spf13/cobra"
)

// filesCmd represents the files command.
var filesCmd = newFilesCmd()

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [pattern]",
		Short: "List the files a check would lint",
		Long:  filesLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow, err := buildWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Files(cmd.Context(), loadArgs(args))
		},
	}
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
