package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// persistedKeys are the settings written by init. Host-provided values such as
// the token never end up in the file.
var persistedKeys = []string{
	configVersionKey,
	rootConfigKey,
	patternConfigKey,
	ignoreConfigKey,
	runParallelConfigKey,
	formatConfigKey,
	tuiConfigKey,
	githubCommentKey,
	logFilenameKey,
	logLevelKey,
	logMaxSizeKey,
	logMaxBackupsKey,
	logMaxAgeKey,
	logCompressKey,
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default connlint.yaml configuration file",
		Long: `Create a connlint.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := initialConfig().SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Println("wrote", targetPath)

			return nil
		},
	}
}

func initialConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	for _, key := range persistedKeys {
		v.Set(key, viper.Get(key))
	}

	return v
}

func init() {
	rootCmd.AddCommand(initCmd)
}
