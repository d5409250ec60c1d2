package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "connlint"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName        = "root"
	ignoreFlagName      = "ignore"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	runParallelFlagName = "parallel"
	formatFlagName      = "format"
	tuiFlagName         = "tui"
	commentFlagName     = "comment"
	repoFlagName        = "repo"
	prFlagName          = "pr"

	rootConfigKey        = "paths.root"
	patternConfigKey     = "paths.pattern"
	ignoreConfigKey      = "paths.ignore"
	runParallelConfigKey = "run.parallel"
	formatConfigKey      = "report.format"
	tuiConfigKey         = "report.tui"

	githubTokenKey      = "github.token"
	githubRepositoryKey = "github.repository"
	githubPRKey         = "github.pr"
	githubEventPathKey  = "github.event_path"
	githubOutputKey     = "github.output"
	githubCommentKey    = "github.comment"
	githubActionsKey    = "github.actions"

	defaultRoot        = "."
	defaultPattern     = "contracts/**/connectors/**/*.sol"
	defaultRunParallel = 1
	defaultFormat      = "table"
	defaultTUI         = false
	defaultComment     = false
	defaultRepository  = ""
	defaultPR          = 0

	envPrefix = "CONNLINT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".connlint.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultIgnore lists connectors that legitimately skip the Basic helpers base.
var defaultIgnore = []string{
	"contracts/polygon/connectors/wmatic/helpers.sol",
	"contracts/fantom/connectors/wftm/helpers.sol",
}

// hostEnvBindings maps config keys to the variables the CI host exports.
var hostEnvBindings = map[string][]string{
	githubTokenKey:      {"GITHUB_TOKEN", "INPUT_TOKEN"},
	githubRepositoryKey: {"GITHUB_REPOSITORY"},
	githubEventPathKey:  {"GITHUB_EVENT_PATH"},
	githubOutputKey:     {"GITHUB_OUTPUT"},
	githubActionsKey:    {"GITHUB_ACTIONS"},
}

var globalLogger *slog.Logger

// configErr holds a config file that exists but could not be read.
var configErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	bindHostEnv()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(patternConfigKey, defaultPattern)
	viper.SetDefault(ignoreConfigKey, defaultIgnore)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(formatConfigKey, defaultFormat)
	viper.SetDefault(tuiConfigKey, defaultTUI)
	viper.SetDefault(githubCommentKey, defaultComment)
	viper.SetDefault(githubRepositoryKey, defaultRepository)
	viper.SetDefault(githubPRKey, defaultPR)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// Reported by the root command once logging is configured.
	configErr = readConfig(viper.GetViper())
}

// readConfig loads the configured file into v. A missing file is not an error.
func readConfig(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
}

// bindHostEnv lets CONNLINT_* variables win over the host's own variables.
func bindHostEnv() {
	for key, names := range hostEnvBindings {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(key))
		input := append([]string{key, prefixed}, names...)

		if err := viper.BindEnv(input...); err != nil {
			slog.Warn("Failed to bind environment", "key", key, "error", err)
		}
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
