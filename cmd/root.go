package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yarlson/go-todo/internal/config"
	"github.com/yarlson/go-todo/internal/logging"
	"github.com/yarlson/go-todo/internal/taskstore"
)

var cfgFile string

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// Root command flags
var (
	rootFile     string
	rootLogLevel string
)

// NewRootCmd creates the root command for the todo CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A simple task list kept in a local file",
		Long: `todo manages a personal task list stored in a file in the current directory.

Tasks are created PENDING, can be marked complete or incomplete, edited and
deleted. Every change rewrites the task file (.todo_data.json by default;
.yaml and .toml files are stored in those formats).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./todo.yaml, then ~/.config/todo/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootFile, "file", "f", "", "task file (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newIncompleteCmd())
	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

// storageSettings is the resolved task file location and logger for a command.
type storageSettings struct {
	path   string
	format string
	logger *log.Logger
}

// resolveStorage loads configuration and applies the persistent flag overrides.
// The logger writes to the command's stderr.
func resolveStorage(cmd *cobra.Command) (*storageSettings, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if rootLogLevel != "" {
		level = rootLogLevel
	}

	path := cfg.StoragePath(workDir)
	if rootFile != "" {
		path = config.ResolvePath(workDir, rootFile)
	}

	return &storageSettings{
		path:   path,
		format: cfg.Storage.Format,
		logger: logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format),
	}, nil
}

// openStore opens the task store the configuration points at.
func openStore(cmd *cobra.Command) (*taskstore.FileStore, error) {
	settings, err := resolveStorage(cmd)
	if err != nil {
		return nil, err
	}

	store, err := taskstore.Open(settings.path,
		taskstore.WithFormat(settings.format),
		taskstore.WithLogger(settings.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}

	return store, nil
}

// taskNotFound is the error every command returns for an unknown ID.
func taskNotFound(id string) error {
	return fmt.Errorf("task with ID %s not found", id)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
