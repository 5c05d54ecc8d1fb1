package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot"
	"github.com/aretw0/jot/internal/config"
	"github.com/aretw0/jot/pkg/core"
)

var (
	verbose     bool
	dataDir     string
	adapterName string
	configPath  string

	// fileConfig is loaded once per invocation in PersistentPreRunE.
	fileConfig config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jot",
	Short: "Take, search and organise short notes",
	Long: `jot keeps titled notes with a description and a category.
Notes are stored as JSON in a data directory (or a SQLite database) and can be
managed from the command line or from the interactive UI (jot tui).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fileConfig = cfg

		level := slog.LevelInfo
		if verbose || (cfg.Verbose && !cmd.Flags().Changed("verbose")) {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "", "Data directory (default $XDG_DATA_HOME/jot)")
	rootCmd.PersistentFlags().StringVar(&adapterName, "adapter", "", "Storage adapter: fs, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to jot.yaml (default: searched upwards from the working directory)")
}

// loadConfig reads --config, or the nearest jot.yaml when the flag is not set.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return config.Config{}, nil
		}
		found, err := config.Find(wd)
		if err != nil {
			return config.Config{}, nil
		}
		path = found
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	slog.Debug("loaded config", "path", path)
	return cfg, nil
}

// openService builds the service from flags, falling back to the config file
// and then to the defaults. Every command opens the store the same way so that
// reads and writes resolve to the same directory under the dev sandbox.
func openService() (*core.Service, error) {
	dir := dataDir
	if dir == "" {
		dir = fileConfig.Path
	}
	if dir == "" {
		dir = config.DefaultDataDir()
	}

	adapter := adapterName
	if adapter == "" {
		adapter = fileConfig.Adapter
	}
	if adapter == "" {
		adapter = "fs"
	}

	opts := []jot.Option{
		jot.WithAdapter(adapter),
		jot.WithLogger(slog.Default()),
		jot.WithReadOnly(fileConfig.ReadOnly),
	}
	if len(fileConfig.Categories) > 0 {
		opts = append(opts, jot.WithSeedCategories(fileConfig.Categories...))
	}

	svc, err := jot.New(dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes at %s: %w", dir, err)
	}
	return svc, nil
}

func parseID(arg string) (core.NoteID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return core.NoteID(id), nil
}
