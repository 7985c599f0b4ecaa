package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpath/internal/config"
	"github.com/abhisek/mathpath/internal/curriculum"
	"github.com/abhisek/mathpath/internal/store"
)

// cfg is resolved once per invocation in the root PersistentPreRunE.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "mathpath",
	Short: "Adaptive K-12 math practice",
	Long: "mathpath — curriculum catalog, problem generator and adaptive learning paths " +
		"for K-12 math.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.New()
		if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}
		loaded, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg = loaded
		setupLogging(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MATHPATH_DB env var)")
	pf.String("content", "", "Curriculum content file replacing the bundled catalog")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pathCmd)
}

func setupLogging(level, format string) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// resolveDBPath returns the database path using --db / MATHPATH_DB first,
// then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore() (*store.Store, error) {
	dbPath, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolving database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return st, nil
}

// loadCatalog returns the bundled catalog unless --content names a file.
func loadCatalog() (*curriculum.Catalog, error) {
	if cfg.ContentPath == "" {
		return curriculum.DefaultCatalog(), nil
	}
	c, err := curriculum.LoadCatalogFile(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("loading curriculum content: %w", err)
	}
	slog.Debug("loaded curriculum content", "path", cfg.ContentPath,
		"lessons", c.LessonCount(), "problems", c.ProblemCount())
	return c, nil
}
