// desert is a small arcade driving game: steer a car up a desert road and
// dodge the cars coming down.
//
// Usage:
//
//	desert                   - Play in a window with the default settings
//	desert list              - List available frontends
//	desert scores            - Show the run log
//
// Global flags:
//
//	--config <path>      - Load settings from a YAML file
//	--frontend <id>      - Frontend to play in (default: window)
//	--seed <value>       - RNG seed for reproducible obstacles (0 = random)
//	--db <path>          - Record finished runs in this SQLite database
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
//	--debug              - Show frame statistics in the window
//
// Every global flag can also be set through a DESERT_* environment variable
// (DESERT_LOG_LEVEL=debug) or a .env file in the working directory.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/desert-dash/internal/config"
	"github.com/vovakirdan/desert-dash/internal/core"
	_ "github.com/vovakirdan/desert-dash/internal/platform/tui" // Register frontends
	_ "github.com/vovakirdan/desert-dash/internal/platform/window"
	"github.com/vovakirdan/desert-dash/internal/registry"
	"github.com/vovakirdan/desert-dash/internal/storage"
)

// defaultDBPath is where the scores command looks when --db is not given.
const defaultDBPath = "~/.desert/runs.db"

var (
	// Global flags
	flagConfig   string
	flagFrontend string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "desert",
	Short: "Desert Dash - dodge the traffic on a desert road",
	Long: `Desert Dash is a minimal arcade driving game. Steer with the arrow
keys, stay between the road edges and avoid the oncoming cars. Every car
that enters the road scores a point; the first collision ends the run.

Assets (background.png, car.png, obstacle1.png, obstacle2.png,
explosion.png, background_music.ogg, crash_sound.wav, Oswald.ttf) are
loaded from the working directory unless the config says otherwise.

Examples:
  desert
  desert --frontend tui
  desert --seed 42 --db ~/.desert/runs.db
  desert scores`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "window", "Frontend to play in (see 'desert list')")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Record runs in this SQLite database (empty = off)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show frame statistics")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadEnv(cmd.Flags(), ".env")
	}

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runPlay loads everything a session needs and hands it to the frontend.
func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, flagFrontend)
	if err != nil {
		return err
	}
	defer closeLog()

	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'desert list' to see available frontends", flagFrontend)
	}
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("cannot load config", "error", err)
		return err
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = float64(cfg.Window.Width)
	runtime.ScreenH = float64(cfg.Window.Height)
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	opts := registry.Options{
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
		Debug:   flagDebug,
	}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("run log disabled", "error", err)
		} else {
			defer store.Close()
			opts.Runs = store
		}
	}

	if err := frontend.Run(opts); err != nil {
		logger.Error("game stopped", "frontend", flagFrontend, "error", err)
		return err
	}
	return nil
}
