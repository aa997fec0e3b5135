// roofhopper is a small platform jumper: hop from rooftop to rooftop and
// don't fall off the bottom of the screen.
//
// Controls: space/up jumps off a rooftop, left/right nudges while rising,
// esc pauses.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/roofhopper/common"
	"github.com/milk9111/roofhopper/config"
	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagLevel  string
	flagDebug  bool
	flagWatch  bool
	flagTPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "roofhopper",
	Short:         "Roof Hopper - jump between rooftops",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogger(flagDebug)

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}

		game, err := NewGame(GameOptions{
			Config:     cfg,
			ConfigPath: flagConfig,
			Level:      flagLevel,
			Debug:      flagDebug,
			Watch:      flagWatch,
		})
		if err != nil {
			return err
		}
		defer game.Close()

		ebiten.SetTPS(flagTPS)
		ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
		ebiten.SetWindowTitle(common.WindowTitle)

		log.Info("starting", "level", flagLevel, "tps", flagTPS, "watch", flagWatch)
		if err := ebiten.RunGame(game); err != nil && err != errQuit {
			return fmt.Errorf("run game: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a game_config.yaml (default: ./config/game_config.yaml, then built-in)")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level file in levels/ (default: rooftops.yaml)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show hopper state and log at debug level")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload prefabs, levels and config when they change on disk")
	rootCmd.Flags().IntVar(&flagTPS, "tps", common.DefaultTPS, "Simulation ticks per second")
}

func setupLogger(debug bool) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "roofhopper",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
}
