package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg Config

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Shortest routes through N-dimensional labyrinths",
	Long: `pathfinder finds a shortest route from the Start cell to an End cell of an
N-dimensional labyrinth. Each dimension follows a movement law (free, blocked,
forward, backward, jump_forward, jump_backward); jump laws model time.

Puzzles are read from the four-line text form (shape, laws, cells, no-ban
flag) or from a YAML document (.yaml/.yml).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.With(zap.String("run_id", uuid.NewString()))

		c, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = c
		logger.Debug("config loaded", zap.String("path", configPath), zap.Any("config", cfg))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file with default settings")

	rootCmd.AddCommand(solveCmd, batchCmd, encodeCmd, decodeCmd, renderCmd)
}
