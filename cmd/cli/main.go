package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/minaorangina/pyramid/config"
	"github.com/minaorangina/pyramid/engine"
	"github.com/minaorangina/pyramid/game"
	"github.com/minaorangina/pyramid/logging"
	"github.com/minaorangina/pyramid/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		flags   config.Config
	)

	cmd := &cobra.Command{
		Use:           "pyramid",
		Short:         "Play a two-player game of Pyramid at one keyboard",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			overrideFromFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return play(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&envFile, "env-file", ".env", "file of PYRAMID_* settings to load if present")
	f.StringVarP(&flags.PlayerA, "player-a", "a", "", "name of the first player")
	f.StringVarP(&flags.PlayerB, "player-b", "b", "", "name of the second player")
	f.Int64Var(&flags.Seed, "seed", 0, "shuffle seed; 0 shuffles from the clock")
	f.DurationVar(&flags.TurnTimeout, "turn-timeout", 0, "how long a player may think before sitting out")
	f.StringVar(&flags.LogLevel, "log-level", "", "debug, info, warn or error")
	f.BoolVar(&flags.LogJSON, "log-json", false, "write logs as JSON")

	return cmd
}

// overrideFromFlags applies only the flags given on the command line
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config, flags config.Config) {
	f := cmd.Flags()
	if f.Changed("player-a") {
		cfg.PlayerA = flags.PlayerA
	}
	if f.Changed("player-b") {
		cfg.PlayerB = flags.PlayerB
	}
	if f.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if f.Changed("turn-timeout") {
		cfg.TurnTimeout = flags.TurnTimeout
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if f.Changed("log-json") {
		cfg.LogJSON = flags.LogJSON
	}
}

func play(ctx context.Context, cfg config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	console := engine.NewConsole(os.Stdin, os.Stdout)
	defer console.Close()
	players := engine.NewPlayers(
		engine.NewCLIPlayer(engine.NewID(), cfg.PlayerA, console, cfg.TurnTimeout),
		engine.NewCLIPlayer(engine.NewID(), cfg.PlayerB, console, cfg.TurnTimeout),
	)

	_, err = playMatch(ctx, os.Stdout, logger, rng, players, store.NewInMemoryMatchStore())
	return err
}

// playMatch deals and plays one match, registering it in the match store.
// It returns the match's game ID.
func playMatch(ctx context.Context, out io.Writer, logger *zap.Logger, rng *rand.Rand, players engine.Players, matches store.MatchStore) (string, error) {
	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		Players: players,
		Game:    game.New(rng),
		Out:     out,
		Logger:  logger,
	})
	if err != nil {
		return "", err
	}
	if err := matches.AddMatch(ge.ID(), players[0].Name(), players[1].Name()); err != nil {
		return "", err
	}

	result, err := ge.Run(ctx)
	if err != nil {
		logger.Error("game stopped", zap.String("game_id", ge.ID()), zap.Error(err))
		return ge.ID(), fmt.Errorf("game stopped: %w", err)
	}

	logger.Info("game finished",
		zap.String("game_id", ge.ID()),
		zap.String("winner", result.Winner),
	)
	return ge.ID(), matches.RecordResult(ge.ID(), result)
}
