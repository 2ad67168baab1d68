package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/chesschain/chesschain/internal/config"
	"github.com/chesschain/chesschain/internal/database"
	"github.com/chesschain/chesschain/internal/logger"
	"github.com/chesschain/chesschain/internal/service"
	"github.com/chesschain/chesschain/internal/session"
	"github.com/chesschain/chesschain/internal/tui"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warn: .env: %v", err)
	}
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "chesschain",
		Usage: "ChessChain terminal client demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the TOML config file",
				Sources: cli.EnvVars("CHESSCHAIN_CONFIG"),
			},
			&cli.BoolFlag{Name: "guest", Usage: "skip the login screen and enter as guest"},
			&cli.StringFlag{Name: "log-file", Usage: "log file path, empty disables logging"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.BoolFlag{Name: "no-alt-screen", Usage: "render inline instead of the alternate screen"},
			&cli.IntFlag{Name: "seed", Usage: "matchmaking random seed, 0 picks one", Sources: cli.EnvVars("CHESSCHAIN_SEED")},
		},
		Action: runApp,
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "manage the config file",
				Commands: []*cli.Command{
					{
						Name:  "init",
						Usage: "write the default config file",
						// --config is inherited from the root command
						Flags: []cli.Flag{
							&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
						},
						Action: initConfig,
					},
				},
			},
		},
	}
}

func runApp(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	lg, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	db, err := database.OpenCatalog(ctx)
	if err != nil {
		lg.Error().Err(err).Msg("catalog open failed")
		return err
	}
	defer db.Close()

	sess := session.New()
	lg.Info().
		Str("session_id", sess.ID()).
		Dur("login_delay", cfg.Timing.LoginDelay).
		Dur("search_delay", cfg.Timing.SearchDelay).
		Bool("auto_guest", cfg.Session.AutoGuest).
		Msg("startup")

	app := tui.New(ctx, cfg, tui.Deps{
		Catalog: service.NewCatalogService(db),
		Session: sess,
		Picker:  picker(int64(cmd.Int("seed"))),
		Logger:  lg,
	})
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.Bool("guest") {
		cfg.Session.AutoGuest = true
	}
	if cmd.IsSet("log-file") {
		cfg.Log.Path = strings.TrimSpace(cmd.String("log-file"))
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.Bool("no-alt-screen") {
		cfg.UI.AltScreen = false
	}
}

// picker returns a seeded source, or nil for the global one.
func picker(seed int64) service.Picker {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func initConfig(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Println("wrote", path)
	return nil
}
