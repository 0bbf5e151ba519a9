package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/plantetyven/internal/anim"
	"github.com/Makepad-fr/plantetyven/internal/app"
	"github.com/Makepad-fr/plantetyven/internal/asset"
	"github.com/Makepad-fr/plantetyven/internal/config"
	"github.com/Makepad-fr/plantetyven/internal/game"
	"github.com/Makepad-fr/plantetyven/internal/logging"
	"github.com/Makepad-fr/plantetyven/internal/model"
	"github.com/Makepad-fr/plantetyven/internal/store"
	"github.com/Makepad-fr/plantetyven/internal/streak"
	"github.com/Makepad-fr/plantetyven/internal/tui"
	"github.com/Makepad-fr/plantetyven/internal/ui"
)

// usageError marks errors that should exit with code 2.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// session is what every subcommand gets after the persistent pre-run.
type session struct {
	configPath string
	flags      config.Config
	cfg        config.Config
	log        *zap.Logger
	kv         store.KV
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string) int {
	s := &session{}
	root := newRootCmd(s)
	root.SetArgs(args)
	err := root.Execute()
	if s.log != nil {
		_ = s.log.Sync()
	}
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") ||
		strings.HasPrefix(err.Error(), "unknown flag") {
		fmt.Fprintln(os.Stderr)
		_ = root.Usage()
		return 2
	}
	return 1
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "plantetyven",
		Short: "Plantetyven - find the plant the cat stole",
		Long: `A cat arm peeks at a shelf of six plants. Start a round, remember the
shelf, and after the lights go out pick the plant that went missing.

Run without arguments to play.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.play(cmd.Context())
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&s.configPath, "config", os.Getenv(config.EnvPrefix+"CONFIG"), "YAML config file")
	pf.StringVar(&s.flags.Store, "store", "", "streak storage: gdata, file or memory")
	pf.StringVar(&s.flags.Data, "data", "", "data file for the file store")
	pf.StringVar(&s.flags.Theme, "theme", "", "color theme: classic, neon or mono")
	pf.Float64Var(&s.flags.Speed, "speed", 0, "animation speed multiplier")
	pf.Int64Var(&s.flags.Seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&s.flags.LogFile, "log-file", "", "write JSON logs to this file")
	pf.BoolVarP(&s.flags.Verbose, "verbose", "v", false, "debug logging")

	play := &cobra.Command{
		Use:   "play",
		Short: "Play the game (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.play(cmd.Context())
		},
	}

	streakCmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the saved streak",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.showStreak()
		},
	}
	streakCmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the saved streak to 0",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.resetStreak()
		},
	})

	shelf := &cobra.Command{
		Use:   "shelf",
		Short: "Print one shuffled shelf",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.printShelf()
		},
	}

	root.AddCommand(play, streakCmd, shelf)
	return root
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// setup merges config file, env and flags, then builds logger and store.
func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("store") {
		cfg.Store = s.flags.Store
	}
	if f.Changed("data") {
		cfg.Data = s.flags.Data
	}
	if f.Changed("theme") {
		cfg.Theme = s.flags.Theme
	}
	if f.Changed("speed") {
		cfg.Speed = s.flags.Speed
	}
	if f.Changed("seed") {
		cfg.Seed = s.flags.Seed
	}
	if f.Changed("log-file") {
		cfg.LogFile = s.flags.LogFile
	}
	if f.Changed("verbose") {
		cfg.Verbose = s.flags.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}
	s.cfg = cfg

	ui.SetTheme(cfg.Theme)

	logPath := cfg.LogFile
	// the TUI owns the terminal; other commands may log to stderr
	if logPath == "" && cfg.Verbose && cmd.Name() != "play" && cmd.Name() != "plantetyven" {
		logPath = "stderr"
	}
	s.log, err = logging.New(logPath, cfg.Verbose)
	if err != nil {
		return err
	}

	s.kv, err = store.Open(cfg.Store, cfg.Data, s.log.Named("store"))
	if err != nil {
		return usageError{err}
	}
	return nil
}

func (s *session) rng() *rand.Rand {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// -------------- subcommand impls ----------------

func (s *session) play(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sprites, err := asset.Load()
	if err != nil {
		return err
	}
	ctrl := app.New(app.Options{
		Catalog:   model.DefaultCatalog,
		Rand:      s.rng(),
		Scheduler: anim.Scale{Scheduler: anim.RealClock{}, Speed: s.cfg.Speed},
		Streak:    streak.New(s.kv),
		Log:       s.log.Named("app"),
	})
	if err := ctrl.Load(); err != nil {
		return err
	}
	defer ctrl.Close()

	res, err := tui.Run(ctx, ctrl, asset.NewLazy(sprites), tui.Options{
		ShopURL: s.cfg.ShopURL,
		Log:     s.log.Named("tui"),
	})
	if err != nil {
		return err
	}
	if res.VisitShop {
		ui.OK("Besøk " + res.ShopURL)
	}
	return nil
}

func (s *session) showStreak() error {
	n, err := streak.New(s.kv).Load()
	if err != nil {
		return err
	}
	t := ui.Current()
	ui.Panel([]string{
		t.Title.Render("Plantetyven"),
		fmt.Sprintf("%s %s", t.Accent.Render(t.SymStreak+" Streak"), t.Title.Render(fmt.Sprint(n))),
		"",
		t.Muted.Render("Tip: reset with `plantetyven streak reset`"),
	})
	return nil
}

func (s *session) resetStreak() error {
	if _, err := streak.New(s.kv).Reset(); err != nil {
		return err
	}
	ui.OK("streak reset")
	return nil
}

func (s *session) printShelf() error {
	ds, err := game.Shelve(model.DefaultCatalog, s.rng())
	if err != nil {
		return err
	}
	sprites, err := asset.Load()
	if err != nil {
		return err
	}
	t := ui.Current()
	lines := []string{t.Title.Render("Øverst"), shelfLine(sprites, ds.Top), "", t.Title.Render("Nederst"), shelfLine(sprites, ds.Bottom)}
	lines = append(lines, "", t.Muted.Render("Ikke på hylla: "+strings.Join(model.DefaultCatalog.Without(ds.IDs()), ", ")))
	ui.Panel(lines)
	return nil
}

func shelfLine(sprites *asset.Catalog, ids []model.PlantID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id
		if sp, err := sprites.Sprite(id); err == nil {
			names[i] = fmt.Sprintf("%s (%s)", sp.Name, sprites.Path(id))
		}
	}
	return strings.Join(names, "  ")
}
