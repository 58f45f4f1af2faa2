package main

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/watersort/internal/config"
	"svw.info/watersort/internal/generator"
	"svw.info/watersort/internal/hint"
	"svw.info/watersort/internal/infrastructure/storage"
	"svw.info/watersort/internal/ports"
	"svw.info/watersort/internal/render"
	"svw.info/watersort/internal/solver"
	"svw.info/watersort/internal/usecase"
	"svw.info/watersort/internal/validator"
	"svw.info/watersort/levels"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	levelsDir  string

	cfg    config.Config
	logger *slog.Logger
	uc     *usecase.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "watersort",
		Short:        "Play, solve and serve water sort puzzles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "watersort.yaml", "YAML config file; missing means defaults")
	pf.StringVar(&a.logLevel, "log-level", "", "debug|info|warn|error (overrides config)")
	pf.StringVar(&a.levelsDir, "levels-dir", "", "read levels from this directory instead of the built-in set")

	root.AddCommand(
		newPlayCmd(a),
		newSolveCmd(a),
		newGenerateCmd(a),
		newLevelsCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if a.levelsDir != "" {
		cfg.Levels.Dir = a.levelsDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = config.NewLogger(cfg.Log)
	a.uc = a.service()
	return nil
}

func (a *app) service() *usecase.Service {
	var levelFS fs.FS = levels.Assets
	if a.cfg.Levels.Dir != "" {
		levelFS = os.DirFS(a.cfg.Levels.Dir)
	}
	s := solver.NewBacktrackingSolver()
	var verify ports.Solver
	if a.cfg.Solver.Verify {
		verify = s
	}
	depth := a.cfg.Solver.Depth
	a.logger.Debug("service ready", "levels", a.cfg.Levels.Dir, "depth", depth, "verify", a.cfg.Solver.Verify)
	return usecase.NewService(
		s,
		generator.NewRandomGenerator(verify, depth),
		validator.New(),
		hint.NewSolverHinter(s),
		storage.NewFS(levelFS),
		depth,
	)
}

// styled reports whether w is a terminal that can take colour output.
func styled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.IsTerminal(f)
}
