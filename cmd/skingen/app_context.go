package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/skingen/internal/config"
	"github.com/alexisbeaulieu97/skingen/internal/logger"
	"github.com/alexisbeaulieu97/skingen/internal/project"
	"github.com/alexisbeaulieu97/skingen/internal/sanitize"
	"github.com/alexisbeaulieu97/skingen/internal/skin"
	"github.com/alexisbeaulieu97/skingen/internal/storage"
)

// appContext bundles long-lived services created before any command runs.
type appContext struct {
	Config *config.Config
	Log    *logger.Logger
	Engine *skin.Engine
	Store  *storage.FileStore
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := config.Load(config.LoadOptions{Path: flags.configPath, Dotenv: flags.envFile})
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Check the config file and any SKINGEN_* environment variables.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.HumanLogs, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("start", "creating logger", err, "Use one of trace, debug, info, warn or error for log_level.")
	}

	engine := skin.New(skin.WithSanitizer(sanitize.New(cfg.SanitizerMode())))
	store := storage.NewFileStore(flags.projectPath)

	log.Debug("application ready", "project", store.Path, "sanitizer", cfg.Sanitizer)

	return &appContext{Config: cfg, Log: log, Engine: engine, Store: store}, nil
}

func (a *appContext) loadProject(operation string) (project.Project, error) {
	p, err := a.Store.Load()
	if err != nil {
		return project.Project{}, newCommandError(operation, "loading project "+a.Store.Path, err, "Fix the reported field or run 'skingen new --force' to start over.")
	}
	a.Log.Debug("project loaded", "path", a.Store.Path, "variant", p.Variant, "messages", len(p.Messages))
	return p, nil
}

func (a *appContext) saveProject(operation string, p project.Project) error {
	if err := a.Store.Save(p); err != nil {
		return newCommandError(operation, "saving project "+a.Store.Path, err, "Check that the directory is writable.")
	}
	a.Log.Debug("project saved", "path", a.Store.Path, "variant", p.Variant)
	return nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func interactive(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}
