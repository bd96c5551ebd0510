package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogsmith/internal/blog"
	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/logfields"
	"git.home.luguber.info/inful/blogsmith/internal/metrics"
	"git.home.luguber.info/inful/blogsmith/internal/render"
	"git.home.luguber.info/inful/blogsmith/internal/state"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.Output.Dir = b.Output
	}
	return RunBuild(context.Background(), cfg)
}

// RunBuild executes one full compilation pass: compile the page set, render
// it to the output directory, and record the pass in the build log.
func RunBuild(ctx context.Context, cfg *config.Config) error {
	fmt.Println("Starting blogsmith build")

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	compiler, err := newCompiler(cfg, blog.WithRecorder(recorder))
	if err != nil {
		return err
	}

	passID := uuid.NewString()
	started := time.Now()
	slog.Info("Starting compilation pass",
		logfields.App(cfg.Blog.Name),
		logfields.PassID(passID),
		"output", cfg.Output.Dir)

	store, err := openStore(cfg.State.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close build log", logfields.Error(err))
		}
	}()

	pages, err := compiler.Pages()
	if err != nil {
		recordFailure(ctx, store, cfg.Blog.Name, passID, started)
		return err
	}

	renderer := render.New(cfg.Output.Dir,
		render.SiteVars{Title: cfg.Site.Title, URLRoot: cfg.Site.URL},
		render.WithRecorder(recorder))

	rendered, err := renderer.Render(pages)
	if err != nil {
		recordFailure(ctx, store, cfg.Blog.Name, passID, started)
		return err
	}

	changed, removed, err := store.ChangedSince(ctx, cfg.Blog.Name, rendered)
	if err != nil {
		slog.Warn("Failed to diff against previous pass", logfields.Error(err))
	}

	rec := state.PassRecord{
		ID:         passID,
		App:        cfg.Blog.Name,
		StartedAt:  started,
		DurationMS: time.Since(started).Milliseconds(),
		Pages:      len(rendered),
		Status:     "success",
	}
	if err := store.RecordPass(ctx, rec, rendered); err != nil {
		slog.Warn("Failed to record pass in build log", logfields.Error(err))
	}

	// The pass metrics outlive the process as a Prometheus textfile next to
	// the build log, so a node exporter (or a human) can pick them up.
	metricsPath := filepath.Join(filepath.Dir(cfg.State.Path), "metrics.prom")
	if err := prom.WriteToTextfile(metricsPath, registry); err != nil {
		slog.Warn("Failed to write metrics textfile", logfields.Path(metricsPath), logfields.Error(err))
	} else {
		slog.Debug("Wrote metrics textfile", logfields.Path(metricsPath))
	}

	slog.Info("Build completed",
		logfields.App(cfg.Blog.Name),
		logfields.Pages(len(rendered)),
		logfields.DurationMS(float64(time.Since(started).Milliseconds())),
		"changed", len(changed),
		"removed", len(removed))

	fmt.Printf("Built %d pages to %s (%d changed, %d removed)\n",
		len(rendered), cfg.Output.Dir, len(changed), len(removed))
	return nil
}

func openStore(path string) (*state.Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}
	return state.NewStore(path)
}

func recordFailure(ctx context.Context, store *state.Store, app, passID string, started time.Time) {
	rec := state.PassRecord{
		ID:         passID,
		App:        app,
		StartedAt:  started,
		DurationMS: time.Since(started).Milliseconds(),
		Status:     "failed",
	}
	if err := store.RecordPass(ctx, rec, nil); err != nil {
		slog.Warn("Failed to record failed pass", logfields.Error(err))
	}
}
