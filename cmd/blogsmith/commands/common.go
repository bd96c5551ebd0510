package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogsmith/internal/blog"
	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/document"
	"git.home.luguber.info/inful/blogsmith/internal/templates"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"blogsmith.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build  BuildCmd  `cmd:"" help:"Compile the blog and write the output site"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
	Pages  PagesCmd  `cmd:"" help:"List the compiled page set without writing output"`
	Recent RecentCmd `cmd:"" help:"Show the most recent posts"`
	Tags   TagsCmd   `cmd:"" help:"List all tags with their listing paths"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// newCompiler wires the document repository, template resolver, and compiler
// from a loaded configuration.
func newCompiler(cfg *config.Config, opts ...blog.CompilerOption) (*blog.Compiler, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	repo := document.NewFSRepository(cfg.Blog.Dir, cfg.Blog.SourceExtension)
	resolver := templates.NewDirResolver(cfg.Templates.Dir)
	return blog.NewCompiler(repo, resolver, settings, opts...)
}
