package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/blogsmith/internal/blog"
	"git.home.luguber.info/inful/blogsmith/internal/config"
	"git.home.luguber.info/inful/blogsmith/internal/foundation"
	"git.home.luguber.info/inful/blogsmith/internal/logfields"
	"git.home.luguber.info/inful/blogsmith/internal/metrics"
)

// PagesCmd implements the 'pages' command: a dry run that lists the compiled
// page set in output order without writing anything.
type PagesCmd struct {
	Kind string `short:"k" help:"Only show pages of this kind (post|list|feed|file)"`
}

var kindNormalizer = foundation.NewNormalizer(map[string]metrics.PageKindLabel{
	"post": metrics.KindPost,
	"list": metrics.KindList,
	"feed": metrics.KindFeed,
	"file": metrics.KindFile,
}, "")

func (p *PagesCmd) Run(_ *Global, root *CLI) error {
	var filter metrics.PageKindLabel
	if p.Kind != "" {
		kind, err := kindNormalizer.NormalizeWithError(p.Kind)
		if err != nil {
			return fmt.Errorf("unknown page kind %q (want post, list, feed, or file)", p.Kind)
		}
		filter = kind
	}

	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}

	pages, err := compiler.Pages()
	if err != nil {
		return err
	}
	slog.Info("Compilation completed", logfields.App(cfg.Blog.Name), logfields.Pages(len(pages)))

	for _, page := range pages {
		kind := pageKind(page)
		if filter != "" && kind != filter {
			continue
		}
		fmt.Printf("%-5s %s\n", kind, page.Path())
	}
	return nil
}

func pageKind(page blog.Page) metrics.PageKindLabel {
	switch page.(type) {
	case *blog.PostPage:
		return metrics.KindPost
	case *blog.ListPage:
		return metrics.KindList
	case *blog.FeedPage:
		return metrics.KindFeed
	case *blog.FilePage:
		return metrics.KindFile
	default:
		return "?"
	}
}
