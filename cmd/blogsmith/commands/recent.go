package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogsmith/internal/config"
)

// RecentCmd implements the 'recent' command: the newest posts, optionally
// restricted to one tag, with site-absolute paths.
type RecentCmd struct {
	Count int    `short:"n" help:"Number of posts to show" default:"5"`
	Tag   string `short:"t" help:"Only show posts carrying this tag"`
}

func (r *RecentCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}

	posts, err := compiler.RecentPosts(r.Count, r.Tag)
	if err != nil {
		return err
	}

	for _, post := range posts {
		fmt.Printf("%s  %-40s %s\n",
			post.Date().Format("2006-01-02"),
			post.Document().Title,
			post.Path())
	}
	return nil
}
