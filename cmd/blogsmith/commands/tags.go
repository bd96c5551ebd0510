package commands

import (
	"fmt"

	"git.home.luguber.info/inful/blogsmith/internal/config"
)

// TagsCmd implements the 'tags' command.
type TagsCmd struct{}

func (t *TagsCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	compiler, err := newCompiler(cfg)
	if err != nil {
		return err
	}

	tags, err := compiler.Tags()
	if err != nil {
		return err
	}

	for _, tag := range tags {
		fmt.Printf("%-20s %s\n", tag.Text, tag.Href)
	}
	return nil
}
