package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const starterConfig = `# blogsmith configuration
site:
  title: "My Blog"
  url: "https://example.com/blog"
  page_extension: html

blog:
  dir: content
  page_size: 10
  index_path: index.html
  page_path: page/%d/index.html
  # index_tags filter the main index only; tag listings are unaffected.
  # "-draft" excludes posts tagged draft, "+news" re-includes posts tagged news.
  index_tags: []
  feeds:
    - key: rss
      text: RSS
      media_type: application/rss+xml
      template: rss
    - key: atom
      text: Atom
      media_type: application/atom+xml
      template: atom

templates:
  dir: templates

output:
  dir: site

state:
  path: .blogsmith/state.db
`

// Init writes a starter configuration file. Existing files are preserved
// unless force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	// #nosec G306 -- configuration is not sensitive
	return os.WriteFile(path, []byte(starterConfig), 0o644)
}
