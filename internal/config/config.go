// Package config loads and validates the site configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogsmith/internal/blog"
	"git.home.luguber.info/inful/blogsmith/internal/errors"
)

// Config is the root configuration document.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Blog      BlogConfig      `yaml:"blog"`
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	State     StateConfig     `yaml:"state"`
}

// SiteConfig describes the site as a whole.
type SiteConfig struct {
	Title         string `yaml:"title"`
	URL           string `yaml:"url"`
	PageExtension string `yaml:"page_extension"`
}

// BlogConfig configures one content application.
type BlogConfig struct {
	Name            string       `yaml:"name"`
	Dir             string       `yaml:"dir"`
	SourceExtension string       `yaml:"source_extension"`
	PageSize        int          `yaml:"page_size"`
	IndexPath       string       `yaml:"index_path"`
	PagePath        string       `yaml:"page_path"`
	FeedBase        string       `yaml:"feed_base"`
	IndexTags       []string     `yaml:"index_tags"`
	Feeds           []FeedConfig `yaml:"feeds"`
}

// FeedConfig describes one syndication format. Order is significant.
type FeedConfig struct {
	Key       string `yaml:"key"`
	Text      string `yaml:"text"`
	MediaType string `yaml:"media_type"`
	Template  string `yaml:"template"`
}

// TemplatesConfig locates the template tree.
type TemplatesConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig locates the generated site.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// StateConfig locates the build-log database.
type StateConfig struct {
	Path string `yaml:"path"`
}

// Load reads, defaults, and validates a configuration file. A .env file in
// the working directory is loaded first (best effort, never overriding the
// process environment); BLOGSMITH_* variables override file values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "read configuration")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "parse configuration")
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BLOGSMITH_SITE_URL"); v != "" {
		c.Site.URL = v
	}
	if v := os.Getenv("BLOGSMITH_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("BLOGSMITH_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Blog.PageSize = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Site.PageExtension == "" {
		c.Site.PageExtension = "html"
	}
	if c.Blog.Name == "" {
		c.Blog.Name = "blog"
	}
	if c.Blog.Dir == "" {
		c.Blog.Dir = "content"
	}
	if c.Blog.SourceExtension == "" {
		c.Blog.SourceExtension = ".md"
	}
	if c.Blog.PageSize == 0 {
		c.Blog.PageSize = 10
	}
	if c.Blog.IndexPath == "" {
		c.Blog.IndexPath = "index.html"
	}
	if c.Blog.PagePath == "" {
		c.Blog.PagePath = "page/%d/index.html"
	}
	if c.Blog.FeedBase == "" {
		c.Blog.FeedBase = "index"
	}
	if c.Templates.Dir == "" {
		c.Templates.Dir = "templates"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "site"
	}
	if c.State.Path == "" {
		c.State.Path = ".blogsmith/state.db"
	}
}

func (c *Config) validate() error {
	if c.Blog.PageSize <= 0 {
		return errors.PageSizeInvalid(c.Blog.PageSize)
	}
	for i, feed := range c.Blog.Feeds {
		if feed.Key == "" {
			return errors.ConfigInvalid(fmt.Sprintf("feeds[%d].key", i), "must not be empty")
		}
		if feed.MediaType == "" {
			return errors.ConfigInvalid(fmt.Sprintf("feeds[%d].media_type", i), "must not be empty")
		}
	}
	return nil
}

// Settings maps the configuration onto compiler settings.
func (c *Config) Settings() (blog.Settings, error) {
	directives, err := blog.ParseDirectives(c.Blog.IndexTags)
	if err != nil {
		return blog.Settings{}, err
	}

	var feeds []blog.FeedKind
	for _, f := range c.Blog.Feeds {
		tmpl := f.Template
		if tmpl == "" {
			tmpl = f.Key
		}
		text := f.Text
		if text == "" {
			text = f.Key
		}
		feeds = append(feeds, blog.FeedKind{Key: f.Key, Text: text, MediaType: f.MediaType, Template: tmpl})
	}

	return blog.Settings{
		Name:          c.Blog.Name,
		URLRoot:       c.Site.URL,
		PageExtension: c.Site.PageExtension,
		PageSize:      c.Blog.PageSize,
		IndexPath:     c.Blog.IndexPath,
		NumberedPath:  c.Blog.PagePath,
		IndexFeedBase: c.Blog.FeedBase,
		IndexTags:     directives,
		Feeds:         feeds,
	}, nil
}
