package builtin

import (
	"strings"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

type blogOptions struct {
	ID                   string `mapstructure:"id"`
	Path                 string `mapstructure:"path"`
	RouteBasePath        string `mapstructure:"routeBasePath"`
	TagsBasePath         string `mapstructure:"tagsBasePath"`
	BlogTitle            string `mapstructure:"blogTitle"`
	BlogDescription      string `mapstructure:"blogDescription"`
	BlogSidebarTitle     string `mapstructure:"blogSidebarTitle"`
	BlogSidebarCount     any    `mapstructure:"blogSidebarCount"`
	PostsPerPage         any    `mapstructure:"postsPerPage"`
	ShowReadingTime      *bool  `mapstructure:"showReadingTime"`
	EditURL              string `mapstructure:"editUrl"`
	AuthorsMapPath       string `mapstructure:"authorsMapPath"`
	ShowLastUpdateTime   bool   `mapstructure:"showLastUpdateTime"`
	ShowLastUpdateAuthor bool   `mapstructure:"showLastUpdateAuthor"`
	Feed                 any    `mapstructure:"feedOptions"`
}

// ContentBlogInstance serves blog posts from a directory.
type ContentBlogInstance struct {
	plugin.BaseInstance
	Path             string
	RouteBasePath    string
	Title            string
	PostsPerPage     int // -1 means all posts on one page
	BlogSidebarCount int // -1 means all posts
	ShowReadingTime  bool
}

func newContentBlog(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts blogOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}

	b := &ContentBlogInstance{
		BaseInstance:    plugin.BaseInstance{Meta: ctx.Meta(plugin.KindPlugin, ContentBlog, opts.ID, plugin.CapabilityContent)},
		Path:            opts.Path,
		RouteBasePath:   strings.Trim(opts.RouteBasePath, "/"),
		Title:           opts.BlogTitle,
		ShowReadingTime: opts.ShowReadingTime == nil || *opts.ShowReadingTime,
	}
	if b.Path == "" {
		b.Path = "blog"
	}
	if opts.RouteBasePath == "" {
		b.RouteBasePath = "blog"
	}
	if b.Title == "" {
		b.Title = "Blog"
	}

	var err error
	if b.PostsPerPage, err = countOrAll(opts.PostsPerPage, 10); err != nil {
		return nil, ferrors.ConfigError("invalid value").WithField(ctx.OptionField("postsPerPage")).WithCause(err).Build()
	}
	if b.PostsPerPage == 0 {
		return nil, ferrors.ConfigError("must be at least 1").WithField(ctx.OptionField("postsPerPage")).Build()
	}
	if b.BlogSidebarCount, err = countOrAll(opts.BlogSidebarCount, 5); err != nil {
		return nil, ferrors.ConfigError("invalid value").WithField(ctx.OptionField("blogSidebarCount")).WithCause(err).Build()
	}
	return b, nil
}

// ContentPath returns the directory posts are read from.
func (b *ContentBlogInstance) ContentPath() string { return b.Path }
