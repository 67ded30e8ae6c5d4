package builtin

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

type searchLocalOptions struct {
	Hashed                           any      `mapstructure:"hashed"`
	Language                         any      `mapstructure:"language"`
	IndexDocs                        *bool    `mapstructure:"indexDocs"`
	IndexBlog                        *bool    `mapstructure:"indexBlog"`
	IndexPages                       bool     `mapstructure:"indexPages"`
	DocsRouteBasePath                any      `mapstructure:"docsRouteBasePath"`
	BlogRouteBasePath                any      `mapstructure:"blogRouteBasePath"`
	DocsDir                          any      `mapstructure:"docsDir"`
	HighlightSearchTermsOnTargetPage bool     `mapstructure:"highlightSearchTermsOnTargetPage"`
	SearchResultLimits               int      `mapstructure:"searchResultLimits"`
	SearchResultContextMaxLength     int      `mapstructure:"searchResultContextMaxLength"`
	ExplicitSearchResultPath         bool     `mapstructure:"explicitSearchResultPath"`
	IgnoreFiles                      []string `mapstructure:"ignoreFiles"`
	SearchBarShortcut                *bool    `mapstructure:"searchBarShortcut"`
	SearchBarShortcutHint            *bool    `mapstructure:"searchBarShortcutHint"`
	SearchBarPosition                string   `mapstructure:"searchBarPosition"`
}

// HashMode controls whether index file names carry a content hash.
type HashMode string

const (
	HashOff      HashMode = "off"
	HashQuery    HashMode = "query"
	HashFilename HashMode = "filename"
)

// SearchLocalInstance builds an offline search index.
type SearchLocalInstance struct {
	plugin.BaseInstance
	Hashed             HashMode
	Languages          []string
	IndexDocs          bool
	IndexBlog          bool
	IndexPages         bool
	DocsRouteBasePaths []string
	ResultLimits       int
}

func newSearchLocal(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts searchLocalOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}

	s := &SearchLocalInstance{
		BaseInstance: plugin.BaseInstance{Meta: ctx.Meta(plugin.KindTheme, SearchLocal, "", plugin.CapabilitySearch)},
		IndexDocs:    opts.IndexDocs == nil || *opts.IndexDocs,
		IndexBlog:    opts.IndexBlog == nil || *opts.IndexBlog,
		IndexPages:   opts.IndexPages,
		ResultLimits: opts.SearchResultLimits,
	}
	if s.ResultLimits == 0 {
		s.ResultLimits = 8
	}
	if s.ResultLimits < 0 {
		return nil, ferrors.ConfigError("must be positive").WithField(ctx.OptionField("searchResultLimits")).Build()
	}

	switch h := opts.Hashed.(type) {
	case nil:
		s.Hashed = HashOff
	case string:
		if HashMode(h) != HashFilename && HashMode(h) != HashQuery {
			return nil, ferrors.ConfigErrorf("invalid value %q (allowed: true|false|query|filename)", h).WithField(ctx.OptionField("hashed")).Build()
		}
		s.Hashed = HashMode(h)
	default:
		on, err := cast.ToBoolE(h)
		if err != nil {
			return nil, ferrors.ConfigError("invalid value").WithField(ctx.OptionField("hashed")).WithCause(err).Build()
		}
		s.Hashed = HashOff
		if on {
			s.Hashed = HashQuery
		}
	}

	langs, err := stringList(opts.Language)
	if err != nil {
		return nil, ferrors.ConfigError("expected a language or list of languages").WithField(ctx.OptionField("language")).WithCause(err).Build()
	}
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	for _, l := range langs {
		if _, err := language.Parse(l); err != nil {
			return nil, ferrors.ConfigErrorf("invalid language %q", l).WithField(ctx.OptionField("language")).WithCause(err).Build()
		}
	}
	s.Languages = langs

	routes, err := stringList(opts.DocsRouteBasePath)
	if err != nil {
		return nil, ferrors.ConfigError("expected a path or list of paths").WithField(ctx.OptionField("docsRouteBasePath")).WithCause(err).Build()
	}
	for _, r := range routes {
		s.DocsRouteBasePaths = append(s.DocsRouteBasePaths, strings.Trim(r, "/"))
	}
	if len(s.DocsRouteBasePaths) == 0 {
		s.DocsRouteBasePaths = []string{DefaultDocsRouteBasePath}
	}
	return s, nil
}
