package builtin

import (
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
)

type redirectOptions struct {
	From any    `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

type clientRedirectsOptions struct {
	ID             string            `mapstructure:"id"`
	Redirects      []redirectOptions `mapstructure:"redirects"`
	FromExtensions []string          `mapstructure:"fromExtensions"`
	ToExtensions   []string          `mapstructure:"toExtensions"`
}

// Redirect maps an old URL path to its new location.
type Redirect struct {
	From string
	To   string
}

// ClientRedirectsInstance emits client-side redirect pages.
type ClientRedirectsInstance struct {
	plugin.BaseInstance
	Redirects      []Redirect
	FromExtensions []string
	ToExtensions   []string
}

func newClientRedirects(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts clientRedirectsOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}

	c := &ClientRedirectsInstance{
		BaseInstance:   plugin.BaseInstance{Meta: ctx.Meta(plugin.KindPlugin, ClientRedirects, opts.ID, plugin.CapabilityRedirects)},
		FromExtensions: opts.FromExtensions,
		ToExtensions:   opts.ToExtensions,
	}
	seen := make(map[string]string)
	for i, r := range opts.Redirects {
		field := fmt.Sprintf("%s[%d]", ctx.OptionField("redirects"), i)
		if r.To == "" {
			return nil, ferrors.ConfigError("redirect target is required").WithField(field + ".to").Build()
		}
		froms, err := stringList(r.From)
		if err != nil || len(froms) == 0 {
			return nil, ferrors.ConfigError("redirect source is required").WithField(field + ".from").WithCause(err).Build()
		}
		for _, from := range froms {
			if !strings.HasPrefix(from, "/") {
				return nil, ferrors.ConfigErrorf("redirect source %q must be an absolute path", from).WithField(field + ".from").Build()
			}
			if from == r.To {
				return nil, ferrors.ConfigErrorf("redirect %q points to itself", from).WithField(field).Build()
			}
			if prev, dup := seen[from]; dup {
				return nil, ferrors.ConfigErrorf("redirect source %q already declared at %s", from, prev).WithField(field + ".from").Build()
			}
			seen[from] = field
			c.Redirects = append(c.Redirects, Redirect{From: from, To: r.To})
		}
	}
	return c, nil
}
