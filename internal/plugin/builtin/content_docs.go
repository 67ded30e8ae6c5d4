package builtin

import (
	"fmt"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/plugin"
	"git.home.luguber.info/inful/docsite/internal/versioning"
)

// Docs defaults.
const (
	DefaultDocsPath          = "docs"
	DefaultDocsRouteBasePath = "docs"
	currentVersionLabel      = "Next"
	currentVersionPath       = "next"
)

type docsVersionOptions struct {
	Label     string  `mapstructure:"label"`
	Path      *string `mapstructure:"path"`
	Banner    string  `mapstructure:"banner"`
	Badge     *bool   `mapstructure:"badge"`
	ClassName string  `mapstructure:"className"`
	NoIndex   bool    `mapstructure:"noIndex"`
}

type docsOptions struct {
	ID                    string                        `mapstructure:"id"`
	Path                  string                        `mapstructure:"path"`
	RouteBasePath         *string                       `mapstructure:"routeBasePath"`
	SidebarPath           any                           `mapstructure:"sidebarPath"`
	EditURL               string                        `mapstructure:"editUrl"`
	EditCurrentVersion    bool                          `mapstructure:"editCurrentVersion"`
	EditLocalizedFiles    bool                          `mapstructure:"editLocalizedFiles"`
	ShowLastUpdateTime    bool                          `mapstructure:"showLastUpdateTime"`
	ShowLastUpdateAuthor  bool                          `mapstructure:"showLastUpdateAuthor"`
	Breadcrumbs           *bool                         `mapstructure:"breadcrumbs"`
	Include               []string                      `mapstructure:"include"`
	Exclude               []string                      `mapstructure:"exclude"`
	LastVersion           string                        `mapstructure:"lastVersion"`
	IncludeCurrentVersion *bool                         `mapstructure:"includeCurrentVersion"`
	OnlyIncludeVersions   []string                      `mapstructure:"onlyIncludeVersions"`
	DisableVersioning     bool                          `mapstructure:"disableVersioning"`
	Versions              map[string]docsVersionOptions `mapstructure:"versions"`
}

// ContentDocsInstance serves versioned documentation from a directory.
type ContentDocsInstance struct {
	plugin.BaseInstance
	Path          string
	RouteBasePath string
	SidebarPath   string
	EditURL       string
	LastVersion   string
	Versions      []versioning.Version

	sidebarField string
	optionsField string
}

func newContentDocs(ctx *plugin.Context, options map[string]any) (plugin.Instance, error) {
	var opts docsOptions
	if err := ctx.DecodeOptions(options, &opts); err != nil {
		return nil, err
	}

	d := &ContentDocsInstance{
		BaseInstance:  plugin.BaseInstance{Meta: ctx.Meta(plugin.KindPlugin, ContentDocs, opts.ID, plugin.CapabilityContent)},
		Path:          opts.Path,
		RouteBasePath: DefaultDocsRouteBasePath,
		EditURL:       opts.EditURL,
	}
	if d.Path == "" {
		d.Path = DefaultDocsPath
	}
	if opts.RouteBasePath != nil {
		d.RouteBasePath = strings.Trim(*opts.RouteBasePath, "/")
	}

	switch sp := opts.SidebarPath.(type) {
	case nil:
	case bool:
		if sp {
			return nil, ferrors.ConfigError("expected a file path or false").WithField(ctx.OptionField("sidebarPath")).Build()
		}
	case string:
		d.SidebarPath = sp
	default:
		return nil, ferrors.ConfigErrorf("expected a file path or false, got %T", sp).WithField(ctx.OptionField("sidebarPath")).Build()
	}

	if opts.DisableVersioning && len(opts.Versions) > 0 {
		return nil, ferrors.ConfigError("versions cannot be set when versioning is disabled").WithField(ctx.OptionField("versions")).Build()
	}

	versions, lastVersion, err := buildVersions(ctx, opts)
	if err != nil {
		return nil, err
	}
	d.Versions = versions
	d.LastVersion = lastVersion
	d.sidebarField = ctx.OptionField("sidebarPath")
	d.optionsField = ctx.OptionsField
	return d, nil
}

// OptionField returns the dotted definition field of one of the instance's options.
func (d *ContentDocsInstance) OptionField(key string) string {
	return d.optionsField + "." + key
}

// buildVersions turns the versions option into the published version table.
// The current version is always declared unless includeCurrentVersion is false.
// The last version defaults to current, or to the newest release when current
// is not published. Unset paths default to "" for the last version, "next" for
// an unreleased current version and the key otherwise.
func buildVersions(ctx *plugin.Context, opts docsOptions) ([]versioning.Version, string, error) {
	includeCurrent := opts.IncludeCurrentVersion == nil || *opts.IncludeCurrentVersion
	if _, declared := opts.Versions[versioning.CurrentVersion]; declared && !includeCurrent {
		return nil, "", ferrors.ConfigError("current version is configured but includeCurrentVersion is false").
			WithField(ctx.OptionField("versions.current")).
			Build()
	}

	keys := make([]string, 0, len(opts.Versions)+1)
	if _, declared := opts.Versions[versioning.CurrentVersion]; includeCurrent && !declared {
		keys = append(keys, versioning.CurrentVersion)
	}
	for k := range opts.Versions {
		keys = append(keys, k)
	}
	// current first, then releases newest first
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == versioning.CurrentVersion || keys[j] == versioning.CurrentVersion {
			return keys[i] == versioning.CurrentVersion
		}
		return versioning.CompareKeys(keys[i], keys[j]) > 0
	})

	declared := make([]versioning.Version, 0, len(keys))
	for _, k := range keys {
		declared = append(declared, versioning.Version{Key: k})
	}
	if err := versioning.ValidateSelection(ctx.OptionsField, declared, opts.LastVersion, opts.OnlyIncludeVersions); err != nil {
		return nil, "", err
	}

	included := keys
	if len(opts.OnlyIncludeVersions) > 0 {
		included = included[:0:0]
		for _, k := range keys {
			if contains(opts.OnlyIncludeVersions, k) {
				included = append(included, k)
			}
		}
	}
	if len(included) == 0 {
		return nil, "", ferrors.ConfigError("no version left to publish").WithField(ctx.OptionsField).Build()
	}

	lastVersion := opts.LastVersion
	if lastVersion == "" {
		lastVersion = included[0]
	}

	versions := make([]versioning.Version, 0, len(included))
	for _, k := range included {
		vo := opts.Versions[k]
		v := versioning.Version{Key: k, Label: vo.Label, Banner: versioning.Banner(vo.Banner)}
		if b := versioning.NormalizeBanner(vo.Banner); b != "" {
			v.Banner = b
		}
		switch {
		case vo.Path != nil:
			v.Path = strings.Trim(*vo.Path, "/")
		case k == lastVersion:
			v.Path = ""
		case k == versioning.CurrentVersion:
			v.Path = currentVersionPath
		default:
			v.Path = k
		}
		if v.Label == "" {
			v.Label = k
			if k == versioning.CurrentVersion {
				v.Label = currentVersionLabel
			}
		}
		if vo.Badge != nil {
			v.Badge = *vo.Badge
		} else {
			v.Badge = len(included) > 1
		}
		versions = append(versions, v)
	}

	if err := versioning.Validate(ctx.OptionField("versions"), versions); err != nil {
		return nil, "", err
	}
	return versions, lastVersion, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Routes returns the URL prefixes the versions are served under.
func (d *ContentDocsInstance) Routes(baseURL string) []versioning.Route {
	return versioning.Routes(baseURL, d.RouteBasePath, d.Versions)
}

// Version returns the version with key.
func (d *ContentDocsInstance) Version(key string) (versioning.Version, bool) {
	for _, v := range d.Versions {
		if v.Key == key {
			return v, true
		}
	}
	return versioning.Version{}, false
}

// ContentPath returns the directory documents are read from.
func (d *ContentDocsInstance) ContentPath() string { return d.Path }

// ReferencedPaths reports the sidebar file.
func (d *ContentDocsInstance) ReferencedPaths() []plugin.PathRef {
	if d.SidebarPath == "" {
		return nil
	}
	return []plugin.PathRef{{Field: d.sidebarField, Path: d.SidebarPath}}
}

// String summarizes the instance for listings.
func (d *ContentDocsInstance) String() string {
	return fmt.Sprintf("%s path=%s route=/%s versions=%d", d.Metadata(), d.Path, d.RouteBasePath, len(d.Versions))
}
