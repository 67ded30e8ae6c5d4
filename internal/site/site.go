// Package site loads a site definition end to end: the definition file, its
// presets, themes and plugins, the documentation versions they publish and the
// files they reference.
package site

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/armon/go-radix"
	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/plugin"
	"git.home.luguber.info/inful/docsite/internal/plugin/builtin"
	"git.home.luguber.info/inful/docsite/internal/versioning"
)

// Site is a loaded definition. It is not modified after Load returns.
type Site struct {
	Path      string
	Config    *config.SiteConfig
	Instances *plugin.Set

	routes *radix.Tree // URL prefix -> routeMatch
}

type routeMatch struct {
	docs  *builtin.ContentDocsInstance
	route versioning.Route
}

// Option configures Load.
type Option func(*loader)

type loader struct {
	fs       afero.Fs
	registry *plugin.Registry
	recorder metrics.Recorder
	logger   *slog.Logger
}

// WithFS reads the definition and referenced files from fs instead of the OS filesystem.
func WithFS(fs afero.Fs) Option { return func(l *loader) { l.fs = fs } }

// WithRegistry resolves identifiers against r instead of the built-in registry.
func WithRegistry(r *plugin.Registry) Option { return func(l *loader) { l.registry = r } }

// WithRecorder records load outcomes on r.
func WithRecorder(r metrics.Recorder) Option { return func(l *loader) { l.recorder = r } }

// WithLogger sets the logger used for warnings during the load.
func WithLogger(logger *slog.Logger) Option { return func(l *loader) { l.logger = logger } }

// Load reads the definition at path, resolves its presets, themes and plugins,
// validates the documentation versions and checks referenced files exist.
func Load(path string, opts ...Option) (*Site, error) {
	l := &loader{recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(l)
	}
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.registry == nil {
		l.registry = builtin.NewRegistry()
	}
	if l.recorder == nil {
		l.recorder = metrics.NoopRecorder{}
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}

	start := time.Now()
	s, err := l.load(path)
	elapsed := time.Since(start)
	l.recorder.ObserveLoadDuration(elapsed)
	if err != nil {
		category := ""
		if ce, ok := ferrors.AsClassified(err); ok {
			category = string(ce.Category())
		}
		l.recorder.IncLoadOutcome(metrics.OutcomeFailed, category)
		return nil, err
	}

	l.recorder.IncLoadOutcome(metrics.OutcomeSuccess, "")
	for _, k := range plugin.Kinds {
		l.recorder.SetPluginsResolved(k.String(), len(s.Instances.ByKind(k)))
	}
	for _, d := range s.Docs() {
		l.recorder.SetDocsVersions(d.Metadata().ID, len(d.Versions))
	}
	l.logger.Debug("Site definition loaded",
		logfields.ConfigPath(path),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000),
		logfields.Count(len(s.Instances.All())))
	return s, nil
}

func (l *loader) load(path string) (*Site, error) {
	cfg, err := config.LoadFS(l.fs, path)
	if err != nil {
		return nil, err
	}

	set, err := l.registry.ResolveSite(plugin.NewContext(cfg, l.logger))
	if err != nil {
		if ce, ok := ferrors.AsClassified(err); ok {
			return nil, ce.WithContext(ferrors.ContextPath, path)
		}
		return nil, err
	}

	s := &Site{Path: path, Config: cfg, Instances: set}
	if err := s.checkDocsRoutes(); err != nil {
		return nil, err
	}
	if err := s.checkReferencedPaths(l.fs); err != nil {
		return nil, err
	}
	s.routes = s.routeIndex()
	return s, nil
}

// Dir returns the directory relative paths in the definition are resolved against.
func (s *Site) Dir() string { return filepath.Dir(s.Path) }

// Docs returns the docs instances in application order.
func (s *Site) Docs() []*builtin.ContentDocsInstance {
	var out []*builtin.ContentDocsInstance
	for _, inst := range s.Instances.Plugins {
		if d, ok := inst.(*builtin.ContentDocsInstance); ok {
			out = append(out, d)
		}
	}
	return out
}

// DocsRoutes pairs a docs instance with the URL prefixes its versions are served under.
type DocsRoutes struct {
	Docs   *builtin.ContentDocsInstance
	Routes []versioning.Route
}

// Routes returns the version routes of every docs instance.
func (s *Site) Routes() []DocsRoutes {
	docs := s.Docs()
	out := make([]DocsRoutes, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocsRoutes{Docs: d, Routes: d.Routes(s.Config.BaseURL)})
	}
	return out
}

// Match returns the docs instance and version serving urlPath. The longest
// version prefix across all docs instances wins.
func (s *Site) Match(urlPath string) (*builtin.ContentDocsInstance, versioning.Route, bool) {
	index := s.routes
	if index == nil {
		index = s.routeIndex()
	}
	_, v, ok := index.LongestPrefix(versioning.CleanPath(urlPath))
	if !ok {
		return nil, versioning.Route{}, false
	}
	m := v.(routeMatch)
	return m.docs, m.route, true
}

func (s *Site) routeIndex() *radix.Tree {
	tree := radix.New()
	for _, dr := range s.Routes() {
		for _, r := range dr.Routes {
			tree.Insert(r.Prefix, routeMatch{docs: dr.Docs, route: r})
		}
	}
	return tree
}

// checkDocsRoutes rejects two docs instances serving the same route base
// path, and any two versions of different instances that resolve to the same
// URL prefix.
func (s *Site) checkDocsRoutes() error {
	owner := make(map[string]*builtin.ContentDocsInstance)
	for _, d := range s.Docs() {
		if prev, dup := owner[d.RouteBasePath]; dup {
			return ferrors.VersioningConflictError(fmt.Sprintf("docs instances %q and %q both serve /%s",
				prev.Metadata().ID, d.Metadata().ID, d.RouteBasePath)).
				WithField(d.OptionField("routeBasePath")).
				WithContext("instances", []string{prev.Metadata().ID, d.Metadata().ID}).
				WithContext(ferrors.ContextPath, s.Path).
				Build()
		}
		owner[d.RouteBasePath] = d
	}

	claimed := make(map[string]routeMatch)
	for _, dr := range s.Routes() {
		for _, r := range dr.Routes {
			prev, dup := claimed[r.Prefix]
			if !dup {
				claimed[r.Prefix] = routeMatch{docs: dr.Docs, route: r}
				continue
			}
			first := prev.docs.Metadata().ID + "/" + prev.route.Version.Key
			second := dr.Docs.Metadata().ID + "/" + r.Version.Key
			return ferrors.VersioningConflictError(fmt.Sprintf("versions %s and %s both serve %s", first, second, r.Prefix)).
				WithField(versionField(dr.Docs, r.Version)).
				WithContext("versions", []string{first, second}).
				WithContext(ferrors.ContextPath, s.Path).
				Build()
		}
	}
	return nil
}

// versionField names the definition field that placed v at its URL prefix.
func versionField(d *builtin.ContentDocsInstance, v versioning.Version) string {
	if v.IsDefault() {
		return d.OptionField("routeBasePath")
	}
	return d.OptionField("versions." + v.Key + ".path")
}

// checkReferencedPaths requires every file named by the definition to exist.
// Site files resolve against the definition's directory, static files against
// each static directory in turn.
func (s *Site) checkReferencedPaths(fs afero.Fs) error {
	refs := []plugin.PathRef{}
	if s.Config.Favicon != "" {
		refs = append(refs, plugin.PathRef{Field: "favicon", Path: s.Config.Favicon, Static: true})
	}
	if logo := s.Config.ThemeConfig.Navbar.Logo; logo != nil && !isURL(logo.Src) {
		refs = append(refs, plugin.PathRef{Field: "themeConfig.navbar.logo.src", Path: logo.Src, Static: true})
	}
	for _, inst := range s.Instances.All() {
		if pr, ok := inst.(plugin.PathReferencer); ok {
			refs = append(refs, pr.ReferencedPaths()...)
		}
	}

	for _, ref := range refs {
		candidates := s.candidates(ref)
		found := false
		for _, c := range candidates {
			ok, err := afero.Exists(fs, c)
			if err != nil {
				return ferrors.FileSystemError("failed to check referenced path").
					WithField(ref.Field).
					WithContext(ferrors.ContextPath, c).
					WithCause(err).
					Build()
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			return ferrors.ConfigErrorf("unresolvable path %q", ref.Path).
				WithField(ref.Field).
				WithContext(ferrors.ContextPath, s.Path).
				WithContext("searched", candidates).
				Build()
		}
	}
	return nil
}

func (s *Site) candidates(ref plugin.PathRef) []string {
	p := filepath.FromSlash(strings.TrimPrefix(ref.Path, "/"))
	if !ref.Static {
		if filepath.IsAbs(ref.Path) {
			return []string{ref.Path}
		}
		return []string{filepath.Join(s.Dir(), p)}
	}
	out := make([]string, 0, len(s.Config.StaticDirectories))
	for _, dir := range s.Config.StaticDirectories {
		out = append(out, filepath.Join(s.Dir(), dir, p))
	}
	return out
}

func isURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasPrefix(s, "data:")
}
