// Package linkcheck verifies that relative markdown links in the docs
// directories point at files that exist.
package linkcheck

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"git.home.luguber.info/inful/docsite/internal/config"
	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/frontmatter"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/versioning"
)

// BrokenLink is a link whose target file does not exist.
type BrokenLink struct {
	File        string
	Line        int
	Kind        LinkKind
	Destination string
}

func (b BrokenLink) String() string {
	if b.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", b.File, b.Line, b.Destination)
	}
	return fmt.Sprintf("%s: %s", b.File, b.Destination)
}

// Report is the result of a check.
type Report struct {
	Files  int
	Links  int
	Broken []BrokenLink
}

// Checker walks content directories on a filesystem.
type Checker struct {
	fs     afero.Fs
	logger *slog.Logger
}

// NewChecker creates a checker reading from fsys.
func NewChecker(fsys afero.Fs, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{fs: fsys, logger: logger}
}

// ContentDirs returns the directories holding the documents of every docs
// instance: the current version's path and versioned_docs/version-<key> for
// released versions ("<id>_versioned_docs" for instances other than default).
func ContentDirs(s *site.Site) []string {
	var dirs []string
	for _, d := range s.Docs() {
		prefix := "versioned_docs"
		if id := d.Metadata().ID; id != "default" {
			prefix = id + "_versioned_docs"
		}
		for _, v := range d.Versions {
			if v.Key == versioning.CurrentVersion {
				dirs = append(dirs, filepath.Join(s.Dir(), d.Path))
				continue
			}
			dirs = append(dirs, filepath.Join(s.Dir(), prefix, "version-"+v.Key))
		}
	}
	return dirs
}

// CheckSite checks every content directory of the site and applies the
// site's onBrokenMarkdownLinks policy.
func (c *Checker) CheckSite(s *site.Site) (*Report, error) {
	report, err := c.Check(ContentDirs(s)...)
	if err != nil {
		return nil, err
	}
	return report, c.Apply(report, s.Config.OnBrokenMarkdownLinks)
}

// Check walks dirs and reports links to missing files. Missing directories are skipped.
func (c *Checker) Check(dirs ...string) (*Report, error) {
	report := &Report{}
	for _, dir := range dirs {
		exists, err := afero.DirExists(c.fs, dir)
		if err != nil {
			return nil, ferrors.FileSystemError("failed to stat content directory").
				WithContext(ferrors.ContextPath, dir).WithCause(err).Build()
		}
		if !exists {
			c.logger.Debug("Content directory missing, skipping", logfields.File(dir))
			continue
		}
		err = afero.Walk(c.fs, dir, func(p string, info fs.FileInfo, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if info.IsDir() || !isMarkdown(p) {
				return nil
			}
			return c.checkFile(p, report)
		})
		if err != nil {
			return nil, ferrors.FileSystemError("failed to walk content directory").
				WithContext(ferrors.ContextPath, dir).WithCause(err).Build()
		}
	}
	sort.SliceStable(report.Broken, func(i, j int) bool {
		if report.Broken[i].File != report.Broken[j].File {
			return report.Broken[i].File < report.Broken[j].File
		}
		return report.Broken[i].Line < report.Broken[j].Line
	})
	return report, nil
}

func (c *Checker) checkFile(file string, report *Report) error {
	src, err := afero.ReadFile(c.fs, file)
	if err != nil {
		return err
	}
	report.Files++
	if fm, _, _, had, _ := frontmatter.Split(src); had {
		if _, err := frontmatter.ParseYAML(fm); err != nil {
			c.logger.Warn("Invalid front matter", logfields.File(file), logfields.Error(err))
		}
	}
	for _, link := range ExtractLinks(src) {
		target, ok := localTarget(link)
		if !ok {
			continue
		}
		report.Links++
		resolved := filepath.Join(filepath.Dir(file), filepath.FromSlash(target))
		exists, err := afero.Exists(c.fs, resolved)
		if err != nil {
			return err
		}
		if !exists {
			report.Broken = append(report.Broken, BrokenLink{File: file, Line: link.Line, Kind: link.Kind, Destination: link.Destination})
		}
	}
	return nil
}

// localTarget returns the file path a link points at, if it points at a file.
// URLs, site-absolute routes and pure fragments are not file links. Plain
// relative links count only when they name a markdown file; images always do.
func localTarget(link Link) (string, bool) {
	dest := strings.TrimSpace(link.Destination)
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return "", false
	}
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	p := u.Path
	if p == "" {
		return "", false
	}
	if link.Kind != LinkKindImage && !isMarkdown(p) {
		return "", false
	}
	return path.Clean(p), true
}

func isMarkdown(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".md" || ext == ".mdx"
}

// Apply reports broken links according to severity. Only throw returns an error.
func (c *Checker) Apply(report *Report, severity config.ReportingSeverity) error {
	if len(report.Broken) == 0 {
		return nil
	}
	switch severity {
	case config.SeverityIgnore:
		return nil
	case config.SeverityThrow:
		list := make([]string, len(report.Broken))
		for i, b := range report.Broken {
			list[i] = b.String()
		}
		return ferrors.ConfigErrorf("%d broken markdown link(s):\n  %s", len(list), strings.Join(list, "\n  ")).
			WithField("onBrokenMarkdownLinks").
			WithContext("broken", list).
			Build()
	}
	level := slog.LevelWarn
	if severity == config.SeverityLog {
		level = slog.LevelInfo
	}
	for _, b := range report.Broken {
		c.logger.Log(context.Background(), level, "Broken markdown link",
			logfields.File(b.File), logfields.Link(b.Destination), slog.Int("line", b.Line))
	}
	return nil
}
