package versioning

import (
	"fmt"
	"sort"
	"strings"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// segments splits a version path into its non-empty segments.
func segments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// hasSegmentPrefix reports whether a is a segment-wise prefix of b (or equal to it).
func hasSegmentPrefix(a, b []string) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Validate checks that every version owns a distinct URL prefix. At most one
// version may have an empty path; all other paths must be unique and must not
// contain one another segment-wise ("v1" and "v1/beta" overlap, "v1" and "v10" do not).
// field names the docs instance in error messages.
func Validate(field string, versions []Version) error {
	sorted := make([]Version, len(versions))
	copy(sorted, versions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var root string
	seen := make(map[string]struct{}, len(sorted))
	for _, v := range sorted {
		if strings.TrimSpace(v.Key) == "" {
			return ferrors.ConfigError("version key is required").WithField(field).Build()
		}
		if _, dup := seen[v.Key]; dup {
			return ferrors.ConfigErrorf("version %q declared twice", v.Key).WithField(field).Build()
		}
		seen[v.Key] = struct{}{}

		if v.Banner != "" && NormalizeBanner(string(v.Banner)) != v.Banner {
			return ferrors.ConfigErrorf("invalid banner %q (allowed: %s)", v.Banner, banners.Allowed()).
				WithField(fmt.Sprintf("%s.%s.banner", field, v.Key)).
				Build()
		}
		if strings.Contains(strings.Trim(v.Path, "/"), "//") {
			return ferrors.ConfigErrorf("path %q contains an empty segment", v.Path).
				WithField(fmt.Sprintf("%s.%s.path", field, v.Key)).
				Build()
		}
		if len(segments(v.Path)) == 0 {
			if root != "" {
				return conflict(field, root, v.Key, "both are served without a path")
			}
			root = v.Key
		}
	}

	for i := 0; i < len(sorted); i++ {
		a := segments(sorted[i].Path)
		if len(a) == 0 {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			b := segments(sorted[j].Path)
			if len(b) == 0 {
				continue
			}
			switch {
			case hasSegmentPrefix(a, b) && len(a) == len(b):
				return conflict(field, sorted[i].Key, sorted[j].Key, fmt.Sprintf("both claim path %q", strings.Join(a, "/")))
			case hasSegmentPrefix(a, b) || hasSegmentPrefix(b, a):
				return conflict(field, sorted[i].Key, sorted[j].Key,
					fmt.Sprintf("paths %q and %q overlap", strings.Join(a, "/"), strings.Join(b, "/")))
			}
		}
	}
	return nil
}

func conflict(field, a, b, detail string) error {
	return ferrors.VersioningConflictError(fmt.Sprintf("versions %q and %q conflict: %s", a, b, detail)).
		WithField(field).
		WithContext("versions", []string{a, b}).
		Build()
}

// ValidateSelection checks that lastVersion and onlyIncludeVersions name declared versions.
func ValidateSelection(field string, versions []Version, lastVersion string, only []string) error {
	declared := make(map[string]struct{}, len(versions))
	keys := make([]string, 0, len(versions))
	for _, v := range versions {
		declared[v.Key] = struct{}{}
		keys = append(keys, v.Key)
	}
	sort.Strings(keys)
	for i, k := range only {
		if _, ok := declared[k]; !ok {
			return ferrors.ConfigErrorf("unknown version %q (declared: %s)", k, strings.Join(keys, ", ")).
				WithField(fmt.Sprintf("%s.onlyIncludeVersions[%d]", field, i)).
				Build()
		}
	}
	if lastVersion == "" {
		return nil
	}
	if _, ok := declared[lastVersion]; !ok {
		return ferrors.ConfigErrorf("unknown version %q (declared: %s)", lastVersion, strings.Join(keys, ", ")).
			WithField(field + ".lastVersion").
			Build()
	}
	if len(only) > 0 {
		for _, k := range only {
			if k == lastVersion {
				return nil
			}
		}
		return ferrors.ConfigErrorf("lastVersion %q is excluded by onlyIncludeVersions", lastVersion).
			WithField(field + ".lastVersion").
			Build()
	}
	return nil
}
