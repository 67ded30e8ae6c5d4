package versioning

import "git.home.luguber.info/inful/docsite/internal/foundation/normalization"

// CurrentVersion is the key of the unreleased version served from the docs directory.
const CurrentVersion = "current"

// Banner is the notice shown above the pages of a version.
type Banner string

const (
	BannerNone         Banner = "none"
	BannerUnreleased   Banner = "unreleased"
	BannerUnmaintained Banner = "unmaintained"
)

var banners = normalization.NewNormalizer([]Banner{BannerNone, BannerUnreleased, BannerUnmaintained}, nil, "")

// NormalizeBanner returns a canonical banner or empty string if unknown.
func NormalizeBanner(raw string) Banner {
	return banners.Normalize(raw)
}

// Version represents one published version of a docs instance
type Version struct {
	// Key is the version name ("current", "1.x").
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	// Path is the URL segment under the docs route; "" serves at the root.
	Path   string `json:"path" yaml:"path"`
	Banner Banner `json:"banner,omitempty" yaml:"banner,omitempty"`
	Badge  bool   `json:"badge" yaml:"badge"`
}

// IsDefault reports whether the version is served without a path prefix.
func (v Version) IsDefault() bool { return len(segments(v.Path)) == 0 }

// Route is the URL prefix a version is served under
type Route struct {
	Version Version `json:"version"`
	Prefix  string  `json:"prefix"` // Always starts and ends with "/"
}
