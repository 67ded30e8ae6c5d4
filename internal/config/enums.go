package config

import "git.home.luguber.info/inful/docsite/internal/foundation/normalization"

// ReportingSeverity controls how the generator reacts to broken links and duplicate routes.
type ReportingSeverity string

const (
	SeverityIgnore ReportingSeverity = "ignore"
	SeverityLog    ReportingSeverity = "log"
	SeverityWarn   ReportingSeverity = "warn"
	SeverityThrow  ReportingSeverity = "throw"
)

var severities = normalization.NewNormalizer(
	[]ReportingSeverity{SeverityIgnore, SeverityLog, SeverityWarn, SeverityThrow},
	map[string]ReportingSeverity{"warning": SeverityWarn, "error": SeverityThrow},
	"",
)

// NormalizeReportingSeverity returns a canonical severity or empty string if unknown.
func NormalizeReportingSeverity(raw string) ReportingSeverity {
	return severities.Normalize(raw)
}

// MarkdownFormat selects how content files are parsed.
type MarkdownFormat string

const (
	MarkdownFormatMDX    MarkdownFormat = "mdx"
	MarkdownFormatMD     MarkdownFormat = "md"
	MarkdownFormatDetect MarkdownFormat = "detect"
)

var markdownFormats = normalization.NewNormalizer(
	[]MarkdownFormat{MarkdownFormatMDX, MarkdownFormatMD, MarkdownFormatDetect},
	map[string]MarkdownFormat{"markdown": MarkdownFormatMD, "commonmark": MarkdownFormatMD},
	"",
)

// NormalizeMarkdownFormat returns a canonical markdown format or empty string if unknown.
func NormalizeMarkdownFormat(raw string) MarkdownFormat {
	return markdownFormats.Normalize(raw)
}

// NavbarPosition places a navbar item.
type NavbarPosition string

const (
	PositionLeft  NavbarPosition = "left"
	PositionRight NavbarPosition = "right"
)

var navbarPositions = normalization.NewNormalizer([]NavbarPosition{PositionLeft, PositionRight}, nil, "")

// NormalizeNavbarPosition returns a canonical position or empty string if unknown.
func NormalizeNavbarPosition(raw string) NavbarPosition {
	return navbarPositions.Normalize(raw)
}

// FooterStyle is the footer color scheme.
type FooterStyle string

const (
	FooterDark  FooterStyle = "dark"
	FooterLight FooterStyle = "light"
)

var footerStyles = normalization.NewNormalizer([]FooterStyle{FooterDark, FooterLight}, nil, "")

// NormalizeFooterStyle returns a canonical footer style or empty string if unknown.
func NormalizeFooterStyle(raw string) FooterStyle {
	return footerStyles.Normalize(raw)
}
