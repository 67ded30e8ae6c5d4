package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if classified, ok := AsClassified(err); ok {
		return a.exitCodeFromClassified(classified)
	}
	return 1
}

func (a *CLIErrorAdapter) exitCodeFromClassified(err *ClassifiedError) int {
	switch err.Category() {
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryVersioningConflict:
		return 6
	case CategoryConfig:
		return 7
	case CategoryPluginResolution:
		return 9
	case CategoryInternal:
		return 10
	case CategoryFileSystem:
		return 11
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	if classified, ok := AsClassified(err); ok {
		return a.formatClassified(classified, err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// formatClassified names the offending field. Definition errors also show
// their immediate cause (parser position, type mismatch); the full chain is
// only shown in verbose mode.
func (a *CLIErrorAdapter) formatClassified(classified *ClassifiedError, full error) string {
	if a.verbose {
		return fmt.Sprintf("Error: %v", full)
	}
	msg := fmt.Sprintf("%s: %s", categoryLabel(classified.Category()), classified.Message())
	if field := classified.Field(); field != "" {
		msg = fmt.Sprintf("%s: %s: %s", categoryLabel(classified.Category()), field, classified.Message())
	}
	if cause := classified.Cause(); cause != nil && classified.Category() == CategoryConfig {
		msg += ": " + cause.Error()
	}
	return msg
}

func categoryLabel(c ErrorCategory) string {
	switch c {
	case CategoryConfig:
		return "ConfigError"
	case CategoryPluginResolution:
		return "PluginResolutionError"
	case CategoryVersioningConflict:
		return "VersioningConflictError"
	case CategoryValidation:
		return "ValidationError"
	case CategoryFileSystem:
		return "FileSystemError"
	default:
		return "Error"
	}
}

// HandleError processes an error and exits the program with appropriate code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	exitCode := a.ExitCodeFor(err)
	message := a.FormatError(err)

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintf(a.out, "%s\n", message)
	a.exit(exitCode)
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	if classified, ok := AsClassified(err); ok {
		return classified.Severity() != SeverityFatal
	}
	return true
}

func (a *CLIErrorAdapter) logError(err error) {
	if classified, ok := AsClassified(err); ok {
		level := a.slogLevelFromSeverity(classified.Severity())
		attrs := []slog.Attr{
			slog.String("category", string(classified.Category())),
		}
		if field := classified.Field(); field != "" {
			attrs = append(attrs, slog.String(ContextField, field))
		}
		if cause := classified.Cause(); cause != nil {
			attrs = append(attrs, slog.String("cause", cause.Error()))
		}
		a.logger.LogAttrs(context.Background(), level, classified.Message(), attrs...)
		return
	}
	a.logger.Error("Unclassified error", "error", err)
}

func (a *CLIErrorAdapter) slogLevelFromSeverity(severity ErrorSeverity) slog.Level {
	switch severity {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
