package logger

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgWhite),
	slog.LevelInfo:  color.New(color.FgBlue),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgMagenta, color.Bold),
}

// ColorizeLevel replaces the level attribute with a colored, bracketed name,
// i.e., "[INFO]".
//
// ColorizeLevel is a ReplaceAttr function for a [log/slog.Handler].
func ColorizeLevel(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}

	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	name := lvl.String()
	if lvl == LevelFatal {
		name = "FATAL"
	}

	c, ok := levelColors[lvl]
	if !ok {
		c = color.New(color.Reset)
	}

	return slog.String(a.Key, c.Sprintf("[%s]", name))
}

// DeleteLevelAttr removes the level attribute from a log record.
//
// DeleteLevelAttr is a ReplaceAttr function for a [log/slog.Handler].
func DeleteLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		return slog.Attr{}
	}

	return a
}

// DeleteMessageAttr removes the message attribute from a log record.
//
// DeleteMessageAttr is a ReplaceAttr function for a [log/slog.Handler].
func DeleteMessageAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.MessageKey {
		return slog.Attr{}
	}

	return a
}

// TruncSourceAttr shortens the source attribute to the parent directory,
// file and line number of the call site.
//
// e.g., /home/dlk/frontdesk/app/application.go:43 => app/application.go:43
//
// TruncSourceAttr is a ReplaceAttr function for a [log/slog.Handler].
func TruncSourceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.SourceKey {
		return a
	}

	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}

	dir, file := filepath.Split(src.File)
	return slog.String(a.Key, fmt.Sprintf("%s:%d", filepath.Join(filepath.Base(dir), file), src.Line))
}
