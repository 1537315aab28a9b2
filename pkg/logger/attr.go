package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error records err under the key "error". A nil error yields an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// EntityKind records the entity kind under the key "kind".
func EntityKind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Outcome records "valid" or "invalid" under the key "outcome".
func Outcome(valid bool) slog.Attr {
	if valid {
		return slog.String("outcome", "valid")
	}
	return slog.String("outcome", "invalid")
}

// Fields records the failing field paths under the key "fields".
func Fields(paths []string) slog.Attr {
	if len(paths) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", paths)
}

func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

func File(path string) slog.Attr {
	return slog.String("file", path)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
