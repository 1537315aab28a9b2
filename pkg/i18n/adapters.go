package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations from a source.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every supported translation file in dir of fsys and merges
// them per language. It serves both the embedded catalogue and os.DirFS.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns an adapter reading dir inside fsys. Use "." for the root.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, ErrNilAdapter
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}

		for lang, values := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], values)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranslations, a.dir)
	}
	return all, nil
}
