package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/entityforms/pkg/entities"
	"github.com/dmitrymomot/entityforms/pkg/i18n"
	"github.com/dmitrymomot/entityforms/pkg/logger"
	"github.com/dmitrymomot/entityforms/pkg/validator"
)

// errInvalidPayloads makes the process exit non-zero after the report is printed.
var errInvalidPayloads = errors.New("one or more payloads are invalid")

type fieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
	Key     string `json:"key,omitempty" yaml:"key,omitempty"`
}

type fileResult struct {
	File   string         `json:"file" yaml:"file"`
	Kind   string         `json:"kind" yaml:"kind"`
	Valid  bool           `json:"valid" yaml:"valid"`
	Data   map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
	Errors []fieldError   `json:"errors,omitempty" yaml:"errors,omitempty"`
	Error  string         `json:"error,omitempty" yaml:"error,omitempty"`
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate --kind KIND FILE...",
		Short: "Validate JSON or YAML payload files",
		Long: `Validates each file as one payload of the given entity kind and prints
the normalized record or every field error. Files are processed concurrently;
the report keeps the argument order. Exits non-zero if any file is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			lang, _ := cmd.Flags().GetString("lang")
			output, _ := cmd.Flags().GetString("output")
			if output != "json" && output != "yaml" {
				return fmt.Errorf("unsupported output format %q: must be json or yaml", output)
			}

			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			log := newLogger(app, cmd.ErrOrStderr())

			schema, err := entities.Default().Schema(kind)
			if err != nil {
				return err
			}

			var translate func(validator.ValidationError) string
			if lang != "" {
				tr, err := newTranslator(cmd.Context(), app, log)
				if err != nil {
					return err
				}
				translate = tr.ValidationMessages(lang)
			}

			start := time.Now()
			results, err := validateFiles(cmd.Context(), schema, args, translate)
			if err != nil {
				return err
			}

			invalid := 0
			for _, res := range results {
				if !res.Valid {
					invalid++
				}
			}
			log.DebugContext(cmd.Context(), "files validated",
				logger.EntityKind(kind),
				slog.Int("files", len(results)),
				slog.Int("invalid", invalid),
				logger.Duration(time.Since(start)),
			)

			if output == "yaml" {
				for i := range results {
					results[i].Data = yamlNumbers(results[i].Data).(map[string]any)
				}
			}
			if err := writeReport(cmd.OutOrStdout(), output, results); err != nil {
				return err
			}
			if invalid > 0 {
				return errInvalidPayloads
			}
			return nil
		},
	}
	cmd.Flags().StringP("kind", "k", "", "Entity kind of every payload")
	cmd.Flags().StringP("lang", "l", "", "Translate messages into this language ("+i18n.DefaultLanguage+", ar)")
	cmd.Flags().StringP("output", "o", "json", "Report format: json or yaml")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

// validateFiles checks every file concurrently. Unreadable files are reported
// as invalid results rather than aborting the batch.
func validateFiles(ctx context.Context, schema *validator.Schema, files []string, translate func(validator.ValidationError) string) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = validateFile(schema, file, translate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateFile(schema *validator.Schema, file string, translate func(validator.ValidationError) string) fileResult {
	result := fileResult{File: file, Kind: schema.Kind()}

	payload, err := readPayload(file)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	res := schema.Validate(payload)
	if res.Valid() {
		result.Valid = true
		result.Data = res.Value
		return result
	}

	for _, e := range res.Errors.Translate(translate) {
		result.Errors = append(result.Errors, fieldError{Field: e.Field, Message: e.Message, Key: e.TranslationKey})
	}
	return result
}

// readPayload decodes a single object from a .yaml/.yml file, or JSON otherwise.
func readPayload(file string) (map[string]any, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &payload); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err := dec.Decode(&payload); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	if payload == nil {
		return nil, fmt.Errorf("%s: payload must be an object", file)
	}
	return payload, nil
}

// yamlNumbers replaces json.Number left in pass-through values by JSON
// decoding with int64 or float64; yaml.v3 would quote them as strings.
func yamlNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return val
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = yamlNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = yamlNumbers(item)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

func writeReport(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
