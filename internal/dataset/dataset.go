// Package dataset loads chart series from files.
//
// A file holds rows of named fields. Two accessors pick the x and y field of
// every row; rows where either is missing or non-numeric are skipped.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/wandb/chartbrush/internal/brush"
)

var (
	ErrUnknownFormat   = errors.New("dataset: unknown format")
	ErrMissingAccessor = errors.New("dataset: accessor not found")
)

// Format is a dataset file encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// FormatFor picks a format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Accessors name the row fields used for each axis.
type Accessors struct {
	X string
	Y string
}

// DefaultAccessors reads fields named "x" and "y".
func DefaultAccessors() Accessors {
	return Accessors{X: "x", Y: "y"}
}

// Series is one chart's worth of points.
type Series struct {
	Name   string
	Points []brush.Point

	// Skipped counts rows without usable values, including NaN and
	// infinite ones.
	Skipped int
}

// Load reads the file at path from fs.
func Load(fs afero.Fs, path string, acc Accessors) (*Series, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, format, acc)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return s, nil
}

// Read decodes rows in the given format and extracts points with acc.
//
// The points are sorted by x, as line charts draw them in order.
func Read(r io.Reader, format Format, acc Accessors) (*Series, error) {
	var (
		rows []row
		err  error
	)
	switch format {
	case FormatCSV:
		rows, err = readCSV(r)
	case FormatJSONL:
		rows, err = readJSONL(r)
	case FormatYAML:
		rows, err = readYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return extract(rows, acc)
}

// row is one decoded record keyed by field name.
type row map[string]any

func extract(rows []row, acc Accessors) (*Series, error) {
	if acc.X == "" || acc.Y == "" {
		return nil, fmt.Errorf("%w: empty accessor", ErrMissingAccessor)
	}

	s := &Series{}
	seenX, seenY := false, false
	for _, r := range rows {
		xv, hasX := r[acc.X]
		yv, hasY := r[acc.Y]
		seenX = seenX || hasX
		seenY = seenY || hasY

		x, okX := toFloat(xv)
		y, okY := toFloat(yv)
		if !hasX || !hasY || !okX || !okY || !finite(x) || !finite(y) {
			s.Skipped++
			continue
		}
		s.Points = append(s.Points, brush.Point{X: x, Y: y})
	}

	if len(rows) > 0 {
		switch {
		case !seenX:
			return nil, fmt.Errorf("%w: %q", ErrMissingAccessor, acc.X)
		case !seenY:
			return nil, fmt.Errorf("%w: %q", ErrMissingAccessor, acc.Y)
		}
	}

	sort.SliceStable(s.Points, func(i, j int) bool {
		return s.Points[i].X < s.Points[j].X
	})
	return s, nil
}

// toFloat converts decoded field values to numbers. Timestamps become unix
// seconds so that calendar intervals apply to them.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint64:
		return float64(x), true
	case time.Time:
		return unixSeconds(x), true
	case string:
		return parseNumber(x)
	}
	return 0, false
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	for _, layout := range []string{time.RFC3339Nano, time.DateTime, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return unixSeconds(t), true
		}
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
