// Package export reads and writes habit collections as JSON or YAML files.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitlit/internal/models"
)

// DocumentVersion is written into every export.
const DocumentVersion = 1

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Document is the export file layout.
type Document struct {
	Version       int            `json:"version" yaml:"version"`
	ExportedAt    time.Time      `json:"exportedAt" yaml:"exportedAt"`
	LastSavedDate string         `json:"lastSavedDate,omitempty" yaml:"lastSavedDate,omitempty"`
	Habits        []models.Habit `json:"habits" yaml:"habits"`
}

func NewDocument(habits []models.Habit, exportedAt time.Time, lastSaved string) Document {
	if habits == nil {
		habits = []models.Habit{}
	}
	return Document{
		Version:       DocumentVersion,
		ExportedAt:    exportedAt.UTC(),
		LastSavedDate: lastSaved,
		Habits:        habits,
	}
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Decode reads a Document written by Encode. A bare list of habits, as held
// under the "habits" store key, is accepted too.
func Decode(r io.Reader, f Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read input: %w", err)
	}

	var doc Document
	switch f {
	case FormatJSON:
		doc, err = decodeJSON(data)
	case FormatYAML:
		doc, err = decodeYAML(data)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return Document{}, err
	}

	if doc.Version > DocumentVersion {
		return Document{}, fmt.Errorf("export version %d is newer than supported version %d", doc.Version, DocumentVersion)
	}
	if doc.Habits == nil {
		doc.Habits = []models.Habit{}
	}
	return doc, nil
}

func decodeJSON(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, errors.New("input is empty")
	}

	var doc Document
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &doc.Habits); err != nil {
			return Document{}, fmt.Errorf("invalid JSON habit list: %w", err)
		}
		return doc, nil
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Document{}, fmt.Errorf("invalid JSON export: %w", err)
	}
	return doc, nil
}

func decodeYAML(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("invalid YAML export: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return Document{}, errors.New("input is empty")
	}

	var doc Document
	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&doc.Habits); err != nil {
			return Document{}, fmt.Errorf("invalid YAML habit list: %w", err)
		}
	case yaml.MappingNode:
		if err := node.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("invalid YAML export: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("invalid YAML export: unexpected top-level %s", node.Tag)
	}
	return doc, nil
}
