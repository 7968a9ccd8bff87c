package taskstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported storage formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// record is the on-disk shape of a task, shared by every format.
type record struct {
	ID          string     `json:"id" yaml:"id" toml:"id"`
	Title       string     `json:"title" yaml:"title" toml:"title"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Status      TaskStatus `json:"status" yaml:"status" toml:"status"`
	CreatedAt   string     `json:"created_at" yaml:"created_at" toml:"created_at"`
	UpdatedAt   string     `json:"updated_at" yaml:"updated_at" toml:"updated_at"`
}

// tomlDocument wraps the records because TOML requires a top-level table.
type tomlDocument struct {
	Tasks []record `toml:"tasks,omitempty"`
}

// codec serializes the full task collection for one storage format.
type codec interface {
	format() string
	encode(records []record) ([]byte, error)
	// decodeGeneric parses data into plain values (maps, slices, scalars)
	// holding the record list.
	decodeGeneric(data []byte) (any, error)
}

// ParseFormat normalizes a format name. An empty name is returned as is.
func ParseFormat(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return "", nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported storage format: %s. Supported formats are json, yaml, toml", name)
	}
}

// FormatForPath infers the storage format from a file extension.
// Unknown extensions map to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

func codecFor(format string) codec {
	switch format {
	case FormatYAML:
		return yamlCodec{}
	case FormatTOML:
		return tomlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) format() string { return FormatJSON }

func (jsonCodec) encode(records []record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

func (jsonCodec) decodeGeneric(data []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return doc, nil
}

type yamlCodec struct{}

func (yamlCodec) format() string { return FormatYAML }

func (yamlCodec) encode(records []record) ([]byte, error) {
	data, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return data, nil
}

func (yamlCodec) decodeGeneric(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return doc, nil
}

type tomlCodec struct{}

func (tomlCodec) format() string { return FormatTOML }

func (tomlCodec) encode(records []record) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDocument{Tasks: records}); err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return buf.Bytes(), nil
}

func (tomlCodec) decodeGeneric(data []byte) (any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	tasks, ok := doc["tasks"]
	if !ok {
		return []any{}, nil
	}
	return tasks, nil
}

// encodeTasks converts tasks to records and serializes them.
func encodeTasks(c codec, tasks []Task) ([]byte, error) {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}
	return c.encode(records)
}

// decodeTasks parses data, checks it against the task list schema and
// converts the records to validated tasks.
func decodeTasks(c codec, data []byte) ([]Task, error) {
	generic, err := c.decodeGeneric(data)
	if err != nil {
		return nil, err
	}

	// Normalize format-specific values (e.g. native TOML datetimes) to JSON values.
	normalized, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize %s document: %w", c.format(), err)
	}

	var doc any
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("failed to normalize %s document: %w", c.format(), err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var records []record
	if err := json.Unmarshal(normalized, &records); err != nil {
		return nil, fmt.Errorf("failed to decode task records: %w", err)
	}

	tasks := make([]Task, 0, len(records))
	for i, rec := range records {
		task, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func toRecord(t Task) record {
	return record{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// localTimestampLayout is ISO 8601 without a zone offset, as older task
// files store it. Such timestamps are read in the local zone.
const localTimestampLayout = "2006-01-02T15:04:05.999999999"

// parseTimestamp accepts RFC 3339 or an ISO 8601 local date-time.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if local, localErr := time.ParseInLocation(localTimestampLayout, s, time.Local); localErr == nil {
		return local, nil
	}
	return time.Time{}, err
}

func fromRecord(rec record) (Task, error) {
	createdAt, err := parseTimestamp(rec.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(rec.UpdatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("invalid updated_at: %w", err)
	}

	task := Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      rec.Status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if err := task.Validate(); err != nil {
		return Task{}, err
	}
	return task, nil
}
