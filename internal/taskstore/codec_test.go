package taskstore

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []Task {
	created := time.Date(2026, 3, 1, 9, 30, 0, 123456789, time.UTC)
	return []Task{
		{
			ID:          "task_aaaa1111",
			Title:       "Buy groceries",
			Description: "milk, bread & <eggs>",
			Status:      StatusPending,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		{
			ID:        "task_bbbb2222",
			Title:     "File taxes",
			Status:    StatusComplete,
			CreatedAt: created,
			UpdatedAt: created.Add(time.Hour),
		},
	}
}

func assertSameTasks(t *testing.T, want, got []Task) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Title, got[i].Title)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Status, got[i].Status)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "created_at of %s", want[i].ID)
		assert.True(t, want[i].UpdatedAt.Equal(got[i].UpdatedAt), "updated_at of %s", want[i].ID)
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(format, func(t *testing.T) {
			c := codecFor(format)
			assert.Equal(t, format, c.format())

			data, err := encodeTasks(c, sampleTasks())
			require.NoError(t, err)

			decoded, err := decodeTasks(c, data)
			require.NoError(t, err)
			assertSameTasks(t, sampleTasks(), decoded)
		})

		t.Run(format+" empty collection", func(t *testing.T) {
			c := codecFor(format)

			data, err := encodeTasks(c, nil)
			require.NoError(t, err)

			decoded, err := decodeTasks(c, data)
			require.NoError(t, err)
			assert.Empty(t, decoded)
		})
	}
}

func TestJSONCodec_Layout(t *testing.T) {
	data, err := encodeTasks(jsonCodec{}, sampleTasks()[:1])
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "task_aaaa1111", raw[0]["id"])
	assert.Equal(t, "PENDING", raw[0]["status"])
	assert.Equal(t, "2026-03-01T09:30:00.123456789Z", raw[0]["created_at"])

	assert.Contains(t, string(data), "\n  {\n    \"id\"")
	assert.Contains(t, string(data), "<eggs>", "HTML characters are written verbatim")
}

func TestJSONCodec_OmitsEmptyDescription(t *testing.T) {
	data, err := encodeTasks(jsonCodec{}, sampleTasks()[1:])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "description")
}

func TestJSONCodec_AcceptsNullDescription(t *testing.T) {
	data := []byte(`[{"id":"task_1","title":"A","description":null,"status":"PENDING",
		"created_at":"2026-01-01T10:00:00Z","updated_at":"2026-01-01T10:00:00Z"}]`)

	tasks, err := decodeTasks(jsonCodec{}, data)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "", tasks[0].Description)
}

func TestTOMLCodec_UsesArrayOfTables(t *testing.T) {
	data, err := encodeTasks(tomlCodec{}, sampleTasks())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[[tasks]]")
}

func TestTOMLCodec_AcceptsNativeDatetimes(t *testing.T) {
	data := []byte(`
[[tasks]]
id = "task_1"
title = "Native"
status = "COMPLETE"
created_at = 2026-01-01T10:00:00Z
updated_at = 2026-01-02T10:00:00Z
`)
	tasks, err := decodeTasks(tomlCodec{}, data)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, StatusComplete, tasks[0].Status)
	assert.True(t, tasks[0].UpdatedAt.After(tasks[0].CreatedAt))
}

func TestDecodeTasks_RejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed JSON", `[{"id": `, "failed to parse JSON"},
		{"empty file", ``, "failed to parse JSON"},
		{"not a list", `{"id":"task_1"}`, "invalid task file"},
		{"missing field", `[{"id":"task_1","title":"A","status":"PENDING","created_at":"2026-01-01T10:00:00Z"}]`, "updated_at"},
		{"invalid status", `[{"id":"task_1","title":"A","status":"DONE","created_at":"2026-01-01T10:00:00Z","updated_at":"2026-01-01T10:00:00Z"}]`, "[0].status"},
		{"blank title", `[{"id":"task_1","title":"  ","status":"PENDING","created_at":"2026-01-01T10:00:00Z","updated_at":"2026-01-01T10:00:00Z"}]`, "[0].title"},
		{"bad timestamp", `[{"id":"task_1","title":"A","status":"PENDING","created_at":"yesterday","updated_at":"2026-01-01T10:00:00Z"}]`, "[0].created_at"},
		{"updated before created", `[{"id":"task_1","title":"A","status":"PENDING","created_at":"2026-01-02T10:00:00Z","updated_at":"2026-01-01T10:00:00Z"}]`, "before created_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTasks(jsonCodec{}, []byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeTasks_SchemaErrorType(t *testing.T) {
	_, err := decodeTasks(jsonCodec{}, []byte(`[{"id":"task_1"}]`))
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "[0]", schemaErr.Path)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{" yaml ", FormatYAML},
		{"toml", FormatTOML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, "unsupported storage format")
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath(".todo_data.json"))
	assert.Equal(t, FormatJSON, FormatForPath("tasks"))
	assert.Equal(t, FormatYAML, FormatForPath("tasks.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("TASKS.YML"))
	assert.Equal(t, FormatTOML, FormatForPath("dir/tasks.toml"))
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "", jsonPointerToPath(""))
	assert.Equal(t, "[0]", jsonPointerToPath("/0"))
	assert.Equal(t, "[2].status", jsonPointerToPath("/2/status"))
	assert.Equal(t, "a/b", jsonPointerToPath("/a~1b"))
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp("2026-03-01T09:30:00.5+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 3, 1, 7, 30, 0, 500000000, time.UTC)))

	got, err = parseTimestamp("2025-01-01T10:00:00.123456")
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.Location())
	assert.Equal(t, 123456000, got.Nanosecond())

	_, err = parseTimestamp("01/01/2026")
	assert.Error(t, err)
}

func TestDecodeTasks_AcceptsLocalISOTimestamps(t *testing.T) {
	data := []byte(`[{"id":"task_1","title":"A","status":"PENDING",
		"created_at":"2025-01-01T10:00:00.123456","updated_at":"2025-01-01T10:00:00.123456"}]`)

	tasks, err := decodeTasks(jsonCodec{}, data)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 2025, tasks[0].CreatedAt.Year())
}
