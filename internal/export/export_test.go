package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitlit/internal/models"
)

var exportedAt = time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)

func habits() []models.Habit {
	created := time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC)
	return []models.Habit{
		{ID: "1", Name: "Drink Water", Icon: "💧", Color: "from-blue-400 to-cyan-400", Image: "/3d-rendering-young-tiger.jpg", Streak: 4, CompletedToday: true, TotalCompleted: 12, CreatedAt: created},
		{ID: "b7", Name: "Read", Icon: "📚", Color: "from-purple-400 to-pink-400", CreatedAt: created},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "YAML": FormatYAML, " yml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("habits.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("/tmp/h.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("habits.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("habits"))
}

func TestEncodeDecode(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			doc := NewDocument(habits(), exportedAt, "2024-03-02T09:00:00.000Z")

			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, f))

			got, err := Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, DocumentVersion, got.Version)
			assert.True(t, got.ExportedAt.Equal(exportedAt))
			assert.Equal(t, "2024-03-02T09:00:00.000Z", got.LastSavedDate)
			require.Len(t, got.Habits, 2)
			for i, h := range habits() {
				assert.True(t, got.Habits[i].CreatedAt.Equal(h.CreatedAt))
				got.Habits[i].CreatedAt = h.CreatedAt
				assert.Equal(t, h, got.Habits[i])
			}
		})
	}
}

func TestEncodeJSONUsesStoreKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument(habits(), exportedAt, ""), FormatJSON))

	out := buf.String()
	for _, key := range []string{`"completedToday": true`, `"totalCompleted": 12`, `"createdAt"`, `"habits"`} {
		assert.Contains(t, out, key)
	}
	assert.NotContains(t, out, "lastSavedDate")
	assert.NotContains(t, out, `<`)
}

func TestEncodeEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewDocument(nil, exportedAt, ""), FormatJSON))
	assert.Contains(t, buf.String(), `"habits": []`)
}

func TestDecodeBareList(t *testing.T) {
	jsonList := `[{"id":"1","name":"Walk","icon":"🚶","color":"c","streak":2,"completedToday":false,"totalCompleted":5,"createdAt":"2024-01-01T00:00:00Z"}]`
	doc, err := Decode(strings.NewReader(jsonList), FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Habits, 1)
	assert.Equal(t, "Walk", doc.Habits[0].Name)
	assert.Equal(t, 5, doc.Habits[0].TotalCompleted)

	yamlList := "- id: \"1\"\n  name: Walk\n  streak: 2\n  totalCompleted: 5\n"
	doc, err = Decode(strings.NewReader(yamlList), FormatYAML)
	require.NoError(t, err)
	require.Len(t, doc.Habits, 1)
	assert.Equal(t, 2, doc.Habits[0].Streak)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     Format
	}{
		{name: "empty json", input: "  ", f: FormatJSON},
		{name: "broken json", input: `{"habits": [`, f: FormatJSON},
		{name: "empty yaml", input: "", f: FormatYAML},
		{name: "scalar yaml", input: "hello", f: FormatYAML},
		{name: "newer version", input: `{"version": 99, "habits": []}`, f: FormatJSON},
		{name: "unknown format", input: `[]`, f: Format("toml")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.f)
			assert.Error(t, err)
		})
	}
}
