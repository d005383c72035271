package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaycode/stockroom/internal/cmd/table"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "table", want: FormatTable},
		{input: "json", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "wide", want: FormatWide},
		{input: "JSON", want: FormatJSON},
		{input: "", want: Format("")},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("yaml"))
	assert.Equal(t, FormatJSON, DetectFormat("JSON"))
}

func TestJSONFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &JSONFormatter{Indent: "  "}

	err := f.Format(buf, map[string]int{"total": 42})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"total": 42`)
}

func TestYAMLFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &YAMLFormatter{}

	err := f.Format(buf, map[string]int{"total": 42})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "total: 42")
}

func TestTableFormatter(t *testing.T) {
	t.Run("renders table data", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &TableFormatter{}

		err := f.Format(buf, table.Data{
			Headers: []string{"ID", "Name"},
			Rows:    [][]string{{"1", "Milk 1L"}},
			ColumnAlignment: []table.Align{
				table.AlignRight, table.AlignLeft,
			},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Milk 1L")
		assert.Contains(t, strings.ToUpper(buf.String()), "NAME")
	})

	t.Run("renders structs as key-value rows", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &TableFormatter{}

		err := f.Format(buf, struct {
			Name  string `json:"name"`
			Total int64  `json:"total"`
		}{Name: "Milk 1L", Total: 300})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Milk 1L")
		assert.Contains(t, buf.String(), "300")
	})

	t.Run("falls back to JSON for slices", func(t *testing.T) {
		buf := &bytes.Buffer{}
		f := &TableFormatter{}

		err := f.Format(buf, []string{"a", "b"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"a"`)
	})
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.IsType(t, &TableFormatter{}, NewFormatter(Format("unknown")))
}
