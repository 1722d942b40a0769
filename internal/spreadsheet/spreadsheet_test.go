package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuild(t *testing.T) {
	headers := []string{"Name", "Email", "CGPA"}
	rows := [][]any{
		{"Jane Doe", "jane@example.com", 8.4},
		{"John Roe", "john@example.com", 7.9},
	}

	data, err := Build("Students", headers, rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Students"}, f.GetSheetList())

	got, err := f.GetRows("Students")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, headers, got[0])
	assert.Equal(t, []string{"Jane Doe", "jane@example.com", "8.4"}, got[1])
	assert.Equal(t, []string{"John Roe", "john@example.com", "7.9"}, got[2])
}

func TestBuild_NoRows(t *testing.T) {
	data, err := Build("Empty", []string{"Only", "Headers"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Empty")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Only", "Headers"}, got[0])
}
