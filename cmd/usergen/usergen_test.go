package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JusmeJr93/random-user-gen-backend/personaldata"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DEBUG", "0")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateJSON(t *testing.T) {
	out, err := run(t, "generate", "--region", "pt", "--seed", "cli", "--page", "2", "--batch-size", "3")
	require.NoError(t, err)

	var records []personaldata.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	assert.Equal(t, 4, records[0].Index)

	again, err := run(t, "generate", "--region", "pt", "--seed", "cli", "--page", "2", "--batch-size", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestGenerateCSVMatchesJSON(t *testing.T) {
	args := []string{"generate", "--region", "uz", "--seed", "x", "--batch-size", "4"}

	out, err := run(t, args...)
	require.NoError(t, err)
	var records []personaldata.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records))

	out, err = run(t, append(args, "--format", "csv")...)
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, r := range records {
		assert.Equal(t, []string{rows[i+1][0], r.Identifier, r.Name, r.Address, r.Phone}, rows[i+1])
	}
}

func TestExport(t *testing.T) {
	out, err := run(t, "export", "--region", "mx", "--seed", "e", "--page", "3", "--batch-size", "2")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, personaldata.Columns, rows[0])
	assert.Equal(t, "6", rows[6][0])
}

func TestExportLimit(t *testing.T) {
	t.Setenv("MAX_BATCH_SIZE", "10")
	t.Setenv("MAX_EXPORT_RECORDS", "20")

	_, err := run(t, "export", "--seed", "e", "--page", "3", "--batch-size", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds the limit")
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	for _, args := range [][]string{
		{"generate", "--page", "0"},
		{"generate", "--errors", "-1"},
		{"generate", "--error-mode", "rate", "--errors", "2"},
		{"generate", "--format", "xml"},
		{"generate", "extra"},
	} {
		_, err := run(t, args...)
		assert.Error(t, err, args)
	}
}

func TestRegions(t *testing.T) {
	out, err := run(t, "regions")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Contains(t, out, "pl-PL")
}
