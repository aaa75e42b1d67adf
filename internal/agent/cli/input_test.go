package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("TF-2025-000123\n"), "Form number", &out)
	require.NoError(t, err)
	assert.Equal(t, "TF-2025-000123", got)
	assert.Contains(t, out.String(), "Form number")
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"whatever\n", false},
	}
	for _, tc := range tests {
		var out bytes.Buffer
		got, err := GetBool(rdr(tc.in), "Physical control done?", &out)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestGetChoice(t *testing.T) {
	options := []string{"EXPIRED", "OTHER"}

	var out bytes.Buffer
	idx, err := GetChoice(rdr("2\n"), "Refusal reason", options, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "1. EXPIRED")
	assert.Contains(t, out.String(), "2. OTHER")

	_, err = GetChoice(rdr("0\n"), "Refusal reason", options, &out)
	require.Error(t, err)
	_, err = GetChoice(rdr("three\n"), "Refusal reason", options, &out)
	require.Error(t, err)
}

func TestGetIndex(t *testing.T) {
	var out bytes.Buffer
	idx, err := GetIndex(rdr("3\n"), "Number to delete", 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = GetIndex(rdr("6\n"), "Number to delete", 5, &out)
	require.Error(t, err)
}
