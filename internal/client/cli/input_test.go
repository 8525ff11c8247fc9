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
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(pw))

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(&out)
	require.Error(t, err)
}

func TestGetWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "empty takes default", input: "\n", def: "2026-02-27", want: "2026-02-27"},
		{name: "value wins", input: "2026-03-01\n", def: "2026-02-27", want: "2026-03-01"},
		{name: "no default", input: "\n", def: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetWithDefault(rdr(tt.input), "Date", tt.def, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetOptional(t *testing.T) {
	var out bytes.Buffer

	got, err := GetOptional(rdr("\n"), "Department", "HR", &out)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = GetOptional(rdr("HR\n"), "Department", "HR", &out)
	require.NoError(t, err)
	assert.Nil(t, got, "unchanged value is not a patch")

	got, err = GetOptional(rdr("Design\n"), "Department", "HR", &out)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Design", *got)
}
