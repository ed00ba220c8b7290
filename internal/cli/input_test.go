package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
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
	got, err := GetSimpleText(rdr("  Bogotá \n"), "City", &out)
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", got)
	assert.Equal(t, "City\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\r\nb\n\nignored\n"), "Description", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetMultiline_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("only line"), "Description", &out)
	require.NoError(t, err)
	assert.Equal(t, "only line", got)
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, err error) {
	t.Helper()
	origTerm, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = origTerm
		readPassword = origRead
	})
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("secret"), nil)

	var out bytes.Buffer
	got, err := GetPassword(rdr("not used\n"), 0, "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), 0, "Password", &out)
	assert.EqualError(t, err, "boom")
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	got, err := GetPassword(rdr("piped-secret\nnext\n"), 0, "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("piped-secret"), got)
	assert.Equal(t, "Password: ", out.String())
}

func TestGetPassword_NoDescriptor(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("must not be called"))

	var out bytes.Buffer
	got, err := GetPassword(rdr("from-reader\n"), -1, "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("from-reader"), got)
}

func TestInputFd(t *testing.T) {
	assert.Equal(t, -1, inputFd(rdr("x")))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	assert.Equal(t, int(r.Fd()), inputFd(r))
}

func TestGetList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"comma separated", "WiFi, Cocina ,Piscina\n", []string{"WiFi", "Cocina", "Piscina"}},
		{"blank items dropped", ",WiFi,, \n", []string{"WiFi"}},
		{"empty line", "\n", []string{}},
		{"EOF without newline", "Parqueadero", []string{"Parqueadero"}},
		{"nothing at all", "", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetList(rdr(tc.input), "Amenities", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
