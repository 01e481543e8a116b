package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/anaramires/tally/internal/encoding"
)

func TestReader_UTF8Passthrough(t *testing.T) {
	input := "Date;Description;Amount\n24-08-2026;Café Müller;12,50\n"

	r, err := encoding.Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestReader_UTF8BOMStripped(t *testing.T) {
	content := "Date;Description;Amount\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)

	r, err := encoding.Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestReader_Windows1252(t *testing.T) {
	want := "Café Müller;Überweisung\n"

	raw, err := charmap.Windows1252.NewEncoder().Bytes([]byte(want))
	require.NoError(t, err)

	r, err := encoding.Reader(bytes.NewReader(raw))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestReader_UTF16LE(t *testing.T) {
	want := "Date;Amount\n"

	raw := []byte{0xFF, 0xFE}
	for _, r := range want {
		raw = append(raw, byte(r), 0x00)
	}

	r, err := encoding.Reader(bytes.NewReader(raw))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestReader_Empty(t *testing.T) {
	r, err := encoding.Reader(bytes.NewReader(nil))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, got)
}
