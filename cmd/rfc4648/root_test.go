package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/presbrey/rfc4648/blockcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"RFC4648_CODEC", "RFC4648_WRAP", "RFC4648_SILENT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-env-files"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeStdin(t *testing.T) {
	out, err := run(t, "foobar", "encode")
	require.NoError(t, err)
	assert.Equal(t, "Zm9vYmFy\n", out)

	out, err = run(t, "foobar", "--codec", "base32", "encode")
	require.NoError(t, err)
	assert.Equal(t, "MZXW6YTBOI======\n", out)
}

func TestEncodeWrap(t *testing.T) {
	out, err := run(t, "foobarfoobar", "encode", "--wrap", "6")
	require.NoError(t, err)
	assert.Equal(t, "Zm9vYm\nFyZm9v\nYmFy\n", out)

	out, err = run(t, strings.Repeat("x", 120), "encode", "-w", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestDecodeStdin(t *testing.T) {
	out, err := run(t, "Zm9v\nYmFy\n", "decode")
	require.NoError(t, err)
	assert.Equal(t, "foobar", out)

	out, err = run(t, "MZXW6YTB\nOI======\n", "-c", "base32", "decode")
	require.NoError(t, err)
	assert.Equal(t, "foobar", out)
}

func TestRoundTripFile(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i * 7)
	}
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.bin")
	require.NoError(t, os.WriteFile(plain, data, 0644))

	encoded, err := run(t, "", "--codec", "base32", "encode", plain)
	require.NoError(t, err)

	encodedPath := filepath.Join(dir, "plain.b32")
	require.NoError(t, os.WriteFile(encodedPath, []byte(encoded), 0644))

	decoded, err := run(t, "", "--codec", "base32", "decode", encodedPath)
	require.NoError(t, err)
	assert.Equal(t, data, []byte(decoded))
}

func TestDecodeErrors(t *testing.T) {
	_, err := run(t, "Zh==", "decode")
	assert.ErrorIs(t, err, blockcodec.ErrNonCanonicalEncoding)

	_, err = run(t, "Zm9vY", "decode")
	assert.ErrorIs(t, err, blockcodec.ErrMalformedLength)

	_, err = run(t, "", "decode", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfc4648.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codec: base32\nwrap: 0\nsilent: true\n"), 0644))

	out, err := run(t, "foobar", "--config", path, "encode")
	require.NoError(t, err)
	assert.Equal(t, "MZXW6YTBOI======\n", out)

	// Flags win over the file.
	out, err = run(t, "foobar", "--config", path, "--codec", "base64", "encode")
	require.NoError(t, err)
	assert.Equal(t, "Zm9vYmFy\n", out)
}

func TestInvalidCodec(t *testing.T) {
	_, err := run(t, "foobar", "--codec", "base58", "encode")
	assert.Error(t, err)

	_, err = run(t, "foobar", "encode", "--wrap", "-2")
	assert.Error(t, err)
}

func TestWriteWrapped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeWrapped(&buf, []byte("ABCDEFGH"), 4))
	assert.Equal(t, "ABCD\nEFGH\n", buf.String())

	buf.Reset()
	require.NoError(t, writeWrapped(&buf, nil, 4))
	assert.Equal(t, "\n", buf.String())
}
