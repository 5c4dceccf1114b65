package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppValidInput(t *testing.T) {
	in := strings.NewReader(`{"a ": {"S": " hello "}, "n": {"N": "007"}, "z": {"NULL": "true"}, "empty": {"S": "   "}}`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag"})
	require.NoError(t, err)

	require.JSONEq(t, `[{"a":"hello","n":7,"z":null}]`, out.String())
	require.True(t, strings.HasSuffix(out.String(), "\n"))
	require.Contains(t, errw.String(), "Processing Time:")
	require.Contains(t, errw.String(), "seconds")
}

func TestAppEmptyDocument(t *testing.T) {
	in := strings.NewReader(`{}`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag"})
	require.NoError(t, err)
	require.Equal(t, "[]\n", out.String())
}

func TestAppInvalidInput(t *testing.T) {
	in := strings.NewReader(`not json`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag"})
	require.Error(t, err)

	require.Equal(t, "Invalid JSON input.\n", errw.String())
	require.Empty(t, out.String())
}

func TestAppLocationFlag(t *testing.T) {
	in := strings.NewReader(`{"t": {"S": "2021-01-01T00:00:00Z"}}`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag", "--location", "UTC"})
	require.NoError(t, err)
	require.JSONEq(t, `[{"t":1609459200}]`, out.String())
}

func TestAppUnknownLocation(t *testing.T) {
	in := strings.NewReader(`{}`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag", "--location", "Not/AZone"})
	require.Error(t, err)
	require.Contains(t, errw.String(), "loading time zone")
	require.Empty(t, out.String())
}

func TestAppMaxDepthFlag(t *testing.T) {
	in := strings.NewReader(`{"a": {"M": {"b": {"M": {"c": {"S": "x"}}}}}}`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag", "--max-depth", "2"})
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestAppVerboseFlag(t *testing.T) {
	in := strings.NewReader(`{"bad": "plain", "ok": {"S": "x"}}`)
	var out, errw bytes.Buffer

	err := newApp(in, &out, &errw).Run([]string{"untag", "--verbose"})
	require.NoError(t, err)
	require.JSONEq(t, `[{"ok":"x"}]`, out.String())
	require.Contains(t, errw.String(), "skipping malformed tagged value")
}
