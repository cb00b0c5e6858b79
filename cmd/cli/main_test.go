package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gatesim/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidHCL(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		netlist "broken" {
			instance "CFG1" "x" {
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, logs, []string{filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load configuration")
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "load failures are not usage errors")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_Examples(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "and2 with inputs from flags",
			args: []string{"--input", "A=1", "--input", "B=1", "../../examples/and2.hcl"},
			want: "Y: 1\n",
		},
		{
			name: "full adder hardened from its own tmr block",
			args: []string{"--workers", "3", "../../examples/full_adder.hcl"},
			want: "CO: 1\nS: 0\ntmr: hardened 1 instance(s), outputs unchanged\n",
		},
		{
			name: "full adder inputs overridden",
			args: []string{"--input", "CI=1", "../../examples/full_adder.hcl"},
			want: "CO: 1\nS: 1\ntmr: hardened 1 instance(s), outputs unchanged\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := run(context.Background(), out, &bytes.Buffer{}, tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
		})
	}
}
