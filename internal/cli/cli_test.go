package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/gatesim/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		shouldExit bool
		wantCode   int
		wantErr    string
	}{
		{
			name: "positional path with defaults",
			args: []string{"circuits/and2.hcl"},
			want: &app.Config{NetlistPath: "circuits/and2.hcl", LogFormat: "text", LogLevel: "warn", Workers: 1},
		},
		{
			name: "long flag wins over shorthand and positional",
			args: []string{"-netlist", "a", "-n", "b", "c"},
			want: &app.Config{NetlistPath: "a", LogFormat: "text", LogLevel: "warn", Workers: 1},
		},
		{
			name: "shorthand",
			args: []string{"-n", "b"},
			want: &app.Config{NetlistPath: "b", LogFormat: "text", LogLevel: "warn", Workers: 1},
		},
		{
			name: "everything",
			args: []string{
				"--log-format", "JSON", "--log-level", "Debug", "--log-file", "run.log",
				"--workers", "4", "--dot", "out.dot", "--adjacency",
				"--input", "A=1", "--input", "B=false", "--harden", "and_0, Y_obuf", "--harden", "A_ibuf",
				"dir",
			},
			want: &app.Config{
				NetlistPath: "dir",
				LogFormat:   "json",
				LogLevel:    "debug",
				LogFile:     "run.log",
				Workers:     4,
				Inputs:      map[string]bool{"A": true, "B": false},
				Harden:      []string{"and_0", "Y_obuf", "A_ibuf"},
				DotPath:     "out.dot",
				Adjacency:   true,
			},
		},
		{
			name:       "no path prints usage",
			args:       []string{},
			shouldExit: true,
		},
		{
			name:       "help",
			args:       []string{"-h"},
			shouldExit: true,
		},
		{
			name:     "unknown flag",
			args:     []string{"--nope"},
			wantCode: 2,
			wantErr:  "flag provided but not defined: -nope",
		},
		{
			name:     "bad log format",
			args:     []string{"--log-format", "xml", "x"},
			wantCode: 2,
			wantErr:  "invalid log-format",
		},
		{
			name:     "bad log level",
			args:     []string{"--log-level", "loud", "x"},
			wantCode: 2,
			wantErr:  "invalid log-level",
		},
		{
			name:     "bad input value",
			args:     []string{"--input", "A=2", "x"},
			wantCode: 2,
			wantErr:  `"2" is not a bit`,
		},
		{
			name:     "input without name",
			args:     []string{"--input", "=1", "x"},
			wantCode: 2,
			wantErr:  "want NAME=0|1",
		},
		{
			name:     "zero workers",
			args:     []string{"--workers", "0", "x"},
			wantCode: 2,
			wantErr:  "workers must be at least 1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.wantErr != "" {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shouldExit, shouldExit)
			if tc.shouldExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
