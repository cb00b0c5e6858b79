package integration_tests

import (
	"context"
	"os"
	"testing"

	"github.com/specialistvlad/gatesim/internal/app"
	"github.com/specialistvlad/gatesim/internal/hcl"
	"github.com/specialistvlad/gatesim/internal/testutil"
	"github.com/stretchr/testify/require"
)

// harnessResult holds the outcomes of an integration test run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Root      string
}

// runIntegrationTest writes files into a temp dir and runs the app over
// it with a debug text logger. mutate may adjust the Config before the
// app is created.
func runIntegrationTest(t *testing.T, files map[string]string, mutate func(*app.Config)) *harnessResult {
	t.Helper()
	root := testutil.WriteFiles(t, files)

	cfg, err := app.NewConfig(app.Config{
		NetlistPath: root,
		LogFormat:   "text",
		LogLevel:    "debug",
		Workers:     4,
	})
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	res := &harnessResult{Root: root}
	a, err := app.NewApp(out, logs, cfg, hcl.NewLoader())
	if err == nil {
		defer a.Close()
		err = a.Run(context.Background())
	}
	res.Output, res.LogOutput, res.Err = out.String(), logs.String(), err

	if os.Getenv("GATESIM_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), res.LogOutput)
	}
	return res
}
