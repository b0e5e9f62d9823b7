package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetYAML = `
- id: 1
  type: striated plane
  strike: 45
  dip: 45
  dipDirection: SE
  rake: 0
  strikeDirection: NE
  typeOfMovement: LL
- id: 2
  type: extension fracture
  strike: 0
  dip: 90
  dipDirection: E
`

const runYAML = `
search:
  method: fibonacci
  fibonacci:
    rotAngleHalfInterval: 0.02
    deltaRotAngle: 0.01
    nbNodesSpiral: 10
    deltaStressRatio: 0.05
    stressRatioHalfInterval: 0.05
datasets:
  - path: data.yaml
`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeRun(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.yaml"), []byte(datasetYAML), 0o600))
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(runYAML), 0o600))
	return path
}

func TestListCommands(t *testing.T) {
	out, _, err := execute(t, "kinds")
	require.NoError(t, err)
	assert.Contains(t, out, "extension fracture\n")
	assert.Contains(t, out, "striated plane\t(striated)\n")

	out, _, err = execute(t, "methods")
	require.NoError(t, err)
	assert.Equal(t, "Grid Search\nMonte Carlo\nFibonacci Lattice\n", out)
}

func TestRunToStdout(t *testing.T) {
	out, logs, err := execute(t, "run", "--config", writeRun(t), "--log-format", "json")
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "Fibonacci Lattice", rep["method"])
	assert.InDelta(t, 0, rep["misfit"], 1e-6)

	runID := rep["runId"].(string)
	lines := strings.Split(strings.TrimSpace(logs), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, runID, entry["run_id"])
	}
	assert.Contains(t, logs, "search progress")
	assert.Contains(t, logs, "search finished")
}

func TestRunWritesFiles(t *testing.T) {
	run := writeRun(t)
	dir := filepath.Dir(run)
	reportPath := filepath.Join(dir, "report.json")
	plotPath := filepath.Join(dir, "residuals.svg")

	out, _, err := execute(t, "run", "-c", run, "-o", reportPath, "--plot", plotPath, "--log-level", "warn")
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(b))
	info, err := os.Stat(plotPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRunOutputRelativeToRunFile(t *testing.T) {
	run := writeRun(t)
	dir := filepath.Dir(run)
	b, err := os.ReadFile(run)
	require.NoError(t, err)
	b = append(b, []byte("output:\n  report: out/report.json\n  plot: residuals.svg\n")...)
	require.NoError(t, os.WriteFile(run, b, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o700))

	// run from another working directory
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, _, err := execute(t, "run", "-c", run, "--log-level", "warn")
	require.NoError(t, err)
	assert.Empty(t, out)

	rep, err := os.ReadFile(filepath.Join(dir, "out", "report.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(rep))
	_, err = os.Stat(filepath.Join(dir, "residuals.svg"))
	require.NoError(t, err)
	_, err = os.Stat("residuals.svg")
	assert.True(t, os.IsNotExist(err))
}

func TestRunErrors(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "methods", "--log-level", "chatty")
	require.Error(t, err)

	_, _, err = execute(t, "kinds", "--log-format", "xml")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "DEBUG", "text")
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=1")
}
