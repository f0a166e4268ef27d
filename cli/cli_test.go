package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-objective/domain"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), append([]string{"--log-level", "error"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestProjectCmd_Text(t *testing.T) {
	code, out, _ := run(t, "project", "--principal", "1000", "--contribution", "100", "--rate", "0.01", "--periods", "3", "--target", "1221.10")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "1333.31")
	assert.Contains(t, out, "target reached at period 2")
}

func TestProjectCmd_JSON(t *testing.T) {
	code, out, _ := run(t, "-o", "json", "project", "--principal", "0", "--rate", "0.05", "--periods", "5", "--target", "0")
	require.Equal(t, ExitOK, code)

	var res domain.ProjectionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Points, 6)
	require.NotNil(t, res.TargetReachedAtPeriod)
	assert.Equal(t, 0, *res.TargetReachedAtPeriod)
}

func TestProjectCmd_InvalidInputExitCode(t *testing.T) {
	code, _, errOut := run(t, "project", "--principal", "1", "--rate", "-1.5", "--periods", "3")
	assert.Equal(t, ExitInvalidInput, code)
	assert.Contains(t, errOut, "rate")

	code, _, _ = run(t, "project", "--periods", "0")
	assert.Equal(t, ExitInvalidInput, code)

	code, _, _ = run(t, "project", "--principal", "abc", "--periods", "1")
	assert.Equal(t, ExitInvalidInput, code)
}

func TestProjectCmd_HorizonAboveLimit(t *testing.T) {
	code, _, errOut := run(t, "project", "--principal", "1", "--periods", "2000000000")
	assert.Equal(t, ExitInvalidInput, code)
	assert.Contains(t, errOut, "1200")
}

func TestProjectCmd_MissingPeriods(t *testing.T) {
	code, _, _ := run(t, "project")
	assert.Equal(t, ExitError, code)
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	code, _, errOut := run(t, "-o", "xml", "project", "--periods", "1")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, errOut, "invalid output format")
}

func TestObjectiveCmd(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "report.pdf")
	code, out, errOut := run(t, "objective", "--base-year", "2024", "--pdf", pdf)
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "Libertad Financiera")
	assert.Contains(t, out, "900,000 €")
	assert.Contains(t, out, "2044")

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestObjectiveCmd_Invalid(t *testing.T) {
	code, _, _ := run(t, "objective", "--years", "60")
	assert.Equal(t, ExitInvalidInput, code)
}

func TestHoldingsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kubera.csv")
	require.NoError(t, os.WriteFile(path, []byte("Name,Value\nFund,\"$1,500.00\"\nCash,500\n"), 0o600))

	code, out, errOut := run(t, "holdings", "--file", path)
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, "Patrimonio Total Detectado: 2,000.00 €")

	code, _, _ = run(t, "holdings", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Equal(t, ExitError, code)
}

func TestVersionCmd(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	Version, GitCommit = "1.2.3", "abc1234"
	defer func() { Version, GitCommit = origVersion, origCommit }()

	code, out, _ := run(t, "version")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "wealth 1.2.3")
	assert.Contains(t, out, "commit: abc1234")

	code, out, _ = run(t, "-o", "json", "version")
	require.Equal(t, ExitOK, code)
	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc1234", info.GitCommit)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
}
