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

	"github.com/qamarshahid/techprocessing/pkg/security"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun_PasswordFlag(t *testing.T) {
	code, out, _ := runCLI(t, "", "--password", "Tr8!mK2pQw#Lz")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "OK\n", out)

	code, out, _ = runCLI(t, "", "--password", "Ab1!")
	assert.Equal(t, exitRejected, code)
	assert.Equal(t, "REJECTED: Password must contain at least 12 characters.\n", out)
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(t, "Tr8!mK2pQw#Lz\r\n\n   \nqwerty123456\n")

	assert.Equal(t, exitRejected, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "OK", lines[0])
	assert.Contains(t, lines[1], "not contain common passwords")
}

func TestRun_UserInfo(t *testing.T) {
	code, out, _ := runCLI(t, "", "--password", "JaneRoe!7qKw#Z", "--user-info", "jane", "--user-info", "roe")
	assert.Equal(t, exitRejected, code)
	assert.Contains(t, out, "personal information")
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := runCLI(t, "Ab1!\n", "--json")
	require.Equal(t, exitRejected, code)

	var res security.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, []security.Rule{security.RuleMinLength}, res.Rules())
}

func TestRun_RolePolicy(t *testing.T) {
	path := writeConfig(t, "password:\n  roles:\n    admin:\n      min_length: 16\n")

	code, out, _ := runCLI(t, "", "--config", path, "--role", "admin", "--password", "Tr8!mK2pQw#Lz")
	assert.Equal(t, exitRejected, code)
	assert.Contains(t, out, "at least 16 characters")

	code, _, _ = runCLI(t, "", "--config", path, "--role", "client", "--password", "Tr8!mK2pQw#Lz")
	assert.Equal(t, exitOK, code)
}

func TestRun_UnknownRoleWarns(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--role", "intern", "--password", "Tr8!mK2pQw#Lz")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "unknown role")
}

func TestRun_Summary(t *testing.T) {
	code, out, _ := runCLI(t, "", "--summary")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, security.DefaultPolicy().Summary()+"\n", out)
}

func TestRun_Metrics(t *testing.T) {
	path := writeConfig(t, "metrics:\n  enabled: true\n  namespace: cli\n")

	code, _, stderr := runCLI(t, "Ab1!\nTr8!mK2pQw#Lz\n", "--config", path)
	assert.Equal(t, exitRejected, code)
	assert.Contains(t, stderr, `cli_password_evaluations_total{policy="default",result="rejected"} 1`)
	assert.Contains(t, stderr, `cli_password_rule_violations_total{policy="default",rule="min_length"} 1`)
}

func TestRun_LogLevelFlag(t *testing.T) {
	_, _, stderr := runCLI(t, "", "--password", "Tr8!mK2pQw#Lz", "--log-level", "debug")
	assert.Contains(t, stderr, "password accepted")

	_, _, stderr = runCLI(t, "", "--password", "Tr8!mK2pQw#Lz")
	assert.NotContains(t, stderr, "password accepted")
}

func TestRun_BadConfig(t *testing.T) {
	code, _, stderr := runCLI(t, "", "--config", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "failed to read config file")

	path := writeConfig(t, "password:\n  default:\n    min_length: 0\n")
	code, _, _ = runCLI(t, "", "--config", path)
	assert.Equal(t, exitUsage, code)
}

func TestRun_BadFlag(t *testing.T) {
	code, _, _ := runCLI(t, "", "--nope")
	assert.Equal(t, exitUsage, code)
}
