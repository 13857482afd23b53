package app

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Payback159/x0go/client"
	"github.com/Payback159/x0go/internal/handlers"
	"github.com/Payback159/x0go/internal/models"
)

func startServer(t *testing.T, cfg *models.Config) string {
	t.Helper()
	container, err := handlers.NewContainer(cfg)
	require.NoError(t, err)
	e := echo.New()
	container.Register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv.URL
}

// run executes the CLI and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewX0Command()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfoCommand(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Version = "mock-version"
	server := startServer(t, cfg)
	profile := filepath.Join(t.TempDir(), "config.yaml")

	out, err := run(t, "info", "--server", server, "--api-version", "v2", "--config", profile)
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    mock-version")
	assert.Contains(t, out, "Length:     1-32")

	out, err = run(t, "info", "--json", "--server", server, "--config", profile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"mock-version","production":false}`, out)
}

func TestNamespaceLifecycle(t *testing.T) {
	server := startServer(t, nil)
	profile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, (&Profile{Server: server, APIVersion: "v2"}).Save(profile))

	out, err := run(t, "namespace", "create", "demo", "--check-id", "--save", "--config", profile)
	require.NoError(t, err)
	token := strings.TrimSpace(out)
	require.NotEmpty(t, token)

	saved, err := LoadProfile(profile)
	require.NoError(t, err)
	assert.Equal(t, token, saved.Token("demo"))
	assert.Equal(t, server, saved.Server)

	out, err = run(t, "ns", "get", "demo", "--config", profile)
	require.NoError(t, err)
	assert.Contains(t, out, "ID:      demo")
	assert.Contains(t, out, "Active:  true")

	out, err = run(t, "namespace", "reset-token", "demo", "--save", "--config", profile)
	require.NoError(t, err)
	newToken := strings.TrimSpace(out)
	assert.NotEqual(t, token, newToken)

	_, err = run(t, "namespace", "get", "demo", "--token", token, "--config", profile)
	require.Error(t, err)
	code, ok := client.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 401, code)
	assert.Contains(t, err.Error(), "token rejected")

	_, err = run(t, "namespace", "get", "demo", "--config", profile)
	assert.NoError(t, err, "the reset token was saved")
}

func TestCreateCheckID(t *testing.T) {
	server := startServer(t, nil)
	profile := filepath.Join(t.TempDir(), "config.yaml")

	_, err := run(t, "namespace", "create", "Not Valid", "--check-id",
		"--server", server, "--api-version", "v2", "--config", profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")

	_, err = run(t, "namespace", "create", "valid", "--check-id",
		"--server", server, "--api-version", "v1", "--config", profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "v2")
}

func TestVersionCommand(t *testing.T) {
	cfg := models.DefaultConfig()
	cfg.Version = "9.9.9"
	server := startServer(t, cfg)
	profile := filepath.Join(t.TempDir(), "config.yaml")

	out, err := run(t, "version", "--client", "--config", profile)
	require.NoError(t, err)
	assert.Equal(t, "Client Version: "+client.Version+"\n", out)

	out, err = run(t, "version", "--server", server, "--config", profile)
	require.NoError(t, err)
	assert.Contains(t, out, "Server Version: 9.9.9")
}

func TestInvalidGlobalFlags(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "config.yaml")
	tests := []struct {
		name string
		args []string
	}{
		{"api version", []string{"info", "--api-version", "v9", "--config", profile}},
		{"log level", []string{"info", "--log-level", "loud", "--config", profile}},
		{"log format", []string{"info", "--log-format", "xml", "--config", profile}},
		{"server scheme", []string{"info", "--server", "ftp://x0", "--config", profile}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
