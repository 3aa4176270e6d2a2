package protect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRules(t *testing.T) {
	rs, err := Load("")
	require.NoError(t, err)

	tests := []struct {
		name      string
		path      string
		protected bool
	}{
		{name: "dotenv", path: ".env", protected: true},
		{name: "nested dotenv", path: "services/api/.env", protected: true},
		{name: "dotenv variant", path: ".env.production", protected: true},
		{name: "dotenv example is allowed", path: ".env.example", protected: false},
		{name: "dotenv sample is allowed", path: "api/.env.sample", protected: false},
		{name: "dotenv template is allowed", path: ".env.template", protected: false},
		{name: "pem key", path: "certs/server.pem", protected: true},
		{name: "private key", path: "tls/server.key", protected: true},
		{name: "ssh private key", path: "/home/user/.ssh/id_rsa", protected: true},
		{name: "ed25519 key with suffix", path: "id_ed25519.bak", protected: true},
		{name: "ssh dir", path: "/home/user/.ssh/config", protected: true},
		{name: "aws credentials", path: "/home/user/.aws/credentials", protected: true},
		{name: "secrets yaml", path: "deploy/secrets.yaml", protected: true},
		{name: "secret json", path: "secret.json", protected: true},
		{name: "credentials file", path: "config/credentials.json", protected: true},
		{name: "git internals", path: ".git/config", protected: true},
		{name: "windows separators", path: `sub\.env`, protected: true},
		{name: "ordinary source file", path: "internal/app/main.go", protected: false},
		{name: "gitignore is not git internals", path: ".gitignore", protected: false},
		{name: "environment docs", path: "docs/env.md", protected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, got := rs.Match(tt.path)
			assert.Equal(t, tt.protected, got, "path %q", tt.path)
			if tt.protected {
				assert.NotEmpty(t, rule, "protected paths must name the matching rule")
			}
		})
	}
}

func TestOverlayRules(t *testing.T) {
	dir := t.TempDir()
	overlay := filepath.Join(dir, "protected.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte(
		"protect:\n  - 'terraform\\.tfstate$'\nallow:\n  - 'fixtures/secrets\\.yaml$'\n",
	), 0o644))

	rs, err := Load(overlay)
	require.NoError(t, err)

	_, protected := rs.Match("infra/terraform.tfstate")
	assert.True(t, protected, "overlay protect rules extend the built-ins")

	_, protected = rs.Match("testdata/fixtures/secrets.yaml")
	assert.False(t, protected, "overlay allow rules carve out exceptions")

	_, protected = rs.Match(".env")
	assert.True(t, protected, "built-ins remain in force alongside the overlay")
}

func TestLoadMissingOverlay(t *testing.T) {
	rs, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err, "a missing overlay file is not an error")
	require.NotNil(t, rs)
}

func TestLoadInvalidOverlay(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("protect: [unclosed"), 0o644))
	_, err := Load(badYAML)
	require.Error(t, err)

	badPattern := filepath.Join(dir, "badre.yaml")
	require.NoError(t, os.WriteFile(badPattern, []byte("protect:\n  - '['\n"), 0o644))
	_, err = Load(badPattern)
	require.Error(t, err, "an invalid pattern is a fatal configuration error")
}

func TestAppliesTo(t *testing.T) {
	assert.True(t, AppliesTo("Write"))
	assert.True(t, AppliesTo("Edit"))
	assert.True(t, AppliesTo("MultiEdit"))
	assert.True(t, AppliesTo("NotebookEdit"))
	assert.True(t, AppliesTo(""), "bare carriers are inspected")
	assert.False(t, AppliesTo("Read"))
	assert.False(t, AppliesTo("Bash"))
}
