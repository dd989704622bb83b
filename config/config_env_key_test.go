package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"host":    "localhost",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"adminSecret": "",
			"bcryptCost":  10,
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{"camelCase leaf is preserved", "POSTGRES_SSLMODE", "postgres.sslMode"},
		{"plain lower-case leaf", "POSTGRES_HOST", "postgres.host"},
		{"camelCase section is preserved", "SECRETKEY_ACCESS", "secretKey.access"},
		{"camelCase nested leaf", "AUTH_ADMINSECRET", "auth.adminSecret"},
		{"unknown key falls back to lower-case path", "HTTP_PORT", "http.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "adminsecret", normalizeToken("admin_secret"))
	assert.Equal(t, "maxsizemb", normalizeToken("maxSizeMB"))
	assert.Equal(t, "", normalizeToken("___"))
}
