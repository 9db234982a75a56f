package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"maxOpenConns": 10,
			"dsn":          "",
		},
		"web": map[string]any{
			"apiBaseUrl": "",
			"sessionTtl": "24h",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "DATABASE_DSN", want: "database.dsn"},
		{envKey: "WEB_APIBASEURL", want: "web.apiBaseUrl"},
		{envKey: "WEB_SESSIONTTL", want: "web.sessionTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("DATABASE_REPLICAS_0_DSN", "host=replica-a")
	t.Setenv("DATABASE_REPLICAS_1_DSN", "host=replica-b")

	assert.Equal(t, []string{"host=replica-a", "host=replica-b"}, buildReplicasFromEnv())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.HTTP.Port = 8000

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultCookieName, cfg.Web.CookieName)
	assert.Equal(t, "http://localhost:8000", cfg.Web.APIBaseURL)
	assert.Equal(t, defaultSessionTTL, cfg.Web.SessionTTL)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
}
