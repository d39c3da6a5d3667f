package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AGILECRM_BASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("MAIL_PORT", "")
	t.Setenv("EXECUTION_RETENTION", "")
	t.Setenv("ALERT_EMAIL_TO", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://n8nio.agilecrm.com/dev/", cfg.AgileCRMBaseURL)
	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, 30*24*time.Hour, cfg.ExecutionRetention)
	assert.Nil(t, cfg.AlertEmailTo)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("AGILECRM_BASE_URL", "https://acme.agilecrm.com/dev/")
	t.Setenv("AGILECRM_EMAIL", "ops@acme.com")
	t.Setenv("AGILECRM_API_KEY", "k")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("EXECUTION_RETENTION", "72h")
	t.Setenv("ALERT_EMAIL_TO", "a@acme.com, b@acme.com,")

	cfg := Load()

	assert.Equal(t, "https://acme.agilecrm.com/dev/", cfg.AgileCRMBaseURL)
	assert.Equal(t, "ops@acme.com", cfg.AgileCRMEmail)
	assert.Equal(t, 2525, cfg.MailPort)
	assert.Equal(t, 72*time.Hour, cfg.ExecutionRetention)
	assert.Equal(t, []string{"a@acme.com", "b@acme.com"}, cfg.AlertEmailTo)
}

func TestGetIntInvalid(t *testing.T) {
	t.Setenv("SOME_INT", "abc")

	assert.Equal(t, 7, getint("SOME_INT", 7))
}

func TestLoadTrustProxy(t *testing.T) {
	t.Setenv("TRUST_PROXY", "")
	assert.False(t, Load().TrustProxy)

	t.Setenv("TRUST_PROXY", "true")
	assert.True(t, Load().TrustProxy)

	t.Setenv("TRUST_PROXY", "talvez")
	assert.False(t, Load().TrustProxy)
}
