package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/resumeworks")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")
	t.Setenv("R2_ACCOUNT_ID", "acct")
	t.Setenv("R2_BUCKET", "resumes")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("AI_MODEL", "")
	t.Setenv("AI_REQUESTS_PER_SECOND", "")
	t.Setenv("WORKER_COUNT", "")
	t.Setenv("RESUME_CONCURRENCY", "")

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://localhost/resumeworks", cfg.DBURL)
	assert.Equal(t, "amqp://localhost", cfg.RabbitURL)
	assert.Equal(t, "acct", cfg.R2.AccountID)
	assert.Equal(t, "resumes", cfg.R2.Bucket)

	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.Equal(t, 1.0, cfg.AI.RequestsPerSecond)
	assert.Equal(t, 3, cfg.WorkerCount)
	assert.Equal(t, 4, cfg.ResumeConcurrency)
	assert.False(t, cfg.AI.IsConfigured())
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("AI_MODEL", "gemini-2.0-flash")
	t.Setenv("AI_REQUESTS_PER_SECOND", "0.5")
	t.Setenv("WORKER_COUNT", "5")
	t.Setenv("RESUME_CONCURRENCY", "8")

	cfg := LoadConfig()

	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 0.5, cfg.AI.RequestsPerSecond)
	assert.Equal(t, 5, cfg.WorkerCount)
	assert.Equal(t, 8, cfg.ResumeConcurrency)
	assert.True(t, cfg.AI.IsConfigured())
}
