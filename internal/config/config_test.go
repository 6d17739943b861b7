package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONVERTER_URL", "https://converter.example.com/api/convert")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendHTTP, cfg.Backend)
	assert.Equal(t, 30*time.Second, cfg.ConverterTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 60, cfg.RateLimit)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CONVERTER_BACKEND", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_ADMIN_CHAT_ID", "777")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, int64(777), cfg.TelegramAdminID)
}

func TestValidate(t *testing.T) {
	base := Config{Backend: BackendHTTP, ConverterURL: "http://x", RateLimit: 10}
	require.NoError(t, base.Validate())

	noURL := base
	noURL.ConverterURL = ""
	assert.ErrorContains(t, noURL.Validate(), "CONVERTER_URL")

	openaiNoKey := base
	openaiNoKey.Backend = BackendOpenAI
	assert.ErrorContains(t, openaiNoKey.Validate(), "OPENAI_API_KEY")

	unknown := base
	unknown.Backend = "grpc"
	assert.ErrorContains(t, unknown.Validate(), "unknown CONVERTER_BACKEND")

	tgNoChat := base
	tgNoChat.TelegramToken = "123:abc"
	assert.ErrorContains(t, tgNoChat.Validate(), "TELEGRAM_ADMIN_CHAT_ID")

	badRate := base
	badRate.RateLimit = 0
	assert.Error(t, badRate.Validate())
}
