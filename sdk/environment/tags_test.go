package environment_test

import (
	"testing"
	"time"

	"github.com/jrazmi/taskdeck/sdk/environment"
)

type testConfig struct {
	Host    string        `env:"HOST" default:"localhost"`
	Port    int           `env:"PORT" default:"5432"`
	Timeout time.Duration `env:"TIMEOUT" default:"30s"`
	Debug   bool          `env:"DEBUG" default:"false"`
	Origins []string      `env:"ORIGINS" default:"*" separator:","`
	APIKey  string        `env:"API_KEY" required:"true"`
	NoTag   string
}

func TestParseEnvTags(t *testing.T) {
	t.Setenv("TESTAPP_HOST", "db.internal")
	t.Setenv("TESTAPP_TIMEOUT", "5s")
	t.Setenv("TESTAPP_DEBUG", "true")
	t.Setenv("TESTAPP_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TESTAPP_API_KEY", "secret")

	var cfg testConfig
	if err := environment.ParseEnvTags("TESTAPP", &cfg); err != nil {
		t.Fatalf("parsing env tags: %s", err)
	}

	if cfg.Host != "db.internal" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("Port = %d, want default 5432", cfg.Port)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != "https://a.example" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if cfg.NoTag != "" {
		t.Errorf("NoTag = %q, want untouched", cfg.NoTag)
	}
}

func TestParseEnvTagsRequiredMissing(t *testing.T) {
	var cfg testConfig
	if err := environment.ParseEnvTags("TESTAPP", &cfg); err == nil {
		t.Fatal("expected an error for the missing required variable")
	}
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	if err := environment.ParseEnvTags("TESTAPP", testConfig{}); err == nil {
		t.Fatal("expected an error for a non-pointer config")
	}
}
