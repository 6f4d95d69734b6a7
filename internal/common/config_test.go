package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %s", cfg.Server.Addr)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("LLM.Model = %s", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("LLM.Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.Notify.MaxAttempts != 5 || cfg.Notify.BaseBackoff != 2*time.Second {
		t.Errorf("Notify defaults = %+v", cfg.Notify)
	}
	if cfg.Worker.Workers != 6 || cfg.Worker.QueueSize != 512 {
		t.Errorf("Worker defaults = %+v", cfg.Worker)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
database:
  dsn: "tasks.db"
llm:
  model: gpt-4o-mini
storage:
  endpoint: localhost:9000
  bucket: contracts
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENAI_MODEL", "gpt-4.1")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %s", cfg.Server.Addr)
	}
	if cfg.Storage.Bucket != "contracts" {
		t.Errorf("Storage.Bucket = %s", cfg.Storage.Bucket)
	}
	if cfg.LLM.Model != "gpt-4.1" {
		t.Errorf("env override lost, LLM.Model = %s", cfg.LLM.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	t.Setenv("DB_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("MINIO_ENDPOINT", "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty config")
	}
}
