package config

import (
	"os"
	"testing"
)

func TestLoadAppConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() unexpected error: %v", err)
	}
	if cfg.Providers == nil {
		t.Error("Providers map should be initialized for a fresh config")
	}
	if cfg.General.DefaultProvider != "" {
		t.Errorf("Fresh config DefaultProvider = %q, want empty", cfg.General.DefaultProvider)
	}
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &AppConfig{
		General: GeneralConfig{
			DefaultProvider: "azure_openai",
			DefaultModel:    "gpt-4o",
			RuntimeURL:      "http://runtime.internal:8700",
		},
		Providers: map[string]ProviderConfig{
			"azure_openai": {
				"endpoint": "https://example.openai.azure.com",
				"api_key":  "secret",
			},
		},
	}

	if err := SaveAppConfig(cfg); err != nil {
		t.Fatalf("SaveAppConfig() unexpected error: %v", err)
	}

	loaded, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("LoadAppConfig() unexpected error: %v", err)
	}

	if loaded.General.DefaultProvider != "azure_openai" {
		t.Errorf("DefaultProvider = %q, want azure_openai", loaded.General.DefaultProvider)
	}
	if loaded.General.RuntimeURL != "http://runtime.internal:8700" {
		t.Errorf("RuntimeURL = %q, want http://runtime.internal:8700", loaded.General.RuntimeURL)
	}
	if loaded.Providers["azure_openai"]["endpoint"] != "https://example.openai.azure.com" {
		t.Errorf("endpoint = %q, want the saved value", loaded.Providers["azure_openai"]["endpoint"])
	}
}

func TestRuntimeBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		configURL string
		want      string
	}{
		{
			name: "default when nothing set",
			want: "http://localhost:8700",
		},
		{
			name:      "config file value",
			configURL: "http://cfg:9000",
			want:      "http://cfg:9000",
		},
		{
			name:      "environment wins over config",
			env:       "http://env:9100",
			configURL: "http://cfg:9000",
			want:      "http://env:9100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAGENTIC_RUNTIME_URL", tt.env)

			cfg := &AppConfig{General: GeneralConfig{RuntimeURL: tt.configURL}}
			if got := cfg.RuntimeBaseURL(); got != tt.want {
				t.Errorf("RuntimeBaseURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetupProviderEnv(t *testing.T) {
	t.Setenv("AZURE_OPEN_AI_ENDPOINT", "")
	t.Setenv("AZURE_OPEN_AI_KEY", "")

	SetupProviderEnv("azure_openai", ProviderConfig{
		"endpoint": "https://example.openai.azure.com",
		"api_key":  "secret",
	})

	if got := os.Getenv("AZURE_OPEN_AI_ENDPOINT"); got != "https://example.openai.azure.com" {
		t.Errorf("AZURE_OPEN_AI_ENDPOINT = %q, want the config value", got)
	}
	if got := os.Getenv("AZURE_OPEN_AI_KEY"); got != "secret" {
		t.Errorf("AZURE_OPEN_AI_KEY = %q, want secret", got)
	}
}
