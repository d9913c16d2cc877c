package provider

import (
	"testing"

	"github.com/farescout/farescout/pkg/config"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AZURE_OPEN_AI_ENDPOINT",
		"AZURE_OPEN_AI_KEY",
		"AZURE_OPEN_AI_API_VERSION",
		"OPEN_AI_API_KEY",
		"OPEN_AI_MODEL_NAME",
	} {
		t.Setenv(key, "")
	}
}

func TestResolveAzureFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("AZURE_OPEN_AI_ENDPOINT", "https://example.openai.azure.com")
	t.Setenv("AZURE_OPEN_AI_KEY", "azure-key")

	creds, err := Resolve("azure_openai", "o3-mini", nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if creds.Endpoint != "https://example.openai.azure.com" {
		t.Errorf("endpoint = %q", creds.Endpoint)
	}
	if creds.APIKey != "azure-key" {
		t.Errorf("api key = %q", creds.APIKey)
	}
	if creds.APIVersion != DefaultAzureAPIVersion {
		t.Errorf("api version = %q, want default %q", creds.APIVersion, DefaultAzureAPIVersion)
	}
	if creds.Model != "o3-mini" {
		t.Errorf("model = %q", creds.Model)
	}
}

func TestResolveAzureMissingFields(t *testing.T) {
	clearProviderEnv(t)

	if _, err := Resolve("azure_openai", "o3-mini", nil); err == nil {
		t.Error("expected error when endpoint and key are unset")
	}

	t.Setenv("AZURE_OPEN_AI_ENDPOINT", "https://example.openai.azure.com")
	if _, err := Resolve("azure_openai", "o3-mini", nil); err == nil {
		t.Error("expected error when key is unset")
	}

	t.Setenv("AZURE_OPEN_AI_KEY", "azure-key")
	if _, err := Resolve("azure_openai", "", nil); err == nil {
		t.Error("expected error when model is empty")
	}
}

func TestResolveOpenAIConfigFallback(t *testing.T) {
	clearProviderEnv(t)
	cfg := &config.AppConfig{
		Providers: map[string]config.ProviderConfig{
			"openai": {"api_key": "file-key", "model": "gpt-4o-mini"},
		},
	}

	creds, err := Resolve("openai", "", cfg)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if creds.APIKey != "file-key" {
		t.Errorf("api key = %q, want config fallback", creds.APIKey)
	}
	if creds.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want config fallback", creds.Model)
	}
}

func TestResolveOpenAIEnvWinsOverConfig(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPEN_AI_API_KEY", "env-key")
	t.Setenv("OPEN_AI_MODEL_NAME", "gpt-4o")
	cfg := &config.AppConfig{
		Providers: map[string]config.ProviderConfig{
			"openai": {"api_key": "file-key", "model": "gpt-3.5-turbo"},
		},
	}

	creds, err := Resolve("openai", "", cfg)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if creds.APIKey != "env-key" {
		t.Errorf("api key = %q, env should win", creds.APIKey)
	}
	if creds.Model != "gpt-4o" {
		t.Errorf("model = %q, env should win", creds.Model)
	}
}

func TestResolveUnsupportedProvider(t *testing.T) {
	if _, err := Resolve("watsonx", "some-model", nil); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestGetProviderDisplayName(t *testing.T) {
	if got := GetProviderDisplayName("azure_openai"); got != "Azure OpenAI" {
		t.Errorf("display name = %q", got)
	}
	if got := GetProviderDisplayName("something_else"); got != "something_else" {
		t.Errorf("unknown provider should pass through, got %q", got)
	}
}
