package provider

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sashabaranov/go-openai"

	"github.com/farescout/farescout/pkg/config"
)

// DefaultAzureAPIVersion matches the API version the fare runtime was
// validated against.
const DefaultAzureAPIVersion = "2024-12-01-preview"

// ProviderDisplayNames maps provider IDs to their proper display names.
// This is the centralized source of truth for how provider names should be
// displayed in both the CLI and UI.
var ProviderDisplayNames = map[string]string{
	"azure_openai": "Azure OpenAI",
	"openai":       "OpenAI",
}

// GetProviderDisplayName returns the proper display name for a provider ID.
// If the provider ID is not found, it returns the ID as-is.
func GetProviderDisplayName(providerID string) string {
	if name, ok := ProviderDisplayNames[providerID]; ok {
		return name
	}
	return providerID
}

// GetProviderIDs returns a sorted list of all known provider IDs.
func GetProviderIDs() []string {
	ids := make([]string, 0, len(ProviderDisplayNames))
	for id := range ProviderDisplayNames {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Credentials is the resolved chat-completion client configuration handed to
// the fare runtime when a session is opened.
type Credentials struct {
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	APIKey     string `json:"api_key"`
	Endpoint   string `json:"endpoint,omitempty"`    // azure_openai only
	APIVersion string `json:"api_version,omitempty"` // azure_openai only
}

// Resolve builds Credentials for the named provider. Environment variables win
// over the config file. A missing required field is a configuration error and
// is returned to the caller as-is; there is no fallback behavior.
func Resolve(name string, modelName string, cfg *config.AppConfig) (Credentials, error) {
	switch name {
	case "azure_openai":
		endpoint := os.Getenv("AZURE_OPEN_AI_ENDPOINT")
		if endpoint == "" && cfg != nil {
			endpoint = cfg.Providers["azure_openai"]["endpoint"]
		}
		apiKey := os.Getenv("AZURE_OPEN_AI_KEY")
		if apiKey == "" && cfg != nil {
			apiKey = cfg.Providers["azure_openai"]["api_key"]
		}
		apiVersion := os.Getenv("AZURE_OPEN_AI_API_VERSION")
		if apiVersion == "" && cfg != nil {
			apiVersion = cfg.Providers["azure_openai"]["api_version"]
		}
		if apiVersion == "" {
			apiVersion = DefaultAzureAPIVersion
		}
		if endpoint == "" {
			return Credentials{}, fmt.Errorf("AZURE_OPEN_AI_ENDPOINT not set")
		}
		if apiKey == "" {
			return Credentials{}, fmt.Errorf("AZURE_OPEN_AI_KEY not set")
		}
		if modelName == "" {
			return Credentials{}, fmt.Errorf("model name required for azure_openai")
		}
		return Credentials{
			Provider:   "azure_openai",
			Model:      modelName,
			APIKey:     apiKey,
			Endpoint:   endpoint,
			APIVersion: apiVersion,
		}, nil

	case "openai":
		apiKey := os.Getenv("OPEN_AI_API_KEY")
		if apiKey == "" && cfg != nil {
			apiKey = cfg.Providers["openai"]["api_key"]
		}
		if apiKey == "" {
			return Credentials{}, fmt.Errorf("OPEN_AI_API_KEY not set")
		}
		if modelName == "" {
			modelName = os.Getenv("OPEN_AI_MODEL_NAME")
		}
		if modelName == "" && cfg != nil {
			modelName = cfg.Providers["openai"]["model"]
		}
		if modelName == "" {
			return Credentials{}, fmt.Errorf("OPEN_AI_MODEL_NAME not set")
		}
		return Credentials{
			Provider: "openai",
			Model:    modelName,
			APIKey:   apiKey,
		}, nil

	default:
		return Credentials{}, fmt.Errorf("unsupported provider: %s", name)
	}
}

// NewClient builds a chat-completion client from resolved credentials. Used
// for model discovery and credential preflight; task execution itself goes
// through the fare runtime with the same credentials.
func NewClient(creds Credentials) *openai.Client {
	if creds.Provider == "azure_openai" {
		clientCfg := openai.DefaultAzureConfig(creds.APIKey, creds.Endpoint)
		clientCfg.APIVersion = creds.APIVersion
		return openai.NewClientWithConfig(clientCfg)
	}
	return openai.NewClient(creds.APIKey)
}

// ListModels returns the model IDs available to the credential set, sorted.
func ListModels(ctx context.Context, creds Credentials) ([]string, error) {
	client := NewClient(creds)
	list, err := client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

// Verify performs a credential preflight by listing models.
func Verify(ctx context.Context, creds Credentials) error {
	if _, err := ListModels(ctx, creds); err != nil {
		return fmt.Errorf("credential check failed for %s: %w", creds.Provider, err)
	}
	return nil
}
