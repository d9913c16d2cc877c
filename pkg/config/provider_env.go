package config

import "os"

// ProviderEnvMapping maps provider config keys to environment variable names.
// This is the single source of truth for how config keys map to env vars.
var ProviderEnvMapping = map[string]map[string]string{
	"azure_openai": {
		"endpoint":    "AZURE_OPEN_AI_ENDPOINT",
		"api_key":     "AZURE_OPEN_AI_KEY",
		"api_version": "AZURE_OPEN_AI_API_VERSION",
	},
	"openai": {
		"api_key": "OPEN_AI_API_KEY",
		"model":   "OPEN_AI_MODEL_NAME",
	},
}

// SetupProviderEnv sets environment variables from config for a specific provider
func SetupProviderEnv(providerName string, providerCfg ProviderConfig) {
	if mapping, ok := ProviderEnvMapping[providerName]; ok {
		for cfgKey, envKey := range mapping {
			if val, ok := providerCfg[cfgKey]; ok && val != "" {
				os.Setenv(envKey, val)
			}
		}
	}
}

// SetupAllProviderEnv sets environment variables for all configured providers
func SetupAllProviderEnv(appCfg *AppConfig) {
	if appCfg == nil || appCfg.Providers == nil {
		return
	}
	for providerName, providerCfg := range appCfg.Providers {
		SetupProviderEnv(providerName, providerCfg)
	}
}
