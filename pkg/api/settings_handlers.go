package api

import (
	"encoding/json"
	"net/http"

	"github.com/farescout/farescout/pkg/config"
	"github.com/farescout/farescout/pkg/provider"
)

// GeneralSettings represents the general app settings
type GeneralSettings struct {
	DefaultProvider            string `json:"default_provider"`
	DefaultProviderDisplayName string `json:"default_provider_display_name"`
	DefaultModel               string `json:"default_model"`
	RuntimeURL                 string `json:"runtime_url"`
}

// ProviderSettings represents a provider's configuration (masked)
type ProviderSettings struct {
	Name        string            `json:"name"`
	DisplayName string            `json:"display_name"`
	Configured  bool              `json:"configured"`
	Fields      map[string]string `json:"fields"` // Masked values for display
}

// AppSettingsResponse is the response for GET /api/settings/config
type AppSettingsResponse struct {
	General   GeneralSettings    `json:"general"`
	Providers []ProviderSettings `json:"providers"`
}

// UpdateAppSettingsRequest is the request for PUT /api/settings/config
type UpdateAppSettingsRequest struct {
	General   *GeneralSettings             `json:"general,omitempty"`
	Providers map[string]map[string]string `json:"providers,omitempty"`
}

// GetSettingsHandler handles GET /api/settings/config
func GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		http.Error(w, "Failed to load config: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Build response with masked provider values
	providers := []ProviderSettings{}

	for _, name := range provider.GetProviderIDs() {
		providerCfg, exists := cfg.Providers[name]
		fields := make(map[string]string)
		configured := false

		// Get expected fields for this provider
		if mapping, ok := config.ProviderEnvMapping[name]; ok {
			for cfgKey := range mapping {
				if exists && providerCfg[cfgKey] != "" {
					// Mask the value (show last 4 chars)
					val := providerCfg[cfgKey]
					if len(val) > 4 {
						fields[cfgKey] = "****" + val[len(val)-4:]
					} else {
						fields[cfgKey] = "****"
					}
					configured = true
				} else {
					fields[cfgKey] = ""
				}
			}
		}

		providers = append(providers, ProviderSettings{
			Name:        name,
			DisplayName: provider.GetProviderDisplayName(name),
			Configured:  configured,
			Fields:      fields,
		})
	}

	response := AppSettingsResponse{
		General: GeneralSettings{
			DefaultProvider:            cfg.General.DefaultProvider,
			DefaultProviderDisplayName: provider.GetProviderDisplayName(cfg.General.DefaultProvider),
			DefaultModel:               cfg.General.DefaultModel,
			RuntimeURL:                 cfg.General.RuntimeURL,
		},
		Providers: providers,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateSettingsHandler handles PUT /api/settings/config
func UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateAppSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cfg, err := config.LoadAppConfig()
	if err != nil {
		http.Error(w, "Failed to load config: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Update general settings if provided
	if req.General != nil {
		cfg.General.DefaultProvider = req.General.DefaultProvider
		cfg.General.DefaultModel = req.General.DefaultModel
		cfg.General.RuntimeURL = req.General.RuntimeURL
	}

	// Update provider settings if provided. Masked values coming back from
	// the UI are ignored so a save never clobbers a real secret.
	if req.Providers != nil {
		for providerName, providerFields := range req.Providers {
			if cfg.Providers == nil {
				cfg.Providers = make(map[string]config.ProviderConfig)
			}
			if cfg.Providers[providerName] == nil {
				cfg.Providers[providerName] = make(config.ProviderConfig)
			}
			for key, value := range providerFields {
				if value == "" || (len(value) >= 4 && value[:4] == "****") {
					continue
				}
				cfg.Providers[providerName][key] = value
			}
		}
	}

	if err := config.SaveAppConfig(cfg); err != nil {
		http.Error(w, "Failed to save config: "+err.Error(), http.StatusInternalServerError)
		return
	}

	// Export the saved credentials so env-first resolution picks them up
	// without a restart
	config.SetupAllProviderEnv(cfg)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"saved": true})
}
