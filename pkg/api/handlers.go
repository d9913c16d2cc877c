package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/farescout/farescout/pkg/cache"
	"github.com/farescout/farescout/pkg/config"
	"github.com/farescout/farescout/pkg/provider"
)

// ProviderListItem represents a provider in the list response
type ProviderListItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// ModelsResponse is the response for GET /api/models
type ModelsResponse struct {
	Models []string `json:"models"`
	// Fallback is true when the provider could not be queried and the static
	// default list is returned instead.
	Fallback bool `json:"fallback,omitempty"`
}

// defaultModels is the static selector content used when model discovery
// fails or credentials are not configured yet.
var defaultModels = map[string][]string{
	"azure_openai": {"gpt-4o", "gpt-4o-mini", "o3-mini"},
	"openai":       {"gpt-4o", "gpt-4o-mini"},
}

// RegisterRoutes registers all API routes on the router
func RegisterRoutes(router *mux.Router, search *SearchHandler) {
	router.HandleFunc("/api/search", search.HandleSearch).Methods("POST")
	router.HandleFunc("/api/session/{id}/counters", search.HandleSessionCounters).Methods("GET")
	router.HandleFunc("/api/session/{id}/reset", search.HandleSessionReset).Methods("POST")
	router.HandleFunc("/api/providers", HandleListProviders).Methods("GET")
	router.HandleFunc("/api/models", HandleListModels).Methods("GET")
	router.HandleFunc("/api/settings/config", GetSettingsHandler).Methods("GET")
	router.HandleFunc("/api/settings/config", UpdateSettingsHandler).Methods("PUT")
}

// HandleListProviders handles GET /api/providers
func HandleListProviders(w http.ResponseWriter, r *http.Request) {
	providers := []ProviderListItem{}
	for _, id := range provider.GetProviderIDs() {
		providers = append(providers, ProviderListItem{
			ID:          id,
			DisplayName: provider.GetProviderDisplayName(id),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"providers": providers})
}

// HandleListModels handles GET /api/models?provider=...
// Queries the provider's model list with the configured credentials; falls
// back to the static defaults when that fails.
func HandleListModels(w http.ResponseWriter, r *http.Request) {
	providerName := r.URL.Query().Get("provider")
	if providerName == "" {
		providerName = "azure_openai"
	}

	w.Header().Set("Content-Type", "application/json")

	appCfg, err := config.LoadAppConfig()
	if err != nil {
		appCfg = &config.AppConfig{}
	}

	// Model discovery needs a model-agnostic credential set; any placeholder
	// satisfies Resolve's model requirement.
	creds, err := provider.Resolve(providerName, "gpt-4o", appCfg)
	if err != nil {
		json.NewEncoder(w).Encode(ModelsResponse{Models: defaultModels[providerName], Fallback: true})
		return
	}

	// Serve the cached listing when the credentials have not changed
	checksum := cache.ComputeCredentialChecksum(creds.Provider, creds.Endpoint, creds.APIKey)
	if _, err := cache.LoadCache(); err == nil {
		if models, ok := cache.GetModels(providerName, checksum); ok {
			json.NewEncoder(w).Encode(ModelsResponse{Models: models})
			return
		}
	}

	models, err := provider.ListModels(r.Context(), creds)
	if err != nil || len(models) == 0 {
		json.NewEncoder(w).Encode(ModelsResponse{Models: defaultModels[providerName], Fallback: true})
		return
	}

	cache.PutModels(providerName, models, checksum)
	if err := cache.SaveCache(); err != nil {
		log.Printf("Warning: failed to persist models cache: %v", err)
	}

	json.NewEncoder(w).Encode(ModelsResponse{Models: models})
}
