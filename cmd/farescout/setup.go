package farescout

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/farescout/farescout/pkg/config"
	"github.com/farescout/farescout/pkg/provider"
	"github.com/farescout/farescout/pkg/ui"
)

func handleSetupCommand() error {
	var modelInput string
	reader := bufio.NewReader(os.Stdin)
	cfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return err
	}

	fmt.Println("Select a provider to configure:")
	providers := provider.GetProviderIDs()
	for i, p := range providers {
		fmt.Printf("%d. %s\n", i+1, provider.GetProviderDisplayName(p))
	}

	fmt.Print("Enter the number of your choice: ")
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)

	var selectedProvider string
	var idx int
	if _, err := fmt.Sscanf(input, "%d", &idx); err == nil && idx > 0 && idx <= len(providers) {
		selectedProvider = providers[idx-1]
	} else {
		return fmt.Errorf("invalid selection")
	}

	fmt.Printf("Configuring %s...\n", provider.GetProviderDisplayName(selectedProvider))

	if cfg.Providers[selectedProvider] == nil {
		cfg.Providers[selectedProvider] = make(config.ProviderConfig)
	}

	switch selectedProvider {
	case "azure_openai":
		promptAndSet(reader, cfg.Providers[selectedProvider], "endpoint", "Enter Azure OpenAI Endpoint")
		promptAndSet(reader, cfg.Providers[selectedProvider], "api_key", "Enter Azure OpenAI API Key")
		promptAndSet(reader, cfg.Providers[selectedProvider], "api_version", "Enter API Version (leave empty for "+provider.DefaultAzureAPIVersion+")")
	case "openai":
		promptAndSet(reader, cfg.Providers[selectedProvider], "api_key", "Enter OpenAI API Key")
	}

	// Fetch and list deployed models with the credentials just entered
	fmt.Println("Fetching available models...")
	// Any placeholder model satisfies Resolve; listing is model-agnostic
	creds, err := provider.Resolve(selectedProvider, "gpt-4o", cfg)
	if err != nil {
		fmt.Printf("Warning: Failed to resolve credentials: %v\n", err)
	} else {
		models, err := provider.ListModels(context.Background(), creds)
		if err != nil {
			fmt.Printf("Warning: Failed to fetch models: %v\n", err)
		} else if len(models) > 0 {
			selected, err := ui.ReadSelection(models, "Select a default model")
			if err == nil && selected != "" {
				cfg.General.DefaultModel = selected
				fmt.Printf("Selected model: %s\n", cfg.General.DefaultModel)
				goto SaveConfig
			}
		} else {
			fmt.Println("No deployed models found.")
		}
	}

	// Ask for default model
	fmt.Print("Enter default model (leave empty to keep current/default): ")
	modelInput, _ = reader.ReadString('\n')
	modelInput = strings.TrimSpace(modelInput)
	if modelInput != "" {
		cfg.General.DefaultModel = modelInput
	}

SaveConfig:
	cfg.General.DefaultProvider = selectedProvider
	fmt.Printf("Set %s as default provider.\n", selectedProvider)

	if err := config.SaveAppConfig(cfg); err != nil {
		fmt.Printf("Error saving config: %v\n", err)
		return err
	}

	fmt.Println("Configuration saved successfully!")
	return nil
}

func promptAndSet(reader *bufio.Reader, providerConfig config.ProviderConfig, key string, prompt string) {
	current := providerConfig[key]
	fmt.Printf("%s [%s]: ", prompt, current)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input != "" {
		providerConfig[key] = input
	}
}
