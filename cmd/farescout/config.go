package farescout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/farescout/farescout/pkg/config"
	"github.com/farescout/farescout/pkg/provider"
)

func handleConfigCommand(args []string) error {
	if len(args) < 1 || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage()
		return nil
	}

	switch args[0] {
	case "edit":
		return handleConfigEdit()
	case "show":
		return handleConfigShow()
	case "directory":
		return handleConfigDirectory()
	case "test":
		return handleConfigTest(args[1:])
	default:
		return fmt.Errorf("unknown config subcommand: %s", args[0])
	}
}

func printConfigUsage() {
	fmt.Println("usage: farescout config [-h] {edit,show,directory,test} ...")
	fmt.Println("")
	fmt.Println("positional arguments:")
	fmt.Println("  {edit,show,directory,test}")
	fmt.Println("                        Configuration management commands")
	fmt.Println("    edit                Open config.yaml in default editor")
	fmt.Println("    show                Print config.yaml contents")
	fmt.Println("    directory           Print the configuration directory path")
	fmt.Println("    test [provider]     Verify provider credentials")
	fmt.Println("")
	fmt.Println("options:")
	fmt.Println("  -h, --help            show this help message and exit")
}

func handleConfigEdit() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return openInEditor(path)
}

func handleConfigShow() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Config file does not exist.")
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

func handleConfigDirectory() error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	fmt.Println(dir)
	return nil
}

// handleConfigTest runs a credential preflight against the provider's model
// list endpoint.
func handleConfigTest(args []string) error {
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	providerName := appCfg.General.DefaultProvider
	if len(args) > 0 {
		providerName = args[0]
	}
	if providerName == "" {
		providerName = "azure_openai"
	}

	modelName := appCfg.General.DefaultModel
	if modelName == "" {
		modelName = "gpt-4o"
	}

	creds, err := provider.Resolve(providerName, modelName, appCfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Printf("Testing %s credentials...\n", provider.GetProviderDisplayName(providerName))
	if err := provider.Verify(ctx, creds); err != nil {
		return err
	}
	fmt.Println("✓ Credentials OK")
	return nil
}
