package launcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/farescout/farescout/pkg/config"
	"github.com/farescout/farescout/pkg/magentic"
	"github.com/farescout/farescout/pkg/presenter"
	"github.com/farescout/farescout/pkg/provider"
	"github.com/farescout/farescout/pkg/travel"
	"github.com/farescout/farescout/pkg/ui"
)

// ConsoleConfig contains configuration for the console launcher
type ConsoleConfig struct {
	Query        travel.Query
	ProviderName string
	ModelName    string
}

// consoleRenderer prints the message stream to the terminal, stopping the
// startup spinner the moment the first message arrives.
type consoleRenderer struct {
	stopSpinner func()
	once        sync.Once
}

func (r *consoleRenderer) started() {
	r.once.Do(func() {
		if r.stopSpinner != nil {
			r.stopSpinner()
		}
	})
}

func (r *consoleRenderer) Label(label string) {
	r.started()
	fmt.Println()
	fmt.Println(ui.RenderSourceLabel(label))
}

func (r *consoleRenderer) Text(text string) {
	r.started()
	fmt.Print(ui.SmartRender(text))
}

func (r *consoleRenderer) Image(data []byte) {
	r.started()
	fmt.Printf("[screenshot: %d bytes, view it in the web UI]\n", len(data))
}

func (r *consoleRenderer) Completed(elapsed time.Duration) {
	r.started()
	fmt.Println()
	fmt.Printf("Task completed in %.2f s.\n", elapsed.Seconds())
}

// RunConsole runs one fare search in the terminal and prints the streamed
// progress followed by a usage summary.
func RunConsole(ctx context.Context, cfg *ConsoleConfig) error {
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to load app config: %v\n", err)
		appCfg = &config.AppConfig{}
	}

	providerName := cfg.ProviderName
	if providerName == "" {
		providerName = appCfg.General.DefaultProvider
	}
	if providerName == "" {
		providerName = "azure_openai"
	}
	modelName := cfg.ModelName
	if modelName == "" {
		modelName = appCfg.General.DefaultModel
	}

	creds, err := provider.Resolve(providerName, modelName, appCfg)
	if err != nil {
		return fmt.Errorf("failed to resolve provider: %w", err)
	}
	fmt.Printf("✓ Provider: %s (model: %s)\n", provider.GetProviderDisplayName(providerName), creds.Model)

	team := magentic.NewTeam(magentic.Config{
		BaseURL:     appCfg.RuntimeBaseURL(),
		Credentials: creds,
	})

	prog := tea.NewProgram(ui.NewSpinner("Waiting for the fare runtime..."))
	go func() {
		// Errors here only affect the spinner, never the task itself.
		prog.Run()
	}()
	rend := &consoleRenderer{stopSpinner: func() {
		prog.Quit()
		prog.Wait()
	}}
	defer rend.started()

	counters := presenter.NewSessionCounters()
	pres := presenter.New(team, rend, counters)

	if _, err := pres.Present(ctx, travel.BuildPrompt(cfg.Query)); err != nil {
		return err
	}

	promptTokens, completionTokens, elapsed := counters.Snapshot()
	fmt.Println()
	fmt.Println(ui.RenderUsageBox(elapsed.Seconds(), promptTokens, completionTokens))
	return nil
}
