package farescout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Version information
const (
	Version = "0.3.0"
	Name    = "FareScout Flight Fare Finder"
	GitHub  = "https://github.com/farescout/farescout"
)

// ASCII Logo with colors using lipgloss
var asciiLogo = `
    ______                _____                 __
   / ____/___ _________  / ___/_________  __  __/ /_
  / /_  / __ '/ ___/ _ \ \__ \/ ___/ __ \/ / / / __/
 / __/ / /_/ / /  /  __/___/ / /__/ /_/ / /_/ / /_
/_/    \__,_/_/   \___//____/\___/\____/\__,_/\__/
`

func printVersion() {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")). // Blue
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")). // Purple
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")) // White/Grey

	linkStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")). // Blue
		Underline(true)

	// Print logo
	fmt.Println(logoStyle.Render(asciiLogo))
	fmt.Println()

	// Print version info
	fmt.Println(labelStyle.Render(Name))
	fmt.Printf("%s %s\n", labelStyle.Render("Version:"), valueStyle.Render(Version))
	fmt.Printf("%s %s\n", labelStyle.Render("GitHub:"), linkStyle.Render(GitHub))
	fmt.Println()
}
