package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Define styles
var (
	// Colors
	colorOrchestrator = lipgloss.Color("63")  // Purple
	colorSurfer       = lipgloss.Color("39")  // Blue
	colorCoder        = lipgloss.Color("214") // Orange
	colorUser         = lipgloss.Color("86")  // Cyan
	colorGray         = lipgloss.Color("240")

	labelBase = lipgloss.NewStyle().Bold(true)

	resultBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2).
			Width(60)

	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

// RenderSourceLabel styles a display label by the agent it belongs to.
func RenderSourceLabel(label string) string {
	style := labelBase
	switch {
	case strings.Contains(label, "Orchestrator"):
		style = style.Foreground(colorOrchestrator)
	case strings.Contains(label, "Surfer"):
		style = style.Foreground(colorSurfer)
	case strings.Contains(label, "Coder"), strings.Contains(label, "Terminal"):
		style = style.Foreground(colorCoder)
	case strings.Contains(label, "User"):
		style = style.Foreground(colorUser)
	default:
		style = style.Foreground(colorGray)
	}
	return style.Render(label)
}

// RenderUsageBox renders the end-of-task summary box with elapsed time and
// session token totals.
func RenderUsageBox(elapsedSeconds float64, promptTokens, completionTokens int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Task completed") + "\n\n")
	content.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Elapsed:"), valueStyle.Render(fmt.Sprintf("%.2f s", elapsedSeconds))))
	content.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render("Prompt tokens:"), valueStyle.Render(fmt.Sprintf("%d", promptTokens))))
	content.WriteString(fmt.Sprintf("%s %s", keyStyle.Render("Completion tokens:"), valueStyle.Render(fmt.Sprintf("%d", completionTokens))))
	return resultBoxStyle.Render(content.String()) + "\n"
}
