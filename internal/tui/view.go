package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneParameters:
		content = m.parametersModel.View()
	case SceneAssets:
		content = m.assetsModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	if m.warning != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, WarningStyle.Render(m.warning), content)
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	// Title (2) + status (1) + padding (1)
	contentHeight := m.height - 4

	contentContainer := lipgloss.NewStyle().
		Height(max(contentHeight, 1)).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("BestInvest - Mortgage Prepayment vs Investing")

	var breadcrumb string
	if m.result != nil {
		breadcrumb = SubtitleStyle.Render(
			fmt.Sprintf("%s / %s", m.currentScene.String(), m.active.Title()),
		)
	} else {
		breadcrumb = SubtitleStyle.Render(m.currentScene.String())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("c", "compare"),
		formatShortcut("p", "parameters"),
		formatShortcut("a", "assets"),
		formatShortcut("tab", "scenario"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.configPath != "" {
		name := SubtitleStyle.Render(m.configPath)
		width := m.width - lipgloss.Width(statusText) - 4
		spacer := strings.Repeat(" ", max(0, width))
		statusText = statusText + spacer + name
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders the spinner and loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := BorderStyle.Render(
		fmt.Sprintf("%s %s", m.spinner.View(), message),
	)

	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)

	return m.renderApp(content)
}

// renderHelp renders the keyboard reference
func (m Model) renderHelp() string {
	rows := [][2]string{
		{"h", "Home dashboard"},
		{"c", "Compare every asset for the active scenario"},
		{"p", "Edit loan, tax and investment parameters"},
		{"a", "Browse the asset dataset"},
		{"tab / shift+tab", "Next / previous scenario"},
		{"1 2 3", "Conservative, moderate, aggressive"},
		{"esc", "Back"},
		{"q / ctrl+c", "Quit"},
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Keyboard Shortcuts"))
	sb.WriteString("\n\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", HelpKeyStyle.Render(r[0]), HelpDescStyle.Render(r[1])))
	}
	sb.WriteString("\nIn the parameters scene, arrow keys move between fields and adjust values; enter recalculates.")

	return BorderStyle.Render(sb.String())
}
