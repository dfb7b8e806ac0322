// Package ui provides styled console output for the Agent Arena server.
// Structured logs go to slog; this package covers the human-facing startup
// and shutdown messages.
package ui

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/internstack/agent-arena/internal/completion"
)

var (
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	warningBadge = color.New(color.FgYellow, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)

	successText = color.New(color.FgGreen, color.Bold)
	warningText = color.New(color.FgYellow)
	errorText   = color.New(color.FgRed)
	infoText    = color.New(color.FgCyan)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
)

// PrintBanner displays the startup banner.
func PrintBanner() {
	cyan := color.New(color.FgCyan, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)
	dim := color.New(color.FgHiBlack)

	fmt.Println()
	cyan.Println("╔══════════════════════════════════════════════════╗")
	cyan.Print("║  ")
	magenta.Print("AGENT ARENA")
	dim.Print("  │  ")
	fmt.Print("two agents, one question")
	dim.Print("  │  ")
	fmt.Print("v1.0.0")
	cyan.Println("  ║")
	cyan.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()
}

// PrintStartupInfo prints the listen address and the endpoint table.
func PrintStartupInfo(host string, port int) {
	infoBadge.Print("[ARENA]")
	fmt.Print(" Server starting on ")
	accentText.Printf("http://%s:%d\n", host, port)
	fmt.Println()
	printEndpoints()
}

// PrintProviderStatuses prints one line per provider: configured state and
// how many catalog agents it backs.
func PrintProviderStatuses(statuses []completion.ProviderStatus) {
	infoBadge.Print("[ARENA]")
	infoText.Println(" Provider status")

	for _, s := range statuses {
		fmt.Print("  ")
		if s.Configured {
			successText.Print("✓ ")
		} else {
			errorText.Print("✗ ")
		}
		fmt.Printf("%-12s ", s.DisplayName)
		if s.Configured {
			mutedText.Printf("%d agents (%d enabled)\n", s.Agents, s.EnabledAgents)
		} else {
			mutedText.Println("API key not set")
		}
	}
	fmt.Println()
}

// printEndpoints prints the available API endpoints.
func printEndpoints() {
	rows := []struct {
		method, path, desc string
	}{
		{"GET ", "/api/health", "Health check"},
		{"GET ", "/api/agents", "Agent catalog"},
		{"GET ", "/api/agent/:agent_id", "Agent detail"},
		{"GET ", "/api/best-practices", "Prompt directive phrases"},
		{"GET ", "/api/providers", "Provider status"},
		{"POST", "/api/providers/:provider/test", "Provider connectivity probe"},
		{"POST", "/api/compare", "Side-by-side comparison"},
		{"POST", "/api/assess", "Cross-assessment"},
	}

	for _, r := range rows {
		fmt.Print("  ")
		infoText.Printf("%s ", r.method)
		fmt.Printf("%-32s ", r.path)
		mutedText.Println(r.desc)
	}
	fmt.Println()
}

// PrintShutdown prints a styled shutdown message.
func PrintShutdown() {
	fmt.Println()
	warningBadge.Print("[SHUTDOWN]")
	warningText.Println(" Graceful shutdown initiated...")
}

// PrintGoodbye prints a styled goodbye message.
func PrintGoodbye() {
	successBadge.Print(" OK ")
	fmt.Print(" ")
	successText.Println("Server stopped.")
}
