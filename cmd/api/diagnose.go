package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/coinsguard/coinsguard-api/internal/diagnostics"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Check the document store connection",
	Long:  `Connects to the configured document store, lists its collections and prints the same report as GET /test.`,
	Args:  cobra.NoArgs,
	RunE:  runDiagnose,
}

var (
	diagnoseJSON   bool
	diagnoseStrict bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("8"))
	stateStyle = map[diagnostics.State]lipgloss.Style{
		diagnostics.StateConnected:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		diagnostics.StateDegraded:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		diagnostics.StateNotInitialized: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)

func init() {
	diagnoseCmd.Flags().BoolVar(&diagnoseJSON, "json", false, "print the report as JSON")
	diagnoseCmd.Flags().BoolVar(&diagnoseStrict, "strict", false, "exit with an error unless the store is connected")
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store := openStore(ctx, cfg.Database)
	defer store.Close(context.Background())

	report := newProbe(store, cfg.Database).Run(ctx)

	out := cmd.OutOrStdout()
	if diagnoseJSON || !isTerminal(out) {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, renderReport(report))
	}

	if diagnoseStrict && report.State != diagnostics.StateConnected {
		return fmt.Errorf("document store is %s", report.State)
	}
	return nil
}

// renderReport formats report for a terminal
func renderReport(report diagnostics.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Coins Guard diagnostics"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("State", stateStyle[report.State].Render(string(report.State)))
	row("Backend", report.Backend)
	row("Driver", orDash(report.Driver))
	row("Database", report.Database)
	row("DATABASE_URL", report.DatabaseURL)
	row("DATABASE_NAME", report.DatabaseName)
	row("Connection", report.ConnectionStatus)
	if report.Error != "" {
		row("Error", report.Error)
	}
	if len(report.Collections) == 0 {
		row("Collections", "-")
	} else {
		row("Collections", strings.Join(report.Collections, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
