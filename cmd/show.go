package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"nix-config/internal/config"
)

var (
	accent = lipgloss.Color("99")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")

	titleStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(dim)
)

// showCmd prints the desired state apply would converge to.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the desired state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := config.Resolve(configFile)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderState(ds))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&configFile, "config-file", "c", "", "Desired-state document (.yaml, .yml, .json, .jsonc)")
	rootCmd.AddCommand(showCmd)
}

func renderState(ds config.DesiredState) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Activation") + "\n")
	a := ds.Activation
	for _, kv := range [][2]string{
		{"username", a.Username},
		{"default browser", a.DefaultBrowser},
		{"home", a.HomeDirectory},
		{"toolchain", a.Toolchain},
	} {
		fmt.Fprintf(&sb, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", kv[0]+":")), kv[1])
	}

	var pkgRows [][]string
	for _, p := range ds.SystemPackages {
		pkgRows = append(pkgRows, []string{"nix", p.Name, p.Version})
	}
	for _, p := range ds.Brews {
		pkgRows = append(pkgRows, []string{"brew", p.Name, p.Version})
	}
	for _, c := range ds.Casks {
		pkgRows = append(pkgRows, []string{"cask", c, ""})
	}
	sb.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Packages (%d)", len(pkgRows))) + "\n")
	sb.WriteString(renderTable([]string{"SOURCE", "NAME", "VERSION"}, pkgRows) + "\n")

	var prefRows [][]string
	for _, g := range ds.Preferences {
		for _, s := range g.Settings {
			prefRows = append(prefRows, []string{g.Area, s.Domain, s.Key, s.Value, s.Type})
		}
	}
	sb.WriteString("\n" + titleStyle.Render(fmt.Sprintf("Preferences (%d)", len(prefRows))) + "\n")
	sb.WriteString(renderTable([]string{"AREA", "DOMAIN", "KEY", "VALUE", "TYPE"}, prefRows) + "\n")

	if len(ds.DockApps) > 0 {
		sb.WriteString("\n" + titleStyle.Render("Dock") + "\n")
		for _, app := range ds.DockApps {
			sb.WriteString("  " + app + "\n")
		}
	}
	return sb.String()
}

func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	oddStyle := cellStyle.Foreground(dim)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return cellStyle
			default:
				return oddStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}
