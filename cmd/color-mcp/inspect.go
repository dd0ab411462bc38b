package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/image/colornames"

	"github.com/ironsheep/color-tools-mcp/internal/colormath"
	"github.com/ironsheep/color-tools-mcp/internal/key"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolP("json", "j", false, "Print the description as JSON")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <color>",
	Short: "Describe a color given as hex, comma-separated channels or a name",
	Example: `  color-mcp inspect "#FF8040"
  color-mcp inspect 10,20,30,255
  color-mcp inspect cornflowerblue --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colormath.Parse(strings.Join(args, " "))
		if err != nil {
			return suggestName(err)
		}

		asJSON := lo.Must(cmd.Flags().GetBool("json"))
		return renderInspect(cmd.OutOrStdout(), colormath.Describe(c), asJSON, viper.GetBool(key.CliColored))
	},
}

// suggestName adds the closest known color name to an unknown-name error.
func suggestName(err error) error {
	var unknown *colormath.UnknownColorNameError
	if !errors.As(err, &unknown) {
		return err
	}

	name := strings.ToLower(unknown.Name)
	closest := lo.MinBy(colornames.Names, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return fmt.Errorf("%w, did you mean %s?", err, closest)
}

func renderInspect(w io.Writer, info colormath.Info, asJSON, colored bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	swatch := info.Hex
	if colored {
		swatch = lipgloss.NewStyle().
			Background(lipgloss.Color(info.Hex)).
			Foreground(lipgloss.Color(info.TextColor)).
			Padding(0, 2).
			Render(info.Hex)
	}
	if info.Name != "" {
		swatch += " " + info.Name
	}

	label := lipgloss.NewStyle().Bold(colored).Width(12)
	rows := [][2]string{
		{"hex", info.Hex},
		{"argb", info.HexARGB},
		{"rgba", info.Text},
		{"brightness", strconv.Itoa(info.Brightness)},
		{"luminosity", strconv.Itoa(info.Luminosity)},
		{"text color", info.TextColor},
	}

	if _, err := fmt.Fprintln(w, swatch); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, label.Render(row[0])+row[1]); err != nil {
			return err
		}
	}
	return nil
}
