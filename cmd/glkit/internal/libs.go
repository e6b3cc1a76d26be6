package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"glkit/internal/catalog"
	"glkit/internal/ui"
)

var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "List the supported libraries",
	Run:   runLibs,
}

func init() {
	rootCmd.AddCommand(libsCmd)
}

func runLibs(cmd *cobra.Command, args []string) {
	ui.Header("Supported libraries")
	for _, e := range catalog.Entries() {
		extra := ""
		if e.GeneratedSource != "" {
			extra = fmt.Sprintf(" (expects src/%s)", e.GeneratedSource)
		}
		fmt.Printf("  %-8s %s%s\n", e.ID, e.Summary, extra)
	}
	if rules := catalog.Conflicts(); len(rules) > 0 {
		fmt.Println()
		for _, c := range rules {
			fmt.Printf("  note: %s and %s are mutually exclusive, %s wins\n", c.Winner, c.Loser, c.Winner)
		}
	}
	fmt.Println()
	fmt.Printf("Example: glkit new demo --libs %s\n", strings.Join([]string{catalog.GLFW, catalog.GLAD, catalog.GLM}, ","))
}
