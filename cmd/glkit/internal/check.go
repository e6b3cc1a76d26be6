package internal

import (
	"os"

	"github.com/spf13/cobra"

	"glkit/internal/depcheck"
	"glkit/internal/selection"
	"glkit/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Preflight-check the current project",
	Long: `Check resolves the saved library selection and verifies that the
headers and libraries it needs exist under the project tree. Findings
are advisory; check always exits zero once the config loads.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	res := selection.Resolve(selection.NormalizeList(cfg.Libs))
	for _, n := range res.Notices {
		ui.Warning("%s", n)
	}

	warns := depcheck.Check(root, res.Libs)
	for _, w := range warns {
		ui.Warning("%s", w)
	}
	if len(warns) == 0 {
		ui.Success("All required artifacts present")
	} else {
		ui.Info("%d missing artifact(s); the compiler will report the ones that matter", len(warns))
	}
	return nil
}
