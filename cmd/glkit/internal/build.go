package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glkit/internal/toolchain"
	"glkit/internal/ui"
)

var buildDryRun bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the current project",
	Long: `Build loads the project configuration, composes the native compiler
invocation from the resolved library selection and the files under
src/, and runs it.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildDryRun, "dry-run", "n", false, "Print the build command without running it")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	p, err := composePlan(root, cfg)
	if err != nil {
		return err
	}

	if buildDryRun {
		fmt.Println(p.Command)
		return nil
	}

	runner := &toolchain.Runner{Dir: root}
	if err := runner.Run(context.Background(), p.Command); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	ui.Success("Built %s", p.Output)
	return nil
}
