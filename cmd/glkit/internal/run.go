package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"glkit/internal/toolchain"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile and run the current project",
	Long:  `Run builds the project like 'glkit build' and then executes the produced binary.`,
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
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

	ctx := context.Background()
	runner := &toolchain.Runner{Dir: root}
	if err := runner.Run(ctx, p.Command); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	// Execute the binary directly: output names come verbatim from the
	// user and must not be re-parsed by a shell.
	if err := runner.Exec(ctx, filepath.Join(root, p.Output)); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}
