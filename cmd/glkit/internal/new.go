package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"glkit/internal/catalog"
	"glkit/internal/depcheck"
	"glkit/internal/editor"
	"glkit/internal/plan"
	"glkit/internal/project"
	"glkit/internal/selection"
	"glkit/internal/settings"
	"glkit/internal/sources"
	"glkit/internal/ui"
)

var (
	newCompiler string
	newStandard string
	newLibs     string
	newOutput   string
	newYes      bool
	newForce    bool
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new C++ project",
	Long: `New creates a project directory with src/, include/ and lib/, a starter
main.cpp matching the selected libraries, VS Code integration files and
the persisted build configuration used by 'glkit build' and 'glkit run'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newCompiler, "compiler", "", "Compiler to use (default from user settings, else g++)")
	newCmd.Flags().StringVar(&newStandard, "std", "", "C++ standard, e.g. c++17")
	newCmd.Flags().StringVar(&newLibs, "libs", "", "Comma-separated library list, e.g. glfw,glad,glm")
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "", "Output binary name (default: project name)")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Accept defaults without prompting")
	newCmd.Flags().BoolVarP(&newForce, "force", "f", false, "Re-initialize an existing project, overwriting its config")
	rootCmd.AddCommand(newCmd)
}

// checkInitAllowed guards against accidental re-initialization. With
// force set, an existing record is overwritten wholesale; there are no
// merge semantics.
func checkInitAllowed(root string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(project.ConfigPath(root)); err == nil {
		return fmt.Errorf("project %s already exists (use --force to re-initialize)", root)
	}
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	defaults := &settings.Settings{Compiler: settings.DefaultCompiler, Standard: settings.DefaultStandard}
	if dir, err := settings.Dir(); err == nil {
		if s, err := settings.Load(dir); err == nil {
			defaults = s
		}
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else if !newYes {
		name = prompt("Project name", "")
	}
	if name == "" {
		return fmt.Errorf("project name is required")
	}

	compiler := newCompiler
	standard := newStandard
	libsRaw := newLibs
	if !newYes {
		if compiler == "" {
			compiler = prompt("Compiler", defaults.Compiler)
		}
		if standard == "" {
			standard = prompt("C++ standard", defaults.Standard)
		}
		if libsRaw == "" {
			libsRaw = prompt(
				fmt.Sprintf("Libraries (%s)", strings.Join(catalog.IDs(), ", ")),
				strings.Join(defaults.Libs, ","),
			)
		}
	}
	if compiler == "" {
		compiler = defaults.Compiler
	}
	if standard == "" {
		standard = defaults.Standard
	}
	if libsRaw == "" {
		libsRaw = strings.Join(defaults.Libs, ",")
	}
	output := newOutput
	if output == "" {
		output = name
	}

	res := selection.Resolve(selection.Normalize(libsRaw))
	for _, n := range res.Notices {
		ui.Warning("%s", n)
	}

	root := filepath.Join(".", name)
	if err := checkInitAllowed(root, newForce); err != nil {
		return err
	}

	if err := project.Scaffold(root, name, res.Libs); err != nil {
		return err
	}

	cfg := &project.Config{
		Compiler:   compiler,
		Standard:   standard,
		Libs:       res.Libs,
		OutputName: output,
	}
	if err := project.Save(root, cfg); err != nil {
		return err
	}

	// Editor files carry the same command a build would run right now.
	files, err := sources.Collect(root, res.Libs)
	if err != nil {
		return err
	}
	p := plan.Compose(plan.Input{
		Compiler: cfg.Compiler,
		Standard: cfg.Standard,
		Libs:     res.Libs,
		Platform: catalog.Current(runtime.GOOS),
		Sources:  files,
		Output:   cfg.OutputName,
	})
	if err := editor.WriteAll(root, cfg.Compiler, cfg.Standard, p.Command); err != nil {
		return err
	}

	for _, w := range depcheck.Check(root, res.Libs) {
		ui.Warning("%s", w)
	}

	ui.Success("Created project %s", name)
	ui.Info("Next: cd %s && glkit build", name)
	return nil
}
