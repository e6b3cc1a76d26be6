package internal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"glkit/internal/catalog"
	"glkit/internal/depcheck"
	"glkit/internal/plan"
	"glkit/internal/project"
	"glkit/internal/selection"
	"glkit/internal/sources"
	"glkit/internal/ui"
)

// composePlan resolves a project's saved selection against the live
// filesystem and composes the build invocation. Resolution notices and
// missing-artifact warnings are printed but never abort: the native
// compiler is the final authority on whether the build can succeed.
func composePlan(root string, cfg *project.Config) (plan.Plan, error) {
	res := selection.Resolve(selection.NormalizeList(cfg.Libs))
	for _, n := range res.Notices {
		ui.Warning("%s", n)
	}
	for _, w := range depcheck.Check(root, res.Libs) {
		ui.Warning("%s", w)
	}

	files, err := sources.Collect(root, res.Libs)
	if err != nil {
		return plan.Plan{}, err
	}
	if len(files) == 0 {
		return plan.Plan{}, fmt.Errorf("no source files found under %s/", sources.SrcDir)
	}

	return plan.Compose(plan.Input{
		Compiler: cfg.Compiler,
		Standard: cfg.Standard,
		Libs:     res.Libs,
		Platform: catalog.Current(runtime.GOOS),
		Sources:  files,
		Output:   cfg.OutputName,
	}), nil
}

// loadConfig loads the project config of the current directory,
// translating a missing record into an actionable message.
func loadConfig(root string) (*project.Config, error) {
	cfg, err := project.Load(root)
	if errors.Is(err, project.ErrNotFound) {
		return nil, fmt.Errorf("no project config found in %s, run 'glkit new' first", root)
	}
	return cfg, err
}

var stdin = bufio.NewReader(os.Stdin)

// prompt asks for a value on the terminal, returning def when the user
// just presses enter or stdin is not interactive.
func prompt(question, def string) string {
	if !ui.IsTTY() {
		return def
	}
	if def != "" {
		fmt.Printf("%s [%s]: ", question, def)
	} else {
		fmt.Printf("%s: ", question)
	}
	line, err := stdin.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
