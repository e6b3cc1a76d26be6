package internal

import (
	"os"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"glkit/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "glkit",
	Short: "glkit scaffolds and builds C++ OpenGL projects",
	Long: `glkit creates C++ project skeletons wired for a fixed catalog of
graphics libraries (GLFW, glad, GLEW, glm, stb_image, tinyobjloader)
and composes the native build command for them.`,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Linfo)
		}
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}
}
