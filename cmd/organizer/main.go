package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"organizer-cli/internal/app"
	"organizer-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "organizer",
	Short: "A CLI tool for organizing generated project files",
	Long: `Organizer resolves hierarchical project-structure configuration
(.claude/project.yaml files merged from the project root down to the working
directory) and generates source files in the right place with the right name,
along with their companion test and additional files.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate <file-type> <name>",
	Short: "Generate files for a file type and name",
	Long: `Generate the main file for the given file type and name, plus the
companion test file and any configured additional files. Paths and filenames
come from the resolved configuration's templates. Existing files are never
overwritten; a conflict aborts the run before anything is written.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd, args)
		if err != nil {
			return err
		}

		root, _ := cmd.Flags().GetString("root")
		settingsPath, _ := cmd.Flags().GetString("settings")
		return app.New(settingsPath).Generate(root, request)
	},
}

// buildRequestFromFlags assembles a GenerationRequest from the generate
// command's arguments and flags.
func buildRequestFromFlags(cmd *cobra.Command, args []string) (*models.GenerationRequest, error) {
	request := models.NewGenerationRequest(args[0], args[1])

	request.DryRun, _ = cmd.Flags().GetBool("dry-run")
	if appName, _ := cmd.Flags().GetString("app"); appName != "" {
		request.Vars["app"] = appName
	}
	pairs, _ := cmd.Flags().GetStringSlice("var")
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", pair)
		}
		request.Vars[key] = value
	}
	return request, nil
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate the configuration chain for a directory",
	Long: `Validate every configuration file on the chain for the given
directory (default ".") plus the merged result. Prints one line per
diagnostic and exits non-zero when any error-level diagnostic exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		settingsPath, _ := cmd.Flags().GetString("settings")
		return app.New(settingsPath).Validate(root)
	},
}

var showCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the effective configuration and its sources",
	Long: `Print the resolution order, the merged effective configuration and,
per top-level key, the configuration file that won priority.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		settingsPath, _ := cmd.Flags().GetString("settings")
		return app.New(settingsPath).Show(root)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a project from a catalog template",
	Long: `Write a .claude/project.yaml configuration from a built-in template
(spring-boot, django, react). Values like base_package can be customized
with --set key=value. Refuses to overwrite an existing configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, _ := cmd.Flags().GetString("template")
		if templateID == "" {
			return fmt.Errorf("--template is required")
		}

		values := make(map[string]string)
		pairs, _ := cmd.Flags().GetStringSlice("set")
		for _, pair := range pairs {
			key, value, found := strings.Cut(pair, "=")
			if !found {
				return fmt.Errorf("invalid --set %q: expected key=value", pair)
			}
			values[key] = value
		}

		root, _ := cmd.Flags().GetString("root")
		settingsPath, _ := cmd.Flags().GetString("settings")
		return app.New(settingsPath).InitProject(root, templateID, values)
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in catalog templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsPath, _ := cmd.Flags().GetString("settings")
		return app.New(settingsPath).ListTemplates()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("organizer version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("settings", "", "tool settings file (default ~/.config/organizer/config.yaml)")

	generateCmd.Flags().StringP("root", "r", ".", "project directory to resolve configuration from")
	generateCmd.Flags().String("app", "", "value for the {app} template variable")
	generateCmd.Flags().StringSlice("var", []string{}, "extra template variables as key=value")
	generateCmd.Flags().BoolP("dry-run", "n", false, "show what would be generated without writing files")

	initCmd.Flags().StringP("root", "r", ".", "directory to initialize")
	initCmd.Flags().StringP("template", "t", "", "catalog template to initialize from")
	initCmd.Flags().StringSlice("set", []string{}, "template values to customize as key=value")
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
