package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modforge/sdkgen/internal/consolidate"
	"github.com/modforge/sdkgen/internal/convert"
)

var generateQuietFlag bool

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <input-dir> <output-dir>",
	Short: "Run the full pipeline: convert, then consolidate",
	Long: `Generate converts the dump directory into a staging area, then
consolidates the staged headers into the final dependency-ordered SDK.

Examples:
  sdkgen generate ./dump ./sdk
`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().BoolVarP(&generateQuietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputDir, outputDir := args[0], args[1]
	if _, err := os.Stat(inputDir); err != nil {
		return fmt.Errorf("input directory not accessible: %w", err)
	}

	stagingDir, err := os.MkdirTemp("", "sdkgen-staging-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	reporter := NewCLIProgressReporter(generateQuietFlag)

	service, err := convert.NewService(cfg, inputDir, stagingDir, convert.WithProgress(reporter))
	if err != nil {
		return err
	}
	defer service.Close()

	if _, err := service.Run(cmd.Context()); err != nil {
		return fmt.Errorf("conversion phase failed: %w", err)
	}

	consolidator := consolidate.New(cfg, stagingDir, outputDir, consolidate.WithProgress(reporter))
	if _, err := consolidator.Run(cmd.Context()); err != nil {
		return fmt.Errorf("consolidation phase failed: %w", err)
	}

	return nil
}
