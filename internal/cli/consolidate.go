package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/modforge/sdkgen/internal/consolidate"
)

var consolidateQuietFlag bool

// consolidateCmd represents the consolidate command
var consolidateCmd = &cobra.Command{
	Use:   "consolidate <input-dir> <output-dir>",
	Short: "Merge converted headers into dependency-ordered grouped files",
	Long: `Consolidate collects every declaration from the converted headers,
builds the dependency graph, and writes one file per subject-matter category
plus fixed Enums/Structs files and an umbrella include listing the category
files. Declarations are emitted so that dependencies precede dependents;
cyclic groups are flushed in a stable order.

Examples:
  sdkgen consolidate ./converted ./sdk
`,
	Args: cobra.ExactArgs(2),
	RunE: runConsolidate,
}

func init() {
	rootCmd.AddCommand(consolidateCmd)
	consolidateCmd.Flags().BoolVarP(&consolidateQuietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputDir, outputDir := args[0], args[1]
	if _, err := os.Stat(inputDir); err != nil {
		return fmt.Errorf("input directory not accessible: %w", err)
	}

	consolidator := consolidate.New(cfg, inputDir, outputDir,
		consolidate.WithProgress(NewCLIProgressReporter(consolidateQuietFlag)))

	stats, err := consolidator.Run(cmd.Context())
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("Consolidated %d declaration(s) from %d file(s) into %d output file(s) in %v",
			stats.Declarations, stats.FilesProcessed, stats.GroupsWritten, stats.Duration)
	}

	return nil
}
