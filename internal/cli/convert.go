package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/modforge/sdkgen/internal/convert"
)

var (
	quietFlag bool
	watchFlag bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input-dir> <output-dir>",
	Short: "Convert dump headers into portable headers, file by file",
	Long: `Convert rewrites every dump header in the input directory:
  - engine field types are mapped to portable equivalents
  - variable name suffixes (GUIDs, numeric disambiguators) are stripped
  - struct references are resolved from sibling definition files
  - each output file is wrapped in the include preamble and namespace

Examples:
  # Convert a dump directory
  sdkgen convert ./dump ./converted

  # Convert and keep watching the dump directory for changes
  sdkgen convert ./dump ./converted --watch
`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	convertCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch the input directory and reconvert on changes")
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputDir, outputDir := args[0], args[1]
	if _, err := os.Stat(inputDir); err != nil {
		return fmt.Errorf("input directory not accessible: %w", err)
	}

	service, err := convert.NewService(cfg, inputDir, outputDir,
		convert.WithProgress(NewCLIProgressReporter(quietFlag)))
	if err != nil {
		return err
	}
	defer service.Close()

	stats, err := service.Run(ctx)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("Converted %d file(s), skipped %d, in %v",
			stats.FilesConverted, stats.FilesSkipped, stats.Duration)
	}

	if !watchFlag {
		return nil
	}

	watcher, err := convert.NewWatcher(service)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Stop()

	watcher.Start(ctx)
	log.Printf("Watching %s for changes (Ctrl+C to stop)...", inputDir)
	<-ctx.Done()

	return nil
}
