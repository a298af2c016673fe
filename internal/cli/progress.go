package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/modforge/sdkgen/internal/consolidate"
	"github.com/modforge/sdkgen/internal/convert"
)

// CLIProgressReporter implements progress reporting with progress bars for
// both the conversion and consolidation phases.
type CLIProgressReporter struct {
	quiet          bool
	convertBar     *progressbar.ProgressBar
	consolidateBar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{quiet: quiet}
}

func (c *CLIProgressReporter) OnScanStart(totalFiles int) {
	if c.quiet {
		return
	}
	c.convertBar = newBar(totalFiles, "Converting files")
}

func (c *CLIProgressReporter) OnFileProcessed(fileName string) {
	if c.quiet {
		return
	}
	if c.convertBar != nil {
		c.convertBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnScanComplete(stats *convert.Stats) {
	if c.quiet {
		return
	}
	fmt.Printf("✓ Conversion complete: %d file(s) in %.1fs (%d skipped)\n",
		stats.FilesConverted, stats.Duration.Seconds(), stats.FilesSkipped)
}

func (c *CLIProgressReporter) OnConsolidationStart(totalFiles int) {
	if c.quiet {
		return
	}
	c.consolidateBar = newBar(totalFiles, "Consolidating headers")
}

func (c *CLIProgressReporter) OnConsolidationFileProcessed(fileName string) {
	if c.quiet {
		return
	}
	if c.consolidateBar != nil {
		c.consolidateBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnConsolidationComplete(stats *consolidate.Stats) {
	if c.quiet {
		return
	}
	fmt.Printf("✓ Consolidation complete: %d declaration(s) into %d file(s) in %.1fs\n",
		stats.Declarations, stats.GroupsWritten, stats.Duration.Seconds())
}

func newBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}
