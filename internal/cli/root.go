package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modforge/sdkgen/internal/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sdkgen",
	Short: "sdkgen - portable SDK headers from engine object dumps",
	Long: `sdkgen turns a directory of engine object-dump headers into portable,
compilable SDK headers: engine types are mapped to portable equivalents,
identifiers are sanitized, and declarations are emitted in dependency order,
grouped by subject-matter category.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.sdkgen/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.NewFileLoader(cfgFile).Load()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return config.NewLoader(cwd).Load()
}
