package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/config"
	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var (
	cfgFile    string
	cliPrefix  string
	timeoutSec int
)

var rootCmd = &cobra.Command{
	Use:   "magick-cli",
	Short: "Command-line front end for the ImageMagick tool suite",
	Long: `magick-cli drives the ImageMagick binaries (identify, mogrify,
convert, composite) through a validated command builder. It never decodes
pixel data itself; every operation shells out to the installed tools.

Commands:
  identify   - Print identify output or parsed metadata for an image
  exif       - Read one EXIF field from an image
  convert    - Convert an image to a new file
  resize     - Resize an image in place
  mogrify    - Apply arbitrary whitelisted options in place
  composite  - Layer one image onto another`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&cliPrefix, "prefix", "", "Prefix prepended to every command (e.g. 'magick')")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", -1, "Per-command timeout in seconds, 0 disables")
}

// newRunner builds a Runner from the config file, environment, and flags.
// Flags win over the environment, which wins over the file.
func newRunner() (*magick.Runner, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if cliPrefix != "" {
		cfg.CLIPrefix = cliPrefix
	}
	if timeoutSec >= 0 {
		cfg.TimeoutSeconds = timeoutSec
	}
	return magick.NewRunner(magick.Config{
		Prefix:  cfg.CLIPrefix,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
