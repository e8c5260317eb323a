package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var identifyJSON bool

var identifyCmd = &cobra.Command{
	Use:   "identify <image>",
	Short: "Print identify output or parsed metadata for an image",
	Long: `Runs ImageMagick identify on the given image.

By default the raw identify output is printed verbatim. With --json the
output is parsed into format, dimensions, and file size and printed as a
JSON object.`,
	Args: cobra.ExactArgs(1),
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().BoolVar(&identifyJSON, "json", false, "Print parsed metadata as JSON")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	runner, err := newRunner()
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	im, err := magick.OpenImage(args[0], runner)
	if err != nil {
		printError("opening image", err)
		return err
	}

	ctx := context.Background()
	if identifyJSON {
		info, err := im.Info(ctx)
		if err != nil {
			printError("reading image metadata", err)
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	out, err := im.Identify(ctx)
	if err != nil {
		printError("running identify", err)
		return err
	}
	fmt.Print(out)
	return nil
}
