package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var exifCmd = &cobra.Command{
	Use:   "exif <image> <field>",
	Short: "Read one EXIF field from an image",
	Long: `Reads a single EXIF field, e.g.

  magick-cli exif photo.jpg DateTimeOriginal
  magick-cli exif photo.jpg Orientation

Prints an empty line when the image carries no such tag.`,
	Args: cobra.ExactArgs(2),
	RunE: runEXIF,
}

func init() {
	rootCmd.AddCommand(exifCmd)
}

func runEXIF(cmd *cobra.Command, args []string) error {
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

	value, err := im.EXIF(context.Background(), args[1])
	if err != nil {
		printError("reading EXIF field", err)
		return err
	}
	fmt.Println(value)
	return nil
}
