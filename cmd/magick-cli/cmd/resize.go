package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <image> <geometry>",
	Short: "Resize an image in place",
	Long: `Resizes an image in place using an ImageMagick geometry string:

  magick-cli resize photo.jpg 200x200
  magick-cli resize photo.jpg 50%
  magick-cli resize photo.jpg 640x480!`,
	Args: cobra.ExactArgs(2),
	RunE: runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
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

	err = im.Mogrify(context.Background(), func(t *magick.Tool) {
		t.Option("resize", args[1])
	})
	if err != nil {
		printError("resizing image", err)
		return err
	}
	fmt.Println(im.Path())
	return nil
}
