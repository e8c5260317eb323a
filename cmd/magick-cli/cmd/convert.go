package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var convertInPlace bool

var convertCmd = &cobra.Command{
	Use:   "convert <source> [dest]",
	Short: "Convert an image to a new file or format",
	Long: `Converts an image. With a destination argument the source is left
untouched and the destination extension selects the output format:

  magick-cli convert photo.jpg photo.png

With --format the image is converted in place: the file is renamed to the
new extension and the old file is removed.

  magick-cli convert --format png photo.jpg`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

var convertFormat string

func init() {
	convertCmd.Flags().StringVar(&convertFormat, "format", "", "Convert in place to this format (extension without a dot)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	runner, err := newRunner()
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	ctx := context.Background()

	if convertFormat != "" {
		if len(args) != 1 {
			return fmt.Errorf("--format converts in place and takes no destination")
		}
		im, err := magick.OpenImage(args[0], runner)
		if err != nil {
			printError("opening image", err)
			return err
		}
		if err := im.SetFormat(ctx, convertFormat); err != nil {
			printError("converting image", err)
			return err
		}
		fmt.Println(im.Path())
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("destination required (or use --format for in-place conversion)")
	}
	if _, err := runner.Run(ctx, magick.NewCommand("convert", args[0], args[1])); err != nil {
		printError("converting image", err)
		return err
	}
	fmt.Println(args[1])
	return nil
}
