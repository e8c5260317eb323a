package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var mogrifyCmd = &cobra.Command{
	Use:   "mogrify <image> <option[=value]>...",
	Short: "Apply whitelisted mogrify options to an image in place",
	Long: `Applies a sequence of mogrify options in order. Each argument is an
option name, optionally with a value after '=':

  magick-cli mogrify photo.jpg strip auto-orient quality=85
  magick-cli mogrify photo.jpg "resize=200x200"

Option names are validated against the recognized ImageMagick option set;
an unknown name fails the whole call without running anything. Format
changes are rejected here, use 'convert --format' instead.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMogrify,
}

func init() {
	rootCmd.AddCommand(mogrifyCmd)
}

func runMogrify(cmd *cobra.Command, args []string) error {
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
		for _, spec := range args[1:] {
			name, value, hasValue := strings.Cut(spec, "=")
			if hasValue {
				t.Option(name, value)
			} else {
				t.Option(name)
			}
		}
	})
	if err != nil {
		printError("applying options", err)
		return err
	}
	fmt.Println(im.Path())
	return nil
}
