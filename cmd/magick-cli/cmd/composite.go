package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/magick-tools-mcp/internal/magick"
)

var (
	compositeGravity  string
	compositeDissolve string
)

var compositeCmd = &cobra.Command{
	Use:   "composite <overlay> <base> <dest>",
	Short: "Layer one image onto another",
	Long: `Layers an overlay image onto a base image and writes the result to a
new file, leaving both inputs untouched:

  magick-cli composite watermark.png photo.jpg out.jpg --gravity SouthEast
  magick-cli composite overlay.png base.jpg out.jpg --dissolve 50`,
	Args: cobra.ExactArgs(3),
	RunE: runComposite,
}

func init() {
	compositeCmd.Flags().StringVar(&compositeGravity, "gravity", "", "Overlay placement (e.g. SouthEast, Center)")
	compositeCmd.Flags().StringVar(&compositeDissolve, "dissolve", "", "Dissolve percentage for blending (e.g. 50)")
	rootCmd.AddCommand(compositeCmd)
}

func runComposite(cmd *cobra.Command, args []string) error {
	runner, err := newRunner()
	if err != nil {
		printError("loading configuration", err)
		return err
	}

	overlay, err := magick.OpenImage(args[0], runner)
	if err != nil {
		printError("opening overlay image", err)
		return err
	}
	base, err := magick.OpenImage(args[1], runner)
	if err != nil {
		printError("opening base image", err)
		return err
	}

	err = base.Composite(context.Background(), overlay, args[2], func(t *magick.Tool) {
		if compositeGravity != "" {
			t.Option("gravity", compositeGravity)
		}
		if compositeDissolve != "" {
			t.Option("dissolve", compositeDissolve)
		}
	})
	if err != nil {
		printError("compositing images", err)
		return err
	}
	fmt.Println(args[2])
	return nil
}
