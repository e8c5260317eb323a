// Package magick drives the ImageMagick command-line suite (identify, mogrify,
// convert, composite) by building command lines, executing them through a shell
// with a timeout, and classifying the outcome.
//
// The package never decodes or manipulates pixel data itself. Every operation
// is rendered into a command string and handed to an external binary; results
// come back as captured text and an exit status.
//
// # Building Commands
//
// A Command accumulates tokens for one tool invocation:
//
//	cmd := magick.NewCommand("mogrify")
//	err := cmd.AddOption("resize", "100x100")
//	err = cmd.AddOption("auto_orient") // normalized to -auto-orient
//	cmd.Push("photo.jpg")
//	line := cmd.Render() // "mogrify -resize \"100x100\" -auto-orient photo.jpg"
//
// Option names are validated against a fixed whitelist of recognized
// ImageMagick options. Unknown names are a hard error, never silently dropped,
// so typos surface at build time rather than as tool failures.
//
// # Executing Commands
//
// A Runner executes rendered commands and classifies results:
//
//	runner := magick.NewRunner(magick.Config{Timeout: 30 * time.Second})
//	out, err := runner.Run(ctx, cmd)
//
// A zero exit status returns the captured output verbatim. A non-zero exit is
// classified by inspecting the combined stdout/stderr text: ImageMagick's
// "no decode delegate" and "did not return an image" diagnostics become an
// *InvalidImageError (the input is not a decodable image); anything else,
// including a timeout, becomes a *CommandError carrying the rendered command,
// exit status, and full output for manual reproduction.
//
// # Image Handles
//
// Image wraps a file on disk and provides the higher-level operations that
// need bookkeeping beyond a single command: identify/EXIF lookups, mogrify
// with validated options, and format conversion with the associated file
// rename. Images created from in-memory blobs own a temporary file that is
// released on Destroy and on any failed operation.
package magick
