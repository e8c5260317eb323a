package magick

import "strings"

// recognizedOptions is the fixed whitelist of option names the builder accepts.
// It mirrors the option vocabulary of ImageMagick's mogrify/convert tools and
// is built once at init; it is never mutated at runtime.
//
// "format" is deliberately absent: format changes require file-rename
// bookkeeping that a single command cannot perform, so they are only reachable
// through Image.SetFormat.
var recognizedOptions = newOptionSet(
	"adaptive-blur", "adaptive-resize", "adaptive-sharpen", "adjoin", "affine",
	"alpha", "annotate", "antialias", "append", "attenuate", "authenticate",
	"auto-gamma", "auto-level", "auto-orient", "background", "bench", "bias",
	"black-point-compensation", "black-threshold", "blue-primary", "blue-shift",
	"blur", "border", "bordercolor", "brightness-contrast", "caption", "cdl",
	"channel", "charcoal", "chop", "clamp", "clip", "clip-mask", "clip-path",
	"clone", "clut", "coalesce", "colorize", "colormap", "color-matrix",
	"colors", "colorspace", "combine", "comment", "compose", "composite",
	"compress", "contrast", "contrast-stretch", "convolve", "crop", "cycle",
	"decipher", "deconstruct", "define", "delay", "delete", "density", "depth",
	"descend", "deskew", "despeckle", "direction", "displace", "display",
	"dispose", "dissimilarity-threshold", "dissolve", "distort", "dither",
	"draw", "duplicate", "edge", "emboss", "encipher", "encoding", "endian",
	"enhance", "equalize", "evaluate", "evaluate-sequence", "extent", "extract",
	"family", "fft", "fill", "filter", "flatten", "flip", "floodfill", "flop",
	"font", "foreground", "frame", "function", "fuzz", "fx", "gamma",
	"gaussian-blur", "geometry", "gravity", "green-primary", "hald-clut",
	"identify", "ift", "implode", "insert", "intent", "interlace",
	"interline-spacing", "interpolate", "interword-spacing", "kerning", "label",
	"lat", "layers", "level", "level-colors", "limit", "linear-stretch",
	"linewidth", "liquid-rescale", "list", "log", "loop", "lowlight-color",
	"magnify", "map", "mask", "mattecolor", "median", "mode", "modulate",
	"monitor", "monochrome", "morph", "morphology", "mosaic", "motion-blur",
	"name", "negate", "noise", "normalize", "opaque", "ordered-dither",
	"orient", "page", "paint", "path", "pause", "perceptible", "ping",
	"pointsize", "polaroid", "poly", "posterize", "precision", "preview",
	"print", "process", "profile", "quality", "quantize", "radial-blur",
	"raise", "random-threshold", "red-primary", "regard-warnings", "region",
	"remap", "render", "repage", "resample", "resize", "respect-parentheses",
	"reverse", "roll", "rotate", "sample", "sampling-factor", "scale", "scene",
	"screen", "seed", "segment", "selective-blur", "separate", "sepia-tone",
	"set", "shade", "shadow", "sharpen", "shave", "shear", "sigmoidal-contrast",
	"size", "sketch", "smush", "solarize", "sparse-color", "splice", "spread",
	"statistic", "stegano", "stereo", "stretch", "strip", "stroke",
	"strokewidth", "style", "swap", "swirl", "synchronize", "taint", "texture",
	"threshold", "thumbnail", "tile", "tile-offset", "tint", "transform",
	"transparent", "transparent-color", "transpose", "transverse", "treedepth",
	"trim", "type", "undercolor", "unique-colors", "units", "unsharp",
	"verbose", "version", "view", "vignette", "virtual-pixel", "wave", "weight",
	"white-point", "white-threshold", "write",
)

type optionSet map[string]struct{}

func newOptionSet(names ...string) optionSet {
	s := make(optionSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s optionSet) contains(name string) bool {
	_, ok := s[name]
	return ok
}

// normalizeOptionName maps a caller-supplied option name onto the whitelist's
// spelling: lowercased, with underscores and spaces replaced by hyphens.
// "auto_orient", "Auto Orient", and "auto-orient" all normalize identically.
func normalizeOptionName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, " ", "-")
	return name
}

// RecognizedOption reports whether name (after normalization) is in the
// builder's option whitelist.
func RecognizedOption(name string) bool {
	return recognizedOptions.contains(normalizeOptionName(name))
}
