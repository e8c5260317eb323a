package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/magick-tools-mcp/internal/config"
	"github.com/ironsheep/magick-tools-mcp/internal/magick"
	"github.com/ironsheep/magick-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("magick-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("magick-tools-mcp - MCP server for ImageMagick command-line tools")
			fmt.Println()
			fmt.Println("Usage: magick-tools-mcp [config-file]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MAGICK_MCP_CLI_PREFIX         Prefix prepended to every command (e.g. 'magick')")
			fmt.Println("  MAGICK_MCP_TIMEOUT_SECONDS    Per-command timeout, 0 disables")
			fmt.Println("  MAGICK_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug {
		log.Printf("Magick MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Config: prefix=%q timeout=%s", cfg.CLIPrefix, cfg.Timeout())
	}

	runner := magick.NewRunner(magick.Config{
		Prefix:  cfg.CLIPrefix,
		Timeout: cfg.Timeout(),
	})

	srv := server.New(runner)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
