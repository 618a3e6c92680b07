package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/paint-preview-mcp/internal/server"
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
			fmt.Printf("paint-preview-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("paint-preview-mcp - MCP server that previews a wall repainted in a new color")
			fmt.Println()
			fmt.Println("Usage: paint-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug           Enable debug logging\n", server.EnvLogLevel)
			fmt.Printf("  %s=N       Per-channel tolerance when a call omits one (default 30)\n", server.EnvDefaultTolerance)
			fmt.Printf("  %s=N           Downscale larger photos before painting, 0 disables (default %d)\n", server.EnvMaxDimension, server.DefaultMaxDimension)
			fmt.Printf("  %s=N            JPEG output quality 1-100 (default 85)\n", server.EnvJPEGQuality)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.ConfigFromEnv(os.Getenv)
	if cfg.Debug() {
		log.Printf("Paint Preview MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Config: tolerance=%d max_dimension=%d jpeg_quality=%d", cfg.DefaultTolerance, cfg.MaxDimension, cfg.JPEGQuality)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
