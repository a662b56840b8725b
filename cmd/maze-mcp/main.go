package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/maze-tools-mcp/internal/config"
	"github.com/ironsheep/maze-tools-mcp/internal/maze"
	"github.com/ironsheep/maze-tools-mcp/internal/server"
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
			fmt.Printf("maze-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if len(os.Args) > 1 && os.Args[1] == "solve" {
		os.Exit(runSolve(srv, os.Args[2:]))
	}

	if cfg.Debug() {
		log.Printf("Maze MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// runSolve renders a maze image to a file and returns the process exit code:
// 0 solved, 1 usage or I/O error, 2 no solution.
func runSolve(srv *server.Server, args []string) int {
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, "Usage: maze-tools-mcp solve <input> <output> [gradient]")
		return 1
	}
	gradient := ""
	if len(args) == 3 {
		gradient = args[2]
	}

	sol, err := srv.RenderFile(args[0], args[1], gradient)
	if errors.Is(err, maze.ErrUnsolvable) {
		fmt.Fprintf(os.Stderr, "%s: no solution after %d steps\n", args[0], sol.Steps)
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Solved %s: path length %d, %d steps, written to %s\n",
		args[0], len(sol.Path), sol.Steps, args[1])
	return 0
}

func printHelp() {
	fmt.Println("maze-tools-mcp - MCP server for solving image mazes")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  maze-tools-mcp [options]                          Run the MCP server on stdin/stdout")
	fmt.Println("  maze-tools-mcp solve <input> <output> [gradient]  Solve a maze image and save the rendered route")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  MAZE_MCP_LOG_LEVEL=debug       Enable debug logging")
	fmt.Println("  MAZE_MCP_CONFIG=<file.yaml>    Load settings and custom gradients from YAML")
	fmt.Println("  MAZE_MCP_GRADIENT=<name>       Default gradient preset (blue-cyan)")
	fmt.Println("  MAZE_MCP_PREVIEW_SCALE=<n>     Default preview upscale factor (1)")
	fmt.Println()
	fmt.Println("Variables are also read from a .env file in the working directory.")
	fmt.Println()
	fmt.Println("Maze images use black walls, white paths, one red start and one green end pixel.")
	fmt.Println("The server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
