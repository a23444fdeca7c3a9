package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from Markdown content")
	fmt.Fprintln(w, "  serve      Build, then serve the site locally")
	fmt.Fprintln(w, "  check      Verify internal links in the generated site")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the site from Markdown content.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>      Config file (default: mdsite.yaml if present)")
	fmt.Fprintln(w, "      --content <dir>      Markdown content directory (default: content)")
	fmt.Fprintln(w, "      --static <dir>       Static asset directory (default: static)")
	fmt.Fprintln(w, "  -o, --output <dir>       Output directory (default: public)")
	fmt.Fprintln(w, "  -t, --template <path>    Page template (default: embedded)")
	fmt.Fprintln(w, "  -b, --base-path <path>   Prefix for root-relative URLs (default: /)")
	fmt.Fprintln(w, "      --highlight <style>  Chroma style for code blocks (default: off)")
	fmt.Fprintln(w, "  -w, --workers <n>        Parallel page workers (0 = auto)")
	fmt.Fprintln(w, "      --no-clean           Keep existing output dir contents")
	fmt.Fprintln(w, "  -v, --verbose            Per-page progress output")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, then serve it over HTTP. The base path is")
	fmt.Fprintln(w, "forced to / so local links resolve.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <addr>        Listen address (default: :8888)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build flags also apply; see 'mdsite help build'.")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verify that root-relative links and image sources in the")
	fmt.Fprintln(w, "generated site resolve to files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>      Config file (default: mdsite.yaml if present)")
	fmt.Fprintln(w, "  -o, --output <dir>       Site directory to check (default: from config)")
}

// runHelp prints help for a specific command, or general usage.
func runHelp(args []string, w io.Writer) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(w)
	case "serve":
		printServeUsage(w)
	case "check":
		printCheckUsage(w)
	default:
		printUsage(w)
	}
}
