package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docoutline <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  manifest   Outline the article pages listed in a site's manifest.json")
	fmt.Fprintln(w, "  html       Outline HTML pages")
	fmt.Fprintln(w, "  markdown   Render Markdown files to outlined HTML pages")
	fmt.Fprintln(w, "  config     Show or write the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docoutline help <command>' for details on a specific command.")
}

// printCommandUsage prints usage for one command.
func printCommandUsage(w io.Writer, command string) {
	switch command {
	case cmdManifest:
		fmt.Fprintln(w, "Usage: docoutline manifest <site-folder> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Outline every Conceptual page listed in <site-folder>/manifest.json,")
		fmt.Fprintln(w, "rewriting the pages in place. Pages whose metadata sets the disable")
		fmt.Fprintln(w, "key are left untouched.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  site-folder    Site output folder (optional if config has output.defaultDir)")
		printRunFlags(w, false)
	case cmdHTML:
		fmt.Fprintln(w, "Usage: docoutline html <input> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Outline HTML pages, in place or into an output directory.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  input    HTML file or directory (optional if config has input.defaultDir)")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
		printRunFlags(w, false)
	case cmdMarkdown:
		fmt.Fprintln(w, "Usage: docoutline markdown <input> [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Render Markdown files to HTML pages with an outline. Each page is")
		fmt.Fprintln(w, "written next to its source unless --output is given.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Arguments:")
		fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
		printRunFlags(w, true)
	case cmdConfig:
		fmt.Fprintln(w, "Usage: docoutline config [flags]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the effective configuration as YAML.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
		fmt.Fprintln(w, "      --init <path>         Write the configuration to a file")
		fmt.Fprintln(w, "      --force               Overwrite an existing file")
	case cmdVersion:
		fmt.Fprintln(w, "Usage: docoutline version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(w, "Usage: docoutline help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	}
}

// printRunFlags prints the flags shared by the outline commands.
func printRunFlags(w io.Writer, markdown bool) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Outline:")
	fmt.Fprintln(w, "      --sanitize            Keep only inline formatting in outline items")
	fmt.Fprintln(w, "      --disable-key <s>     Metadata key that opts a page out")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --style <s>           CSS style name, file path or content")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	if markdown {
		fmt.Fprintln(w, "      --template <s>        Page template name or file path")
		fmt.Fprintln(w, "      --no-highlight        Disable syntax highlighting")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  DOCOUTLINE_CONFIG, DOCOUTLINE_STYLE, DOCOUTLINE_INPUT_DIR, DOCOUTLINE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  DOCOUTLINE_LOG_LEVEL, DOCOUTLINE_LOG_FORMAT, DOCOUTLINE_WORKERS")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdManifest, cmdHTML, cmdMarkdown, cmdConfig, cmdVersion, cmdHelp:
		printCommandUsage(env.Stdout, args[0])
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
