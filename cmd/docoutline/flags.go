package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// Command names.
const (
	cmdManifest = "manifest"
	cmdHTML     = "html"
	cmdMarkdown = "markdown"
	cmdConfig   = "config"
	cmdVersion  = "version"
	cmdHelp     = "help"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outlineFlags holds outline generation flags.
type outlineFlags struct {
	sanitize   bool
	disableKey string
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	style       string // name, path or CSS content
	template    string // Markdown page template name or path
	assetPath   string // custom asset directory
	noHighlight bool
}

// runFlags holds all flags of the manifest, html and markdown commands.
type runFlags struct {
	common    commonFlags
	output    string
	workers   int
	logFormat string
	outline   outlineFlags
	assets    assetFlags

	// sanitizeSet records an explicit --sanitize, which overrides the config.
	sanitizeSet bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addOutlineFlags adds outline generation flags to a FlagSet.
func addOutlineFlags(fs *flag.FlagSet, f *outlineFlags) {
	fs.BoolVar(&f.sanitize, "sanitize", false, "keep only inline formatting in outline items")
	fs.StringVar(&f.disableKey, "disable-key", "", "metadata key that opts a page out")
}

// addAssetFlags adds asset-related flags to a FlagSet. Template and
// highlighting only apply to Markdown pages.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags, markdown bool) {
	fs.StringVar(&f.style, "style", "", "CSS style name, file path or content")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	if markdown {
		fs.StringVar(&f.template, "template", "", "page template name or file path")
		fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable syntax highlighting")
	}
}

// newRunFlagSet registers the flags of an outline command.
func newRunFlagSet(command string, f *runFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)

	if command != cmdManifest {
		fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	}
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")

	addCommonFlags(fs, &f.common)
	addOutlineFlags(fs, &f.outline)
	addAssetFlags(fs, &f.assets, command == cmdMarkdown)

	return fs
}

// parseRunFlags parses the flags of an outline command and returns the
// positional args.
func parseRunFlags(command string, args []string, stderr io.Writer) (*runFlags, []string, error) {
	f := &runFlags{}
	fs := newRunFlagSet(command, f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printCommandUsage(stderr, command) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.sanitizeSet = fs.Changed("sanitize")

	return f, fs.Args(), nil
}

// configFlags holds flags of the config command.
type configFlags struct {
	common commonFlags
	init   string
	force  bool
}

// parseConfigFlags parses the config command flags.
func parseConfigFlags(args []string, stderr io.Writer) (*configFlags, error) {
	fs := flag.NewFlagSet(cmdConfig, flag.ContinueOnError)
	f := &configFlags{}

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.init, "init", "", "write the configuration to this file")
	fs.BoolVar(&f.force, "force", false, "overwrite an existing file with --init")

	fs.SetOutput(stderr)
	fs.Usage = func() { printCommandUsage(stderr, cmdConfig) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
