package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	flag "github.com/spf13/pflag"

	outline "github.com/alnah/go-outline"
	"github.com/alnah/go-outline/internal/assets"
	"github.com/alnah/go-outline/internal/config"
	"github.com/alnah/go-outline/internal/hints"
	"github.com/alnah/go-outline/internal/logging"
)

// runMain dispatches a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[1], args[2:]
	switch command {
	case cmdManifest, cmdHTML, cmdMarkdown:
		ctx, stop := notifyContext(context.Background())
		defer stop()
		return runOutline(ctx, command, rest, env)
	case cmdConfig:
		return runConfig(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "docoutline %s\n", Version)
		return ExitSuccess
	case cmdHelp, "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// runOutline runs the manifest, html and markdown commands.
func runOutline(ctx context.Context, command string, args []string, env *Environment) int {
	flags, positional, err := parseRunFlags(command, args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)
	if flags.workers == 0 {
		flags.workers = envCfg.Workers
	}
	if err := validateWorkers(flags.workers); err != nil {
		return reportError(env, err)
	}

	cfg, err := resolveConfig(flags.common.config, envCfg)
	if err != nil {
		return reportError(env, err)
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return reportError(env, err)
	}

	logger, err := buildLogger(cfg, env)
	if err != nil {
		return reportError(env, err)
	}

	gen, err := outline.New(generatorOptions(command, cfg, flags, logger)...)
	if err != nil {
		return reportError(env, err)
	}

	var results []outline.FileResult
	if command == cmdManifest {
		results, err = runManifest(ctx, gen, positional, cfg, flags.workers)
	} else {
		results, err = runFiles(ctx, gen, command, positional, cfg, flags)
	}
	if err != nil {
		return reportError(env, err)
	}

	printResults(results, flags.common.quiet, flags.common.verbose, env)
	if err := firstError(results); err != nil {
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runManifest outlines the pages listed in a site's build manifest.
// The site folder comes from the argument or output.defaultDir.
func runManifest(ctx context.Context, gen *outline.Generator, args []string, cfg *config.Config, workers int) ([]outline.FileResult, error) {
	folder := cfg.Output.DefaultDir
	if len(args) > 0 {
		folder = args[0]
	}
	if folder == "" {
		return nil, fmt.Errorf("%w: pass the site output folder", ErrNoInput)
	}

	results, err := gen.ProcessManifest(ctx, folder, workers)
	if errors.Is(err, outline.ErrManifestRead) {
		return nil, fmt.Errorf("%w%s", err, hints.ForManifestNotFound(folder))
	}
	return results, err
}

// runFiles outlines HTML pages or renders Markdown sources.
func runFiles(ctx context.Context, gen *outline.Generator, command string, args []string, cfg *config.Config, flags *runFlags) ([]outline.FileResult, error) {
	kind := outline.KindHTML
	if command == cmdMarkdown {
		kind = outline.KindMarkdown
	}

	inputPath, err := resolveInputPath(args, cfg)
	if err != nil {
		return nil, err
	}
	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	jobs, err := discoverJobs(inputPath, outputDir, kind)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: no %s files found in %s", ErrNoInput, kind, inputPath)
	}

	return gen.ProcessBatch(ctx, jobs, flags.workers), nil
}

// resolveInputPath returns the input argument or input.defaultDir.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveConfig loads the config named by the flag or DOCOUTLINE_CONFIG,
// then applies environment overrides. Without a name the defaults apply.
func resolveConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over the config.
func mergeFlags(flags *runFlags, cfg *config.Config) {
	if flags.sanitizeSet {
		cfg.Outline.Sanitize = flags.outline.sanitize
	}
	if flags.outline.disableKey != "" {
		cfg.Outline.DisableKey = flags.outline.disableKey
	}
	if flags.assets.template != "" {
		cfg.Markdown.Template = flags.assets.template
	}
	if flags.assets.noHighlight {
		cfg.Markdown.Highlight = false
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if flags.common.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.common.quiet {
		cfg.Log.Level = "error"
	}
}

// buildLogger creates the stderr logger from the log config.
func buildLogger(cfg *config.Config, env *Environment) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	format, err := logging.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	return logging.New(env.Stderr, level, format), nil
}

// generatorOptions maps the config to generator options.
// HTML pages get a stylesheet only through --style; Markdown pages fall
// back to markdown.style.
func generatorOptions(command string, cfg *config.Config, flags *runFlags, logger *slog.Logger) []outline.Option {
	opts := []outline.Option{
		outline.WithSelectors(outline.Selectors{
			Article:    cfg.Selectors.Article,
			Title:      cfg.Selectors.Title,
			Content:    cfg.Selectors.Content,
			Outline:    cfg.Selectors.Outline,
			Scrollable: cfg.Selectors.Scrollable,
		}),
		outline.WithDisableKey(cfg.Outline.DisableKey),
		outline.WithSanitizer(cfg.Outline.Sanitize),
		outline.WithHighlighting(cfg.Markdown.Highlight),
		outline.WithLogger(logger),
	}

	if flags.assets.assetPath != "" {
		opts = append(opts, outline.WithAssetPath(flags.assets.assetPath))
	}
	if cfg.Markdown.Template != "" {
		opts = append(opts, outline.WithTemplate(cfg.Markdown.Template))
	}

	style := flags.assets.style
	if style == "" && command == cmdMarkdown {
		style = cfg.Markdown.Style
	}
	if style != "" {
		opts = append(opts, outline.WithStyle(style))
	}

	return opts
}

// reportError prints err with a hint when one applies and returns its
// exit code.
func reportError(env *Environment, err error) int {
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
// Errors already carrying a hint return "".
func hintFor(err error) string {
	if strings.Contains(err.Error(), "hint:") {
		return ""
	}
	switch {
	case errors.Is(err, outline.ErrMissingContainer):
		return hints.ForMissingContainer()
	case errors.Is(err, outline.ErrMissingHeading):
		return hints.ForMissingHeading()
	case errors.Is(err, outline.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, outline.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
