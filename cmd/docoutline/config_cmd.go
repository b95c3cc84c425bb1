package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-outline/internal/fileutil"
)

// ErrConfigExists is returned when --init would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// configFilePermissions keeps config files private to the user.
const configFilePermissions = 0o600

// runConfig prints the effective configuration as YAML, or writes it to
// the file named by --init.
func runConfig(args []string, env *Environment) int {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	cfg, err := resolveConfig(flags.common.config, loadEnvConfig(env.Getenv))
	if err != nil {
		return reportError(env, err)
	}
	if err := cfg.Validate(); err != nil {
		return reportError(env, err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return reportError(env, err)
	}

	if flags.init == "" {
		_, _ = env.Stdout.Write(data)
		return ExitSuccess
	}

	if fileutil.FileExists(flags.init) && !flags.force {
		return reportError(env, fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, flags.init))
	}
	if err := fileutil.WriteFileAtomic(flags.init, data, configFilePermissions); err != nil {
		return reportError(env, fmt.Errorf("writing config: %w", err))
	}

	fmt.Fprintf(env.Stdout, "Wrote %s\n", flags.init)
	return ExitSuccess
}
