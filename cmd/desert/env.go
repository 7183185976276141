package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment variables that mirror global flags,
// e.g. DESERT_LOG_LEVEL for --log-level.
const envPrefix = "DESERT_"

// loadEnv reads an optional .env file, then fills every flag the user did
// not set on the command line from its DESERT_* variable.
// Variables already present in the environment win over the file.
func loadEnv(flags *pflag.FlagSet, envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read %s: %w", envFile, err)
	}

	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		val, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}
		if err := flags.Set(f.Name, val); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", envName(f.Name), err))
		}
	})
	return errors.Join(errs...)
}

// envName maps a flag name to its variable: log-level -> DESERT_LOG_LEVEL.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
