// Package settings resolves the configuration shared by all the armin commands
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Manu343726/armin/pkg/hw/arm/instructions"
	"github.com/Manu343726/armin/pkg/hw/arm/listing"
	"github.com/Manu343726/armin/pkg/hw/arm/program"
	"github.com/Manu343726/armin/pkg/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys. Nested keys map to ARMIN_LOG_LEVEL style environment variables
const (
	Key_CPU      = "cpu"
	Key_Policy   = "policy"
	Key_Endian   = "endian"
	Key_Format   = "format"
	Key_LogLevel = "log.level"
	Key_LogFile  = "log.file"
)

var colorError = color.New(color.FgRed, color.Bold)

// Prints a command error to stderr
func PrintError(err error) {
	colorError.Fprintf(os.Stderr, "error: %v\n", err)
}

// Returns the logger configured by log.level and log.file, writing text records to stderr
func Logger() (*slog.Logger, io.Closer, error) {
	return logging.New(os.Stderr, logging.Settings{
		Level: viper.GetString(Key_LogLevel),
		File:  viper.GetString(Key_LogFile),
	})
}

// Returns the value of a setting that a listing can also request.
// An explicit command line flag wins over the listing, and the listing wins over the
// environment and the config file
func resolve(cmd *cobra.Command, key string, fromListing func() (string, bool)) string {
	if flag := cmd.Flags().Lookup(key); flag != nil && flag.Changed {
		return flag.Value.String()
	}

	if value, ok := fromListing(); ok {
		return value
	}

	return viper.GetString(key)
}

// Returns the encoder for the listing, honoring the cpu and policy settings
func Encoder(cmd *cobra.Command, l *listing.Listing) (instructions.Encoder, error) {
	cpuName := resolve(cmd, Key_CPU, func() (string, bool) {
		if l != nil && l.CPU != nil {
			return l.CPU.String(), true
		}
		return "", false
	})

	policyName := resolve(cmd, Key_Policy, func() (string, bool) {
		if l != nil && l.Policy != nil {
			return l.Policy.String(), true
		}
		return "", false
	})

	cpu, err := instructions.ParseCPU(cpuName)
	if err != nil {
		return instructions.Encoder{}, err
	}

	policy, err := instructions.ParsePolicy(policyName)
	if err != nil {
		return instructions.Encoder{}, err
	}

	return instructions.NewEncoder(policy, cpu), nil
}

// Loads a listing and encodes it with the configured encoder
func Assemble(cmd *cobra.Command, path string, logger *slog.Logger) (*listing.Listing, []instructions.Word, error) {
	l, err := listing.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	encoder, err := Encoder(cmd, l)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("loaded listing", "path", path, "instructions", len(l.Instructions), "origin", fmt.Sprintf("0x%08x", l.Origin))

	words, err := program.Assemble(encoder, l.Instructions, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", path, err)
	}

	return l, words, nil
}
