package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/armin/cmd/encode"
	"github.com/Manu343726/armin/cmd/settings"
	"github.com/Manu343726/armin/cmd/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "armin",
	Short: "An ARMv4 instruction encoder",
	Long: `Armin encodes symbolic ARM instructions into 32 bit ARMv4 machine words.

This CLI is the entry point for the encoder: it assembles instruction listings into
raw binaries or hex dumps, and documents the bit layout of every instruction class`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		settings.PrintError(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd, encode.EncodeCmd, versionCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.armin.yaml)")
	flags.String(settings.Key_CPU, "generic", "Target core variant: generic, armv3, armv3m, armv4, armv4t")
	flags.String(settings.Key_Policy, "strict", "Operand policy: strict rejects out of range operands, wrap masks them")
	flags.String("log-level", "warn", "Minimum level of the console log: debug, info, warn, error")
	flags.String("log-file", "", "Also write a JSON log to this file")

	cobra.CheckErr(viper.BindPFlag(settings.Key_CPU, flags.Lookup(settings.Key_CPU)))
	cobra.CheckErr(viper.BindPFlag(settings.Key_Policy, flags.Lookup(settings.Key_Policy)))
	cobra.CheckErr(viper.BindPFlag(settings.Key_LogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(settings.Key_LogFile, flags.Lookup("log-file")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".armin" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".armin")
	}

	viper.SetEnvPrefix("armin")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
