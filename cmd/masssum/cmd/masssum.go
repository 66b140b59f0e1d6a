package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"massnet.org/masssum/logging"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        `Compute and check SHA-256 digests`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Check()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logging.CPrint(logging.FATAL, "fail on RootCmd.Execute", logging.LogFormat{"err": err})
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogger)
	cobra.OnInitialize(logBasicInfo)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.masssum.json)")
	RootCmd.PersistentFlags().StringVar(&flagLogDir, "log_dir", defaultLogDir, "directory for log files")
	RootCmd.PersistentFlags().StringVar(&flagLogLevel, "log_level", defaultLogLevel, "level of logs (trace, debug, info, warn, error, fatal, panic)")
	RootCmd.PersistentFlags().StringVar(&flagFormat, "format", defaultFormat, "digest format (hex, words)")
	RootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", defaultWorkers, "number of files hashed at once")

	viper.BindPFlag("log_dir", RootCmd.PersistentFlags().Lookup("log_dir"))
	viper.BindPFlag("log_level", RootCmd.PersistentFlags().Lookup("log_level"))
	viper.BindPFlag("format", RootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))

	RootCmd.AddCommand(sumCmd)
	RootCmd.AddCommand(stringCmd)
	RootCmd.AddCommand(verifyCmd)
	RootCmd.AddCommand(doubleCmd)
	RootCmd.AddCommand(hash160Cmd)
	RootCmd.AddCommand(versionCmd)
}
