package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"massnet.org/masssum/logging"
)

const (
	defaultLogDir      = "masssum-logs"
	defaultLogFilename = "masssum"
	defaultLogLevel    = "info"
	defaultFormat      = formatHex
	defaultWorkers     = 4

	formatHex   = "hex"
	formatWords = "words"
)

var (
	flagLogDir      string
	flagLogLevel    string
	flagFormat      string
	flagWorkers     int
	cfgFile         string
	usingConfigFile bool
	config          = new(Config)
)

var errUnknownFormat = errors.New("unknown digest format")

type Config struct {
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`
	Format   string `json:"format"`
	Workers  int    `json:"workers"`
}

// Check validates values that came from flags, environment or file.
func (c *Config) Check() error {
	if c.Format != formatHex && c.Format != formatWords {
		return errors.Wrapf(errUnknownFormat, "%q", c.Format)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".masssum")
	}

	viper.SetEnvPrefix("masssum")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
	}

	loadConfig(config)
}

// loadConfig copies viper values into c, falling back to defaults.
func loadConfig(c *Config) {
	c.LogDir = viper.GetString("log_dir")
	if c.LogDir == "" {
		c.LogDir = defaultLogDir
	}
	c.LogLevel = viper.GetString("log_level")
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.Format = viper.GetString("format")
	if c.Format == "" {
		c.Format = defaultFormat
	}
	c.Workers = viper.GetInt("workers")
	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
}

// initLogger initializes logging module by config.
func initLogger() {
	logging.Init(config.LogDir, defaultLogFilename, config.LogLevel, 1, false)
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	logging.VPrint(logging.INFO, "using config file", logging.LogFormat{
		"file":    usingConfigFile,
		"format":  config.Format,
		"workers": config.Workers,
	})
}
