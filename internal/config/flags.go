package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagQuestions = flag.Int("questions", 0, "Number of questions (0 = ask)")
	flagSeed      = flag.Int64("seed", 0, "Random seed (0 = time based)")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagQuestions > 0 {
		cfg.Quiz.Questions = *flagQuestions
	}
	if *flagSeed != 0 {
		cfg.Quiz.Seed = *flagSeed
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
