package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = "matcha.toml"

// config holds the REPL/CLI settings read from the optional TOML file.
type config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

func defaultConfig() config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return config{
		Prompt:      ">>> ",
		HistoryFile: filepath.Join(home, ".matcha_history"),
		Color:       true,
	}
}

// loadConfig reads the file named by --config, or ./matcha.toml when it
// exists. A missing default file is not an error; an explicit --config that
// cannot be read is.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
