package config

import (
	"os"

	"holdem-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded bool

	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`
	Game       struct {
		StartingChips    int `yaml:"startingChips" envconfig:"starting_chips"`
		SmallBlind       int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind         int `yaml:"bigBlind" envconfig:"big_blind"`
		NextHandDelaySec int `yaml:"nextHandDelaySec" envconfig:"next_hand_delay_sec"`
	}
	Lobby struct {
		MaxSeats int `yaml:"maxSeats" envconfig:"max_seats"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	c := Config{}
	c.ListenAddr = ":5000"
	c.Game.StartingChips = 1000
	c.Game.SmallBlind = 5
	c.Game.BigBlind = 10
	c.Game.NextHandDelaySec = 5
	c.Lobby.MaxSeats = 6
	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The config file is optional; environment variables always win
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
