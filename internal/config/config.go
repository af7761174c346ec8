package config

import (
	"os"

	"chiptable/internal/util"
	"chiptable/pkg/holdem"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is read when HOLDEM_CONFIG_FILE is not set
const DefaultConfigFile = "config.yaml"

// Config provides configuration for the chip table
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Table struct {
		StartingChips int      `yaml:"startingChips" envconfig:"starting_chips"`
		SmallBlind    int      `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int      `yaml:"bigBlind" envconfig:"big_blind"`
		Players       []string `yaml:"players" envconfig:"players"`
		PlayerCount   int      `yaml:"playerCount" envconfig:"player_count"`
		DealerSeat    int      `yaml:"dealerSeat" envconfig:"dealer_seat"`
		RandomDealer  bool     `yaml:"randomDealer" envconfig:"random_dealer"`
	} `yaml:"table"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	opts := holdem.DefaultOptions()

	cfg := Config{}
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Table.StartingChips = opts.StartingChips
	cfg.Table.SmallBlind = opts.SmallBlind
	cfg.Table.BigBlind = opts.BigBlind
	cfg.Table.Players = []string{}
	cfg.Table.PlayerCount = len(opts.PlayerNames)
	cfg.Table.DealerSeat = opts.DealerSeat
	return cfg
}

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

// Load will load the configuration from HOLDEM_CONFIG_FILE
func Load() error {
	return LoadFile(util.Getenv("HOLDEM_CONFIG_FILE", DefaultConfigFile))
}

// LoadFile will load the configuration from a YAML file, then apply HOLDEM_* environment overrides
// A missing config.yaml falls back to the defaults, any other missing file is an error
func LoadFile(configFile string) error {
	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return errors.Wrapf(err, "could not decode %s", configFile)
		}
	case os.IsNotExist(err) && configFile == DefaultConfigFile:
	default:
		return errors.Wrap(err, "could not open config file")
	}

	if err := envconfig.Process("holdem", &cfg); err != nil {
		return errors.Wrap(err, "could not process environment")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	cfg.Table.Players = util.SeatNames(cfg.Table.Players, cfg.Table.PlayerCount)
	cfg.loaded = true
	config = cfg
	return nil
}

// TableOptions returns the options for a new table
// A loaded config already has every seat named, otherwise missing names are filled with random names
func (c Config) TableOptions() holdem.Options {
	return holdem.Options{
		StartingChips: c.Table.StartingChips,
		SmallBlind:    c.Table.SmallBlind,
		BigBlind:      c.Table.BigBlind,
		PlayerNames:   util.SeatNames(c.Table.Players, c.Table.PlayerCount),
		DealerSeat:    c.Table.DealerSeat,
		RandomDealer:  c.Table.RandomDealer,
	}
}

// Validate checks the configuration before a table is created from it
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr is required")
	}

	count := c.Table.PlayerCount
	if len(c.Table.Players) > count {
		count = len(c.Table.Players)
	}

	if count < holdem.MinPlayers || count > holdem.MaxPlayers {
		return holdem.PlayerCountError(count)
	}

	if c.Table.DealerSeat < 0 || c.Table.DealerSeat >= count {
		return errors.Errorf("dealer seat must be between 0 and %d", count-1)
	}

	opts := c.TableOptions()
	return errors.Wrap(opts.Validate(), "table")
}
