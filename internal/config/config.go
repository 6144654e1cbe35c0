// Package config loads runtime settings from an optional YAML file,
// RPG_BATTLE_* environment variables and bound command line flags.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// EnvPrefix is prepended to every environment variable, e.g.
// RPG_BATTLE_HISTORY_BACKEND
const EnvPrefix = "RPG_BATTLE"

// History backends
const (
	HistoryNone   = "none"
	HistoryMemory = "memory"
	HistoryRedis  = "redis"
)

// Config is the full runtime configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Battle  BattleConfig  `mapstructure:"battle"`
	Player  PlayerConfig  `mapstructure:"player"`
	Data    DataConfig    `mapstructure:"data"`
	History HistoryConfig `mapstructure:"history"`
}

// LogConfig controls slog output
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BattleConfig tunes the battle rules
type BattleConfig struct {
	HPPolicy          string `mapstructure:"hp_policy"`
	MaxTurns          int    `mapstructure:"max_turns"`
	MaxChoiceAttempts int    `mapstructure:"max_choice_attempts"`
	RosterSize        int    `mapstructure:"roster_size"`
	BotAttackChance   int    `mapstructure:"bot_attack_chance"`
	// Seed makes dice rolls reproducible; zero draws a random seed
	Seed int64 `mapstructure:"seed"`
}

// PlayerConfig describes the human side of the play command
type PlayerConfig struct {
	Name string `mapstructure:"name"`
	// Roster lists species ids; empty picks at random
	Roster []string `mapstructure:"roster"`
}

// DataConfig points at prototype data; empty uses the embedded pack
type DataConfig struct {
	PrototypesFile string `mapstructure:"prototypes_file"`
}

// HistoryConfig selects where battle results are recorded
type HistoryConfig struct {
	Backend       string        `mapstructure:"backend"`
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"`
	MaxIndex      int           `mapstructure:"max_index"`
}

// NewViper returns a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("battle.hp_policy", "reset_on_start")
	v.SetDefault("battle.max_turns", 500)
	v.SetDefault("battle.max_choice_attempts", 3)
	v.SetDefault("battle.roster_size", 3)
	v.SetDefault("battle.bot_attack_chance", 80)
	v.SetDefault("battle.seed", 0)

	v.SetDefault("player.name", "Player")
	v.SetDefault("player.roster", []string{})

	v.SetDefault("data.prototypes_file", "")

	v.SetDefault("history.backend", HistoryMemory)
	v.SetDefault("history.redis_addr", "localhost:6379")
	v.SetDefault("history.redis_password", "")
	v.SetDefault("history.redis_db", 0)
	v.SetDefault("history.ttl", 30*24*time.Hour)
	v.SetDefault("history.max_index", 500)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (when set) into v and decodes the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		return nil, errors.InvalidArgument("viper instance is required")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cfg, nil
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	errors.ValidateEnum("battle.hp_policy", c.Battle.HPPolicy, []string{"reset_on_start", "reset_on_end", "never"}, vb)
	if c.Battle.MaxTurns < 0 {
		vb.Field("battle.max_turns", "must not be negative")
	}
	errors.ValidatePositive("battle.max_choice_attempts", c.Battle.MaxChoiceAttempts, vb)
	errors.ValidatePositive("battle.roster_size", c.Battle.RosterSize, vb)
	errors.ValidateRange("battle.bot_attack_chance", c.Battle.BotAttackChance, 0, 100, vb)

	errors.ValidateRequired("player.name", c.Player.Name, vb)

	errors.ValidateEnum("history.backend", c.History.Backend, []string{HistoryNone, HistoryMemory, HistoryRedis}, vb)
	if c.History.Backend == HistoryRedis {
		errors.ValidateRequired("history.redis_addr", c.History.RedisAddr, vb)
	}

	return vb.Build()
}

// SlogLevel maps the configured level name to a slog.Level
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
