package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "battle.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load(config.NewViper(), "")
	s.Require().NoError(err)

	s.Equal("warn", cfg.Log.Level)
	s.Equal(slog.LevelWarn, cfg.Log.SlogLevel())
	s.Equal("reset_on_start", cfg.Battle.HPPolicy)
	s.Equal(3, cfg.Battle.RosterSize)
	s.Equal(80, cfg.Battle.BotAttackChance)
	s.Equal(config.HistoryMemory, cfg.History.Backend)
	s.Equal(30*24*time.Hour, cfg.History.TTL)
	s.Empty(cfg.Player.Roster)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.writeFile(`
log:
  level: debug
battle:
  hp_policy: never
  seed: 7
player:
  name: Ash
  roster: [bubwool, sproutle]
history:
  backend: redis
  redis_addr: redis:6379
  ttl: 1h
`)

	cfg, err := config.Load(config.NewViper(), path)
	s.Require().NoError(err)

	s.Equal(slog.LevelDebug, cfg.Log.SlogLevel())
	s.Equal("never", cfg.Battle.HPPolicy)
	s.Equal(int64(7), cfg.Battle.Seed)
	s.Equal("Ash", cfg.Player.Name)
	s.Equal([]string{"bubwool", "sproutle"}, cfg.Player.Roster)
	s.Equal(config.HistoryRedis, cfg.History.Backend)
	s.Equal("redis:6379", cfg.History.RedisAddr)
	s.Equal(time.Hour, cfg.History.TTL)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.writeFile("player:\n  name: Ash\n")
	s.T().Setenv("RPG_BATTLE_PLAYER_NAME", "Misty")
	s.T().Setenv("RPG_BATTLE_BATTLE_MAX_TURNS", "12")

	cfg, err := config.Load(config.NewViper(), path)
	s.Require().NoError(err)
	s.Equal("Misty", cfg.Player.Name)
	s.Equal(12, cfg.Battle.MaxTurns)
}

func (s *ConfigTestSuite) TestValidation() {
	testCases := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "unknown hp policy",
			body:   "battle:\n  hp_policy: sometimes\n",
			errMsg: "battle.hp_policy",
		},
		{
			name:   "attack chance out of range",
			body:   "battle:\n  bot_attack_chance: 150\n",
			errMsg: "battle.bot_attack_chance",
		},
		{
			name:   "unknown history backend",
			body:   "history:\n  backend: postgres\n",
			errMsg: "history.backend",
		},
		{
			name:   "zero roster size",
			body:   "battle:\n  roster_size: 0\n",
			errMsg: "battle.roster_size",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Load(config.NewViper(), s.writeFile(tc.body))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(config.NewViper(), filepath.Join(s.dir, "missing.yaml"))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
