package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	internalredis "github.com/KirkDiggler/rpg-battle/internal/redis"
	battlerecord "github.com/KirkDiggler/rpg-battle/internal/repositories/battle_record"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

type PruneTestSuite struct {
	suite.Suite
	ctx     context.Context
	mr      *miniredis.Miniredis
	client  internalredis.Client
	cleanup func()
}

func TestPruneTestSuite(t *testing.T) {
	suite.Run(t, new(PruneTestSuite))
}

func (s *PruneTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.mr, s.cleanup = testutils.CreateTestRedisClient(s.T())

	repo, err := battlerecord.NewRedis(&battlerecord.RedisConfig{Client: s.client, TTL: time.Hour})
	s.Require().NoError(err)
	for _, id := range []string{"battle_1", "battle_2", "battle_3"} {
		_, err := repo.Save(s.ctx, &battlerecord.SaveInput{Result: &entities.BattleResult{ID: id, Turns: 3}})
		s.Require().NoError(err)
	}

	s.mr.Del(battlerecord.RecordKey("battle_1"))
	s.Require().NoError(s.mr.Set(battlerecord.RecordKey("battle_2"), "not json"))
}

func (s *PruneTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *PruneTestSuite) TestFindStale() {
	var out bytes.Buffer
	checked, stale, err := findStale(s.ctx, s.client, &out)
	s.Require().NoError(err)

	s.Equal(3, checked)
	s.ElementsMatch([]string{"battle_1", "battle_2"}, stale)
	s.Contains(out.String(), "Undecodable record battle_2")
}

func (s *PruneTestSuite) TestPruneRemovesRecordsAndEntries() {
	var out bytes.Buffer
	removed := prune(s.ctx, s.client, []string{"battle_1", "battle_2"}, &out)
	s.Equal(2, removed)

	ids, err := s.mr.List(battlerecord.IndexKey)
	s.Require().NoError(err)
	s.Equal([]string{"battle_3"}, ids)
	s.False(s.mr.Exists(battlerecord.RecordKey("battle_2")))
	s.True(s.mr.Exists(battlerecord.RecordKey("battle_3")))
}

func (s *PruneTestSuite) TestPruneKeepsEntryWhenDeleteFails() {
	s.mr.Close()

	var out bytes.Buffer
	removed := prune(s.ctx, s.client, []string{"battle_2"}, &out)
	s.Zero(removed)
	s.Contains(out.String(), "Failed to delete record battle_2")

	s.Require().NoError(s.mr.Restart())
	ids, err := s.mr.List(battlerecord.IndexKey)
	s.Require().NoError(err)
	s.Contains(ids, "battle_2")
	s.True(s.mr.Exists(battlerecord.RecordKey("battle_2")))
}
