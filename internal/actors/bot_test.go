package actors_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/actors"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	rollermock "github.com/KirkDiggler/rpg-battle/internal/pkg/roller/mock"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type BotTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	roller *rollermock.MockRoller
	bot    *actors.Bot
	ctx    context.Context

	scizard  *entities.Creature
	sproutle *entities.Creature
	self     *entities.Actor
	player   *entities.Actor
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = rollermock.NewMockRoller(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.bot, err = actors.NewBot(&actors.BotConfig{Roller: s.roller})
	s.Require().NoError(err)

	s.scizard = testutils.Scizard()
	s.sproutle = testutils.Sproutle()
	s.self = builders.NewActorBuilder().WithID("bot-1").AsBot().
		WithRoster(s.scizard, s.sproutle).Build()
	s.player = builders.NewActorBuilder().WithRoster(testutils.Bubwool()).Build()
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) TestNewBotValidation() {
	_, err := actors.NewBot(nil)
	s.Require().Error(err)

	_, err = actors.NewBot(&actors.BotConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Roller")

	_, err = actors.NewBot(&actors.BotConfig{
		Roller:      s.roller,
		Personality: &actors.Personality{AttackChance: 101},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "AttackChance")
}

func (s *BotTestSuite) TestAttackAtThreshold() {
	gomock.InOrder(
		s.roller.EXPECT().Roll(100).Return(actors.DefaultAttackChance, nil),
		s.roller.EXPECT().Roll(2).Return(2, nil),
	)

	action, err := s.bot.ChooseAction(s.ctx, s.self, s.player)
	s.Require().NoError(err)

	attack, ok := action.(*entities.Attack)
	s.Require().True(ok)
	s.Same(testutils.SkillScratch, attack.Skill)
}

func (s *BotTestSuite) TestSwapAboveThreshold() {
	gomock.InOrder(
		s.roller.EXPECT().Roll(100).Return(actors.DefaultAttackChance+1, nil),
		s.roller.EXPECT().Roll(1).Return(1, nil),
	)

	action, err := s.bot.ChooseAction(s.ctx, s.self, s.player)
	s.Require().NoError(err)

	swap, ok := action.(*entities.Swap)
	s.Require().True(ok)
	s.Same(s.sproutle, swap.Target)
}

func (s *BotTestSuite) TestEmptyBenchFallsBackToAttack() {
	s.sproutle.HP = 0
	gomock.InOrder(
		s.roller.EXPECT().Roll(100).Return(100, nil),
		s.roller.EXPECT().Roll(2).Return(1, nil),
	)

	action, err := s.bot.ChooseAction(s.ctx, s.self, s.player)
	s.Require().NoError(err)

	attack, ok := action.(*entities.Attack)
	s.Require().True(ok)
	s.Same(testutils.SkillEmber, attack.Skill)
}

func (s *BotTestSuite) TestCustomPersonality() {
	bot, err := actors.NewBot(&actors.BotConfig{
		Roller:      s.roller,
		Personality: &actors.Personality{AttackChance: 0},
	})
	s.Require().NoError(err)

	gomock.InOrder(
		s.roller.EXPECT().Roll(100).Return(1, nil),
		s.roller.EXPECT().Roll(1).Return(1, nil),
	)

	action, err := bot.ChooseAction(s.ctx, s.self, s.player)
	s.Require().NoError(err)
	s.Equal(entities.ActionSwap, action.Kind())
}

func (s *BotTestSuite) TestChoiceIsAlwaysLegal() {
	s.roller.EXPECT().Roll(gomock.Any()).DoAndReturn(func(size int) (int, error) {
		return size, nil
	}).AnyTimes()

	for i := 0; i < 5; i++ {
		action, err := s.bot.ChooseAction(s.ctx, s.self, s.player)
		s.Require().NoError(err)
		s.NoError(s.self.ValidateAction(action))
	}
}

func (s *BotTestSuite) TestNoLegalAction() {
	s.self.ClearActive()

	action, err := s.bot.ChooseAction(s.ctx, s.self, s.player)
	s.Require().NoError(err)
	s.Nil(action)
}

func (s *BotTestSuite) TestRollError() {
	s.roller.EXPECT().Roll(100).Return(0, errors.New("dice jammed"))

	_, err := s.bot.ChooseAction(s.ctx, s.self, s.player)
	s.Require().Error(err)
	s.Contains(err.Error(), "dice jammed")
}

func (s *BotTestSuite) TestChooseReplacement() {
	s.scizard.HP = 0
	s.roller.EXPECT().Roll(1).Return(1, nil)

	replacement, err := s.bot.ChooseReplacement(s.ctx, s.self)
	s.Require().NoError(err)
	s.Same(s.sproutle, replacement)
}

func (s *BotTestSuite) TestChooseReplacementWithoutBench() {
	s.sproutle.HP = 0

	_, err := s.bot.ChooseReplacement(s.ctx, s.self)
	s.Require().Error(err)
}
