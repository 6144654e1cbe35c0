package actors_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/actors"
	actorsmock "github.com/KirkDiggler/rpg-battle/internal/actors/mock"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	rpgerr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type HumanTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	prompter *actorsmock.MockPrompter
	human    *actors.Human
	ctx      context.Context

	bubwool  *entities.Creature
	sproutle *entities.Creature
	player   *entities.Actor
	bot      *entities.Actor
}

func (s *HumanTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.prompter = actorsmock.NewMockPrompter(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.human, err = actors.NewHuman(&actors.HumanConfig{Prompter: s.prompter})
	s.Require().NoError(err)

	s.bubwool = testutils.Bubwool()
	s.sproutle = testutils.Sproutle()
	s.player = builders.NewActorBuilder().WithRoster(s.bubwool, s.sproutle).Build()
	s.bot = builders.NewActorBuilder().WithID("bot-1").WithName("Gary").AsBot().
		WithRoster(testutils.Scizard()).Build()
}

func (s *HumanTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHumanTestSuite(t *testing.T) {
	suite.Run(t, new(HumanTestSuite))
}

func (s *HumanTestSuite) TestNewHumanRequiresPrompter() {
	_, err := actors.NewHuman(&actors.HumanConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Prompter")
}

func (s *HumanTestSuite) TestChooseAttack() {
	gomock.InOrder(
		s.prompter.EXPECT().
			Choose(s.ctx, gomock.Any(), []string{actors.OptionAttack, actors.OptionSwap}).
			Return(0, nil),
		s.prompter.EXPECT().
			Choose(s.ctx, "Choose a skill", gomock.Len(3)).
			Return(1, nil),
	)

	action, err := s.human.ChooseAction(s.ctx, s.player, s.bot)
	s.Require().NoError(err)

	attack, ok := action.(*entities.Attack)
	s.Require().True(ok)
	s.Same(testutils.SkillScratch, attack.Skill)
}

func (s *HumanTestSuite) TestBackReturnsToTopMenu() {
	gomock.InOrder(
		s.prompter.EXPECT().Choose(s.ctx, gomock.Any(), gomock.Len(2)).Return(0, nil),
		s.prompter.EXPECT().Choose(s.ctx, "Choose a skill", gomock.Len(3)).Return(2, nil),
		s.prompter.EXPECT().Choose(s.ctx, gomock.Any(), gomock.Len(2)).Return(1, nil),
		s.prompter.EXPECT().Choose(s.ctx, "Swap to", gomock.Len(2)).Return(0, nil),
	)

	action, err := s.human.ChooseAction(s.ctx, s.player, s.bot)
	s.Require().NoError(err)

	swap, ok := action.(*entities.Swap)
	s.Require().True(ok)
	s.Same(s.sproutle, swap.Target)
}

func (s *HumanTestSuite) TestSwapHiddenWithEmptyBench() {
	s.sproutle.HP = 0

	gomock.InOrder(
		s.prompter.EXPECT().Choose(s.ctx, gomock.Any(), []string{actors.OptionAttack}).Return(0, nil),
		s.prompter.EXPECT().Choose(s.ctx, "Choose a skill", gomock.Any()).Return(0, nil),
	)

	action, err := s.human.ChooseAction(s.ctx, s.player, s.bot)
	s.Require().NoError(err)
	s.Equal(entities.ActionAttack, action.Kind())
}

func (s *HumanTestSuite) TestNoLegalAction() {
	s.player.ClearActive()

	action, err := s.human.ChooseAction(s.ctx, s.player, s.bot)
	s.Require().NoError(err)
	s.Nil(action)
}

func (s *HumanTestSuite) TestPrompterErrors() {
	testCases := []struct {
		name   string
		choice int
		err    error
		check  func(error) bool
	}{
		{
			name:  "prompter failure is wrapped",
			err:   rpgerr.Canceled("input closed"),
			check: rpgerr.IsCanceled,
		},
		{
			name:   "out of range index",
			choice: 7,
			check:  rpgerr.IsInvalidArgument,
		},
		{
			name:   "negative index",
			choice: -1,
			check:  rpgerr.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.prompter.EXPECT().Choose(s.ctx, gomock.Any(), gomock.Any()).Return(tc.choice, tc.err)

			action, err := s.human.ChooseAction(s.ctx, s.player, s.bot)
			s.Require().Error(err)
			s.Nil(action)
			s.True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *HumanTestSuite) TestChooseReplacement() {
	s.bubwool.HP = 0

	s.prompter.EXPECT().
		Choose(s.ctx, "Tester, choose your next creature", gomock.Len(1)).
		Return(0, nil)

	replacement, err := s.human.ChooseReplacement(s.ctx, s.player)
	s.Require().NoError(err)
	s.Same(s.sproutle, replacement)
}

func (s *HumanTestSuite) TestChooseReplacementWithoutBench() {
	s.sproutle.HP = 0

	_, err := s.human.ChooseReplacement(s.ctx, s.player)
	s.Require().Error(err)
	s.True(rpgerr.IsFailedPrecondition(err))
}

func (s *HumanTestSuite) TestReplacementPrompterError() {
	s.bubwool.HP = 0
	s.prompter.EXPECT().Choose(s.ctx, gomock.Any(), gomock.Any()).Return(0, errors.New("boom"))

	_, err := s.human.ChooseReplacement(s.ctx, s.player)
	s.Require().Error(err)
	s.Contains(err.Error(), "boom")
}
