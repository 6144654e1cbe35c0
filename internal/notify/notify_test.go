package notify_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/notify"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
	"github.com/KirkDiggler/rpg-battle/internal/testutils/builders"
)

type NotifyTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      events.EventBus
	notifier *notify.BusNotifier
	player   *entities.Actor
	bot      *entities.Actor
}

func (s *NotifyTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()

	var err error
	s.notifier, err = notify.NewBusNotifier(&notify.BusConfig{Bus: s.bus})
	s.Require().NoError(err)

	s.player = builders.NewActorBuilder().
		WithID("player-1").
		WithName("Ash").
		WithRoster(testutils.Bubwool()).
		Build()
	s.bot = builders.NewActorBuilder().
		WithID("bot-1").
		WithName("Gary").
		AsBot().
		WithRoster(testutils.Scizard()).
		Build()
}

func (s *NotifyTestSuite) TestNewBusNotifier() {
	_, err := notify.NewBusNotifier(nil)
	s.Require().Error(err)

	_, err = notify.NewBusNotifier(&notify.BusConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Bus")
}

func (s *NotifyTestSuite) TestPublishesBattleEvent() {
	var got []events.Event
	s.bus.SubscribeFunc(notify.EventType(engine.EventAttacked), 0,
		func(_ context.Context, evt events.Event) error {
			got = append(got, evt)
			return nil
		})

	battleEvent := &engine.Event{
		Kind:     engine.EventAttacked,
		Turn:     1,
		Actor:    s.player,
		Creature: s.player.Active,
		Target:   s.bot.Active,
		Message:  "Bubwool used Lick!",
	}
	s.notifier.Notify(s.ctx, &engine.Notification{
		Message: battleEvent.Message,
		Event:   battleEvent,
	})

	s.Require().Len(got, 1)
	s.Equal("battle.attacked", got[0].Type())
	s.Equal("Bubwool used Lick!", notify.Message(got[0]))
	s.Empty(notify.RecipientID(got[0]))
	s.Same(battleEvent, notify.BattleEvent(got[0]))
}

func (s *NotifyTestSuite) TestWriterFiltersByRecipient() {
	var out bytes.Buffer
	subs := notify.SubscribeWriter(s.bus, &out, s.player.ID)
	defer func() { s.NoError(subs.Close()) }()

	s.notifier.Notify(s.ctx, &engine.Notification{Message: "Battle start!"})
	s.notifier.Notify(s.ctx, &engine.Notification{Recipient: s.bot, Message: "for the bot"})
	s.notifier.Notify(s.ctx, &engine.Notification{Recipient: s.player, Message: "for the player"})
	s.notifier.Notify(s.ctx, nil)

	s.Equal("Battle start!\nfor the player\n", out.String())
}

func (s *NotifyTestSuite) TestCloseStopsDelivery() {
	var out bytes.Buffer
	subs := notify.SubscribeWriter(s.bus, &out, s.player.ID)
	s.Require().NoError(subs.Close())

	s.notifier.Notify(s.ctx, &engine.Notification{Message: "ignored"})
	s.Empty(out.String())
}

func TestNotifyTestSuite(t *testing.T) {
	suite.Run(t, new(NotifyTestSuite))
}
