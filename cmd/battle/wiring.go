package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/actors"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/engine"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/notify"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-battle/internal/redis"
	battlerecord "github.com/KirkDiggler/rpg-battle/internal/repositories/battle_record"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/prototypes"
)

// app bundles the collaborators one command needs
type app struct {
	cfg      *config.Config
	catalog  *prototypes.Catalog
	roller   dice.Roller
	bus      events.EventBus
	notifier engine.Notifier
	repo     battlerecord.Repository
	battles  battle.Service
	closers  []func() error
}

// appOptions lets each command pick its id generators
type appOptions struct {
	battleIDs   idgen.Generator
	creatureIDs idgen.Generator
	exitPolicy  battle.ExitPolicy
}

func newApp(ctx context.Context, cfg *config.Config, opts appOptions) (_ *app, err error) {
	seeded, seed := roller.New(cfg.Battle.Seed)
	cfg.Battle.Seed = seed
	rt := &app{
		cfg:    cfg,
		roller: seeded,
		bus:    events.NewBus(),
	}
	defer func() {
		if err != nil {
			rt.Close()
		}
	}()

	if cfg.Data.PrototypesFile != "" {
		rt.catalog, err = prototypes.LoadFile(cfg.Data.PrototypesFile, opts.creatureIDs)
	} else {
		rt.catalog, err = prototypes.LoadDefault(opts.creatureIDs)
	}
	if err != nil {
		return nil, err
	}

	rt.repo, err = rt.openHistory(ctx)
	if err != nil {
		return nil, err
	}

	busNotifier, err := notify.NewBusNotifier(&notify.BusConfig{Bus: rt.bus})
	if err != nil {
		return nil, err
	}
	rt.notifier = busNotifier
	logSubs := notify.SubscribeLogger(rt.bus, slog.Default())
	rt.closers = append(rt.closers, logSubs.Close)

	resolver, err := engine.New(&engine.Config{
		Roller:   rt.roller,
		Notifier: rt.notifier,
	})
	if err != nil {
		return nil, err
	}

	battleIDs := opts.battleIDs
	if battleIDs == nil {
		battleIDs = idgen.NewUUID("battle")
	}

	rt.battles, err = battle.NewOrchestrator(&battle.Config{
		Resolver:          resolver,
		IDGenerator:       battleIDs,
		Clock:             clock.New(),
		Notifier:          rt.notifier,
		Repository:        rt.repo,
		ExitPolicy:        opts.exitPolicy,
		HPPolicy:          battle.HPPolicy(cfg.Battle.HPPolicy),
		MaxChoiceAttempts: cfg.Battle.MaxChoiceAttempts,
		MaxTurns:          cfg.Battle.MaxTurns,
	})
	if err != nil {
		return nil, err
	}

	return rt, nil
}

// openHistory returns nil when history is disabled
func (rt *app) openHistory(ctx context.Context) (battlerecord.Repository, error) {
	h := rt.cfg.History
	switch h.Backend {
	case config.HistoryNone:
		return nil, nil
	case config.HistoryMemory:
		return battlerecord.NewInMemory(), nil
	case config.HistoryRedis:
		client, err := redis.NewClient(h.RedisAddr, &redis.Options{
			Password: h.RedisPassword,
			DB:       h.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, client.Close)
		if err := redis.Ping(ctx, client); err != nil {
			return nil, err
		}
		return battlerecord.NewRedis(&battlerecord.RedisConfig{
			Client:   client,
			TTL:      h.TTL,
			MaxIndex: h.MaxIndex,
		})
	default:
		return nil, errors.InvalidArgumentf("unknown history backend %q", h.Backend)
	}
}

func (rt *app) newBot(name, id string) (*entities.Actor, engine.Controller, error) {
	roster, err := rt.catalog.RandomRoster(rt.roller, rt.cfg.Battle.RosterSize)
	if err != nil {
		return nil, nil, err
	}

	bot, err := actors.NewBot(&actors.BotConfig{
		Roller:      rt.roller,
		Personality: &actors.Personality{AttackChance: rt.cfg.Battle.BotAttackChance},
	})
	if err != nil {
		return nil, nil, err
	}

	return &entities.Actor{
		ID:     id,
		Name:   name,
		Kind:   entities.ActorBot,
		Roster: roster,
	}, bot, nil
}

func (rt *app) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			slog.Warn("Failed to release resource", "error", err)
		}
	}
}
