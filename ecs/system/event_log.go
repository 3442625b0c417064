package system

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/propanim/ecs"
)

// EventLogSystem drains the event queue and logs what it finds. It should be
// the last system of the tick.
type EventLogSystem struct {
	log zerolog.Logger
	// OnEvent, when set, sees every drained event.
	OnEvent func(ecs.Event)
}

func NewEventLogSystem(log zerolog.Logger) *EventLogSystem {
	return &EventLogSystem{log: log}
}

func (s *EventLogSystem) Update(w *ecs.World, _ float32) {
	for _, evt := range w.Events().Drain() {
		if s.OnEvent != nil {
			s.OnEvent(evt)
		}
		stopped, ok := evt.Data.(AnimationStopped)
		if !ok {
			s.log.Debug().Str("type", evt.Type).Msg("event")
			continue
		}
		s.log.Info().
			Stringer("entity", stopped.Entity).
			Stringer("property", stopped.Property).
			Str("name", stopped.Name).
			Bool("finished", stopped.Finished).
			Msg("animation stopped")
	}
}
