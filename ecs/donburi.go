package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for sprig widget events.
var WidgetEventType = events.NewEventType[sprig.WidgetEvent]()

type donburiStore struct {
	world donburi.World
	types map[sprig.EventType]bool // nil = all
}

// NewDonburiStore creates an EventSink backed by a Donburi world. Events
// are published to WidgetEventType and delivered by ProcessEvents. When
// only is non-empty, other event types are dropped.
func NewDonburiStore(world donburi.World, only ...sprig.EventType) sprig.EventSink {
	s := &donburiStore{world: world}
	if len(only) > 0 {
		s.types = make(map[sprig.EventType]bool, len(only))
		for _, t := range only {
			s.types[t] = true
		}
	}
	return s
}

func (s *donburiStore) EmitEvent(event sprig.WidgetEvent) {
	if s.types != nil && !s.types[event.Type] {
		return
	}
	WidgetEventType.Publish(s.world, event)
}
