// Package ecs provides ECS adapters for heartwall.
package ecs

import (
	"github.com/phanxgames/heartwall"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WallEventType is the Donburi event type for wall lifecycle events.
// Subscribe to this in your ECS systems to react to note spawns, raises,
// and closes, the merge starting, and the farewell finishing.
var WallEventType = events.NewEventType[heartwall.WallEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Wall
// events are published to WallEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) heartwall.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event heartwall.WallEvent) {
	WallEventType.Publish(s.world, event)
}
