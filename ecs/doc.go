// Package ecs provides ECS adapters for heartwall's wall event stream.
//
// The primary adapter is [NewDonburiSink], which bridges wall lifecycle
// events (spawn, raise, close, merge start, finish) into a [Donburi] world
// as typed events. Subscribe to [WallEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	wall.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
