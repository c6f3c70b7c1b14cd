// Package ecs provides ECS adapters for sprig's widget event stream.
//
// The primary adapter is [NewDonburiStore], which bridges sprig widget
// events (hover, press, click, focus, change, keyboard) into a [Donburi]
// world as typed events. Subscribe to [WidgetEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	reg.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
