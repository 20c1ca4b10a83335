// Package ecs queues arbor graph notifications into a [Donburi] world.
//
// A graph reports everything through named notifications. Setting the store
// from [NewDonburiStore] as the graph's event store turns each one into a
// [NotificationEventType] event, delivered when the world processes events:
//
//	g.SetEventStore(ecs.NewDonburiStore(world, "node:", "edge:"))
//	ecs.Subscribe(world, "node:moved", func(w donburi.World, n arbor.Notification) {
//		// sync n.Args.Cell into an entity
//	})
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
