// Package contact merges per-segment collision notifications into unified
// per-object enter/stay/exit events. Segments are anonymous contributors:
// the aggregator only tracks how many of them currently touch each external
// object, per channel, and fires an enter on the first touch and an exit
// when the last one ends.
package contact

import (
	"sort"

	"github.com/Faultbox/splinecollider/pkg/physics"
)

// Event is the payload of every unified event. Detail is only set on
// collision-channel events and holds the most recently reported contact
// geometry for the object.
type Event struct {
	Body   physics.BodyID
	Detail *physics.ContactDetail
}

// entry tracks one (channel, object) pair while its contact count is
// positive. Entries are removed the moment the count drops to zero.
type entry struct {
	count  int
	detail *physics.ContactDetail
}

// Aggregator implements physics.ContactListener. Feed it every segment-level
// notification of a step, then call Step once to fire the per-object stay
// sweep.
type Aggregator struct {
	triggers   map[physics.BodyID]*entry
	collisions map[physics.BodyID]*entry

	TriggerEnter Signal[Event]
	TriggerStay  Signal[Event]
	TriggerExit  Signal[Event]

	CollisionEnter Signal[Event]
	CollisionStay  Signal[Event]
	CollisionExit  Signal[Event]
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		triggers:   make(map[physics.BodyID]*entry),
		collisions: make(map[physics.BodyID]*entry),
	}
}

// HandleContact processes one segment-level notification.
func (a *Aggregator) HandleContact(c physics.Contact) {
	entries, enter, exit := a.channel(c.Channel)

	switch c.Phase {
	case physics.PhaseBegin:
		e := entries[c.Body]
		if e == nil {
			e = &entry{}
			entries[c.Body] = e
		}
		e.count++
		if c.Detail != nil {
			e.detail = c.Detail
		}
		// Enter fires only when the first segment touches the object.
		if e.count == 1 {
			enter.emit(Event{Body: c.Body, Detail: e.detail})
		}

	case physics.PhaseContinue:
		// Refresh the cached detail; counts and events are untouched.
		if e := entries[c.Body]; e != nil && c.Detail != nil {
			e.detail = c.Detail
		}

	case physics.PhaseEnd:
		e := entries[c.Body]
		if e == nil {
			// Duplicate or out-of-order end from the physics layer.
			return
		}
		e.count--
		if e.count <= 0 {
			delete(entries, c.Body)
			exit.emit(Event{Body: c.Body, Detail: e.detail})
		}
	}
}

// Step fires stay events, exactly once per currently-contacted object on
// each channel. Call once per physics step after all of that step's
// notifications have been handled. Objects are visited in ascending id
// order so event streams are deterministic.
func (a *Aggregator) Step() {
	for _, id := range sortedBodies(a.collisions) {
		a.CollisionStay.emit(Event{Body: id, Detail: a.collisions[id].detail})
	}
	for _, id := range sortedBodies(a.triggers) {
		a.TriggerStay.emit(Event{Body: id})
	}
}

// IsColliding reports whether any segment physically collides with the object.
func (a *Aggregator) IsColliding(id physics.BodyID) bool {
	return a.collisions[id] != nil
}

// IsOverlapping reports whether any trigger segment overlaps the object.
func (a *Aggregator) IsOverlapping(id physics.BodyID) bool {
	return a.triggers[id] != nil
}

// IsInContact reports whether the object touches the path on either channel.
func (a *Aggregator) IsInContact(id physics.BodyID) bool {
	return a.IsColliding(id) || a.IsOverlapping(id)
}

// Reset drops all entries without firing events. Intended for hosts that
// tear down and rebuild the underlying volumes.
func (a *Aggregator) Reset() {
	a.triggers = make(map[physics.BodyID]*entry)
	a.collisions = make(map[physics.BodyID]*entry)
}

func (a *Aggregator) channel(ch physics.Channel) (map[physics.BodyID]*entry, *Signal[Event], *Signal[Event]) {
	if ch == physics.ChannelTrigger {
		return a.triggers, &a.TriggerEnter, &a.TriggerExit
	}
	return a.collisions, &a.CollisionEnter, &a.CollisionExit
}

func sortedBodies(entries map[physics.BodyID]*entry) []physics.BodyID {
	ids := make([]physics.BodyID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
