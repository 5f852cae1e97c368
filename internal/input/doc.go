// Package input ties the input core together: per frame it routes raw
// device snapshots through the context stack and resolver to produce
// action state, applies text routing, and services rebind captures.
//
// The frame protocol is synchronous and single-threaded: device pollers
// fill the snapshot, Frame resolves, consumers read the returned state,
// and EndFrame clears edge state. Rebind captures arm at any point and
// are applied at end of frame so resolution always sees a stable map.
package input
