package controller

import "github.com/solarlune/resolv"

// MinColliderSize is the smallest extent, in world units, a collider may have
// on either axis. resolv registers an object's cells with a one unit inset on
// its far edges, so anything thinner can land in no cell at all and vanish
// from the broad phase.
const MinColliderSize = 1.0

// NewCollider returns a resolv object for the box x, y, w, h, grown to at
// least MinColliderSize on each axis. A thin box grows downward so its top
// surface stays where it was placed; a narrow one grows evenly on both sides.
func NewCollider(x, y, w, h float64, tags ...string) *resolv.Object {
	if h < MinColliderSize {
		y -= MinColliderSize - h
		h = MinColliderSize
	}
	if w < MinColliderSize {
		x -= (MinColliderSize - w) / 2
		w = MinColliderSize
	}
	return resolv.NewObject(x, y, w, h, tags...)
}
