package controller

import (
	"math"

	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
)

// Separation describes how a body sits relative to another collider.
// PointA lies on the other collider, PointB on the body; translating the body
// by PointA-PointB removes the overlap. Normal points the way the body gets
// pushed.
type Separation struct {
	Overlapped bool
	PointA     vector.Vector
	PointB     vector.Vector
	Normal     vector.Vector
	Distance   float64 // negative penetration depth when overlapped
}

// Push returns the translation that resolves the overlap.
func (s Separation) Push() vector.Vector {
	if !s.Overlapped {
		return vector.Vector{0, 0}
	}
	return s.PointA.Sub(s.PointB)
}

// Separate measures the axis-aligned separation between other and body.
// Boxes that only touch are not overlapped. When overlapped, the push is the
// smallest of the four axis exits; ties prefer up, then down, then right,
// then left.
func Separate(other, body *resolv.Object) Separation {
	bl, br := body.X, body.X+body.W
	bb, bt := body.Y, body.Y+body.H
	ol, or := other.X, other.X+other.W
	ob, ot := other.Y, other.Y+other.H

	overlapX := math.Min(br, or) - math.Max(bl, ol)
	overlapY := math.Min(bt, ot) - math.Max(bb, ob)
	if !(overlapX > 0 && overlapY > 0) {
		gapX := math.Max(-overlapX, 0)
		gapY := math.Max(-overlapY, 0)
		return Separation{Distance: math.Hypot(gapX, gapY)}
	}

	// Midpoints of the shared span on each axis, used to place the contact.
	midX := (math.Max(bl, ol) + math.Min(br, or)) / 2
	midY := (math.Max(bb, ob) + math.Min(bt, ot)) / 2

	exits := [...]struct {
		depth  float64
		a, b   vector.Vector
		normal vector.Vector
	}{
		{ot - bb, vector.Vector{midX, ot}, vector.Vector{midX, bb}, vector.Vector{0, 1}},
		{bt - ob, vector.Vector{midX, ob}, vector.Vector{midX, bt}, vector.Vector{0, -1}},
		{or - bl, vector.Vector{or, midY}, vector.Vector{bl, midY}, vector.Vector{1, 0}},
		{br - ol, vector.Vector{ol, midY}, vector.Vector{br, midY}, vector.Vector{-1, 0}},
	}

	best := 0
	for i := 1; i < len(exits); i++ {
		if exits[i].depth < exits[best].depth {
			best = i
		}
	}

	e := exits[best]
	return Separation{
		Overlapped: true,
		PointA:     e.a,
		PointB:     e.b,
		Normal:     e.normal,
		Distance:   -e.depth,
	}
}
