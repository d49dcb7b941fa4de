package controller

import (
	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/gamemath"
	"github.com/solarlune/resolv"
)

// groundAngle is the exclusive limit, in degrees from straight up, for a
// contact normal to count as ground.
const groundAngle = 90.0

// ResolveCollisions moves body by the tick's velocity, pushes it out of every
// overlapping collider and recomputes m.Grounded. It returns the number of
// overlaps resolved.
//
// Contacts are resolved one at a time in the order the space reports them.
// Each push is applied before the next contact is measured, so later contacts
// see the corrected position. Grounded is cleared before the query and only
// ever set afterwards, which makes it a sticky OR over this tick's contacts.
// There is no separate ground sensor: a body is grounded only on ticks where
// it actually penetrates something below it.
func ResolveCollisions(m *components.MotionData, body *resolv.Object, dt float64) int {
	translate(body, m.Velocity.X*dt, m.Velocity.Y*dt)

	m.Grounded = false

	hits := query(body)
	resolved := 0
	for _, other := range hits {
		if other == body {
			continue
		}
		sep := Separate(other, body)
		if !sep.Overlapped {
			continue
		}
		push := sep.Push()
		translate(body, push.X(), push.Y())
		resolved++

		if gamemath.AngleFromUp(sep.Normal) < groundAngle && m.Velocity.Y <= 0 {
			m.Grounded = true
		}
	}
	return resolved
}

// query returns the colliders sharing broad-phase cells with body, walking the
// cells bottom row first, left to right. Objects register their cells with a
// one unit inset on their far edges, so the sweep starts one unit early on the
// near edges to still meet them. A body outside any space has no contacts.
func query(body *resolv.Object) []*resolv.Object {
	space := body.Space
	if space == nil {
		return nil
	}
	cx, cy, ex, ey := QueryCells(body)

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]struct{})
	for y := cy; y <= ey; y++ {
		for x := cx; x <= ex; x++ {
			cell := space.Cell(x, y)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if _, ok := seen[o]; ok {
					continue
				}
				seen[o] = struct{}{}
				hits = append(hits, o)
			}
		}
	}
	return hits
}

// QueryCells returns the inclusive range of broad-phase cells query walks for
// body. body must belong to a space.
func QueryCells(body *resolv.Object) (minX, minY, maxX, maxY int) {
	minX, minY = body.Space.WorldToSpace(body.X-1, body.Y-1)
	maxX, maxY = body.Space.WorldToSpace(body.X+body.W, body.Y+body.H)
	return minX, minY, maxX, maxY
}

func translate(body *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	body.X += dx
	body.Y += dy
	if body.Space != nil {
		body.Update()
	}
}
