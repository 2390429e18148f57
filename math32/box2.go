// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// The box is half-open: it contains points p with Min <= p < Max.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Size returns a new [Box2] at the given position with the given size.
func B2Size(pos, size Vector2) Box2 {
	return Box2{pos, pos.Add(size)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// IsEmpty returns if this bounding box is empty (max <= min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X <= b.Min.X) || (b.Max.Y <= b.Min.Y)
}

// Size returns the size of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X < b.Max.X &&
		point.Y >= b.Min.Y && point.Y < b.Max.Y
}

// Intersect returns the intersection of this box with the other.
// The result is empty when the boxes do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// Overlaps returns true if this box and the other have a non-empty intersection.
func (b Box2) Overlaps(other Box2) bool {
	return !b.Intersect(other).IsEmpty()
}

// Translate returns translated position of this box by offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}
