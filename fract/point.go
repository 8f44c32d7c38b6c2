package fract

import "golang.org/x/image/math/fixed"

// A pair of [Unit] coordinates.
type Point struct {
	X Unit
	Y Unit
}

func UnitsToPoint(x, y Unit) Point { return Point{ X: x, Y: y } }

func FromFixedPoint(point fixed.Point26_6) Point {
	return Point{ X: Unit(point.X), Y: Unit(point.Y) }
}

func (self Point) AddPoint(other Point) Point {
	return Point{ X: self.X + other.X, Y: self.Y + other.Y }
}

func (self Point) ToFloat32s() (float32, float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// A rectangle with [Unit] coordinates. Max is exclusive.
type Rect struct {
	Min Point
	Max Point
}

func FromFixedRect(rect fixed.Rectangle26_6) Rect {
	return Rect{ Min: FromFixedPoint(rect.Min), Max: FromFixedPoint(rect.Max) }
}
