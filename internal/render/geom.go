package render

import (
	"math"
	"strings"
)

// Point is a position in document coordinate space.
type Point struct {
	X float64
	Y float64
}

// polygonPoints renders points as an SVG polygon points attribute.
func polygonPoints(ps []Point) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(coord(p.X))
		b.WriteByte(',')
		b.WriteString(coord(p.Y))
	}
	return b.String()
}

// axisAngle returns axis i's direction on an n-axis radial chart. Axis 0
// points straight up, subsequent axes proceed clockwise.
func axisAngle(i, n int) float64 {
	return -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
}

// axisPoint is the position at distance r along axis i from the center.
func axisPoint(cx, cy, r float64, i, n int) Point {
	a := axisAngle(i, n)
	return Point{
		X: cx + r*math.Cos(a),
		Y: cy + r*math.Sin(a),
	}
}
