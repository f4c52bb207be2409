package input

import "math"

// Position is a point in surface coordinates. Copying the value clones it.
type Position struct {
	X, Y float64
}

// Pt is shorthand for Position{X: x, Y: y}.
func Pt(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Set moves p to q.
func (p *Position) Set(q Position) {
	*p = q
}

// SetXY moves p to (x, y).
func (p *Position) SetXY(x, y float64) {
	p.X, p.Y = x, y
}

// Add translates p by q.
func (p *Position) Add(q Position) {
	p.X += q.X
	p.Y += q.Y
}

// AddXY translates p by (x, y).
func (p *Position) AddXY(x, y float64) {
	p.X += x
	p.Y += y
}

// Sub translates p by -q.
func (p *Position) Sub(q Position) {
	p.X -= q.X
	p.Y -= q.Y
}

// SubXY translates p by (-x, -y).
func (p *Position) SubXY(x, y float64) {
	p.X -= x
	p.Y -= y
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Position) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}
