package model

// Thickness defines spacing on all four sides of an element.
type Thickness struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(value float64) Thickness {
	return Thickness{
		Left:   value,
		Top:    value,
		Right:  value,
		Bottom: value,
	}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}
