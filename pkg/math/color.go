package math

// Color32 is an 8-bit-per-channel RGBA vertex color.
type Color32 struct {
	R, G, B, A uint8
}

// White is the neutral vertex color.
var White = Color32{255, 255, 255, 255}

// Lerp returns the linear interpolation between c and other at t in [0,1].
func (c Color32) Lerp(other Color32, t float32) Color32 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return Color32{
		lerp(c.R, other.R),
		lerp(c.G, other.G),
		lerp(c.B, other.B),
		lerp(c.A, other.A),
	}
}
