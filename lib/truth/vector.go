package truth

// Vector3 is a three-component vector used for positions and momenta. Each
// component defaults to the sentinel NaN. When flattened to columns, a vector
// named "vtx" becomes the three columns "vtx[0]", "vtx[1]", "vtx[2]".
type Vector3 struct {
	X, Y, Z float32
}

// NewVector3 returns a Vector3 with all three components set to the sentinel
// NaN.
func NewVector3() Vector3 {
	return Vector3{NaN, NaN, NaN}
}

// Array returns the components as a [3]float32, in X, Y, Z order.
func (v Vector3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// FromArray sets the components from a [3]float32 in X, Y, Z order.
func (v *Vector3) FromArray(x [3]float32) {
	v.X, v.Y, v.Z = x[0], x[1], x[2]
}
