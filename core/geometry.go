package core

import "math"

// Vec3 is a geocentric Cartesian vector in metres, or a dimensionless
// direction when it carries a unit vector.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns s * v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Outer returns the outer product v ⊗ other.
func (v Vec3) Outer(other Vec3) Tensor {
	return Tensor{
		{v.X * other.X, v.X * other.Y, v.X * other.Z},
		{v.Y * other.X, v.Y * other.Y, v.Y * other.Z},
		{v.Z * other.X, v.Z * other.Y, v.Z * other.Z},
	}
}

// Tensor is a rank-2 tensor over geocentric Cartesian coordinates.
type Tensor [3][3]float64

// Add returns t + other.
func (t Tensor) Add(other Tensor) Tensor {
	var out Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = t[i][j] + other[i][j]
		}
	}
	return out
}

// Sub returns t - other.
func (t Tensor) Sub(other Tensor) Tensor {
	var out Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = t[i][j] - other[i][j]
		}
	}
	return out
}

// Scale returns s * t.
func (t Tensor) Scale(s float64) Tensor {
	var out Tensor
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = s * t[i][j]
		}
	}
	return out
}

// Trace returns the sum of the diagonal elements.
func (t Tensor) Trace() float64 {
	return t[0][0] + t[1][1] + t[2][2]
}

// Contract returns the Frobenius contraction sum_ij t[i][j]*other[i][j].
func (t Tensor) Contract(other Tensor) float64 {
	var sum float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += t[i][j] * other[i][j]
		}
	}
	return sum
}
