// Calculate some geometries, lengths and angles on backbone atoms.
// Coordinates come in as float32 from the pdb package and all the
// arithmetic is done in float64.

package geom

import (
	"math"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	Rad2Deg = 180 / math.Pi
	Deg2Rad = math.Pi / 180
	// NoAngle is what DSSP prints when an angle cannot be calculated.
	NoAngle = 360.
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrZeroLen = Error("zero length vector")

// Vec converts a coordinate to a gonum vector.
func Vec(x cmmn.Xyz) r3.Vec {
	return r3.Vec{X: float64(x.X), Y: float64(x.Y), Z: float64(x.Z)}
}

// XyzDist is the plain distance between two points.
func XyzDist(x1, x2 cmmn.Xyz) float64 {
	return r3.Norm(r3.Sub(Vec(x1), Vec(x2)))
}

// clampCos keeps numerical noise out of acos().
func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// VecAngle is the angle between two vectors in radians.
func VecAngle(u, v r3.Vec) (float64, error) {
	l2 := r3.Norm2(u) * r3.Norm2(v)
	if l2 == 0 {
		return math.NaN(), ErrZeroLen
	}
	return math.Acos(clampCos(r3.Dot(u, v) / math.Sqrt(l2))), nil
}

// XyzAngle takes three points and returns the angle between them,
// with b at the vertex.
func XyzAngle(a, b, c cmmn.Xyz) (float64, error) {
	vb := Vec(b)
	return VecAngle(r3.Sub(Vec(a), vb), r3.Sub(Vec(c), vb))
}

// Kappa is the virtual bond angle at b of the chain a, b, c where these
// are alpha carbons i-2, i and i+2. A straight chain gives zero.
func Kappa(a, b, c cmmn.Xyz) (float64, error) {
	return VecKappa(Vec(a), Vec(b), Vec(c))
}

// VecKappa is Kappa for points that are already vectors.
func VecKappa(a, b, c r3.Vec) (float64, error) {
	return VecAngle(r3.Sub(a, b), r3.Sub(b, c))
}

// XyzDhdrl takes four points and returns the dihedral angle in radians
// with the IUPAC sign convention. A cis arrangement is zero.
func XyzDhdrl(ii, jj, kk, ll cmmn.Xyz) float64 {
	b1 := r3.Sub(Vec(jj), Vec(ii))
	b2 := r3.Sub(Vec(kk), Vec(jj))
	b3 := r3.Sub(Vec(ll), Vec(kk))
	n1 := r3.Cross(b1, b2)
	n2 := r3.Cross(b2, b3)
	y := r3.Norm(b2) * r3.Dot(b1, n2)
	x := r3.Dot(n1, n2)
	return math.Atan2(y, x)
}
