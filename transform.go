package retained

import "golang.org/x/image/math/f32"

// LayoutTransform is a 4x4 homogeneous transformation matrix in layout
// coordinates, stored row-major:
//
//	| m[0]  m[1]  m[2]  m[3]  |
//	| m[4]  m[5]  m[6]  m[7]  |
//	| m[8]  m[9]  m[10] m[11] |
//	| m[12] m[13] m[14] m[15] |
//
// Points transform as row vectors (p' = p * M), so translation lives in
// the fourth row. LayoutTransform is a comparable value type: == is exact
// structural equality.
type LayoutTransform f32.Mat4

// IdentityTransform returns the identity transformation.
func IdentityTransform() LayoutTransform {
	return LayoutTransform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// TranslationTransform creates a translation by (x, y, z).
func TranslationTransform(x, y, z float32) LayoutTransform {
	return LayoutTransform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// ScaleTransform creates a scale by (x, y, z).
func ScaleTransform(x, y, z float32) LayoutTransform {
	return LayoutTransform{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Multiply multiplies two transforms (t * other), applying t first when
// transforming row vectors.
func (t LayoutTransform) Multiply(other LayoutTransform) LayoutTransform {
	var result LayoutTransform
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += t[row*4+k] * other[k*4+col]
			}
			result[row*4+col] = sum
		}
	}
	return result
}

// IsIdentity returns true if the transform is exactly the identity.
func (t LayoutTransform) IsIdentity() bool {
	return t == IdentityTransform()
}

// TransformPoint applies the transformation to a 2D layout point.
func (t LayoutTransform) TransformPoint(x, y float32) (float32, float32) {
	tx := x*t[0] + y*t[4] + t[12]
	ty := x*t[1] + y*t[5] + t[13]
	w := x*t[3] + y*t[7] + t[15]
	if w != 0 && w != 1 {
		tx /= w
		ty /= w
	}
	return tx, ty
}
