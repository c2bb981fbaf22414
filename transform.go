package shapes

import "github.com/go-gl/mathgl/mgl32"

// Transform is a translation, rotation and scale applied in that order to a
// shape's local geometry:
//
//	M = T * R * S
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns the transform that leaves geometry unchanged.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromTranslation returns an identity transform moved to (x, y, z).
func FromTranslation(x, y, z float32) Transform {
	t := Identity()
	t.Translation = mgl32.Vec3{x, y, z}
	return t
}

// Matrix returns the 4x4 column-major matrix of the transform.
func (t Transform) Matrix() mgl32.Mat4 {
	s := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	r := t.Rotation.Normalize().Mat4()
	m := r.Mul4(s)
	m[12], m[13], m[14] = t.Translation[0], t.Translation[1], t.Translation[2]
	return m
}

// Translate moves the transform by v expressed in its local axes, so a
// rotated transform moves along its rotated axes.
func (t *Transform) Translate(v mgl32.Vec3) {
	t.Translation = t.Translation.Add(t.Rotation.Rotate(v))
}

// Rotate applies q after the current rotation, in local space.
func (t *Transform) Rotate(q mgl32.Quat) {
	t.Rotation = t.Rotation.Mul(q).Normalize()
}

// RotateX rotates around the local X axis by angle radians.
func (t *Transform) RotateX(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{1, 0, 0}))
}

// RotateY rotates around the local Y axis by angle radians.
func (t *Transform) RotateY(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0}))
}

// RotateZ rotates around the local Z axis by angle radians.
func (t *Transform) RotateZ(angle float32) {
	t.Rotate(mgl32.QuatRotate(angle, mgl32.Vec3{0, 0, 1}))
}

// ScaleBy multiplies the scale component-wise.
func (t *Transform) ScaleBy(v mgl32.Vec3) {
	t.Scale = mgl32.Vec3{t.Scale[0] * v[0], t.Scale[1] * v[1], t.Scale[2] * v[2]}
}

// Mul returns the matrix of child placed under t: t.Matrix() * child.Matrix().
func (t Transform) Mul(child Transform) mgl32.Mat4 {
	return t.Matrix().Mul4(child.Matrix())
}
