package retained

import "testing"

func TestIdentityTransform(t *testing.T) {
	id := IdentityTransform()
	if !id.IsIdentity() {
		t.Error("IdentityTransform().IsIdentity() = false, want true")
	}
	if TranslationTransform(1, 0, 0).IsIdentity() {
		t.Error("translation should not be identity")
	}
}

func TestTransformMultiplyIdentity(t *testing.T) {
	m := TranslationTransform(3, 4, 5)
	if got := m.Multiply(IdentityTransform()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := IdentityTransform().Multiply(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestTransformTranslatePoint(t *testing.T) {
	m := TranslationTransform(10, 20, 0)
	x, y := m.TransformPoint(1, 2)
	if x != 11 || y != 22 {
		t.Errorf("TransformPoint(1, 2) = (%v, %v), want (11, 22)", x, y)
	}
}

func TestTransformScalePoint(t *testing.T) {
	m := ScaleTransform(2, 3, 1)
	x, y := m.TransformPoint(4, 5)
	if x != 8 || y != 15 {
		t.Errorf("TransformPoint(4, 5) = (%v, %v), want (8, 15)", x, y)
	}
}

func TestTransformMultiplyOrder(t *testing.T) {
	// Row-vector convention: scale then translate.
	m := ScaleTransform(2, 2, 1).Multiply(TranslationTransform(10, 0, 0))
	x, y := m.TransformPoint(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestTransformEquality(t *testing.T) {
	a := TranslationTransform(1, 2, 3)
	b := TranslationTransform(1, 2, 3)
	if a != b {
		t.Error("identical transforms should compare equal")
	}
	if a == TranslationTransform(1, 2, 4) {
		t.Error("different transforms should not compare equal")
	}
}
