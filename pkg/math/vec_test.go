package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
	l := Vec3{3, 4, 12}.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3RotateAxis(t *testing.T) {
	got := AxisZ.RotateAxis(AxisX, float32(math.Pi/2))
	want := Vec3{0, -1, 0}
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("RotateAxis: got %v, want %v", got, want)
	}
}

func TestVec3IsFinite(t *testing.T) {
	nan := float32(math.NaN())
	if (Vec3{1, nan, 0}).IsFinite() {
		t.Error("vector with NaN should not be finite")
	}
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("plain vector should be finite")
	}
}
