package model

import "github.com/arklight/entity3d/pkg/math"

// Animator advances an entity's animation state once per tick. The model
// treats it as an opaque driver called with the frame time and delta; any
// transform it writes is picked up by the same tick's dirty check.
type Animator interface {
	Advance(time, delta float32)
}

// RotationKey is a rotation keyframe.
type RotationKey struct {
	Time     float32
	Rotation math.Quat
}

// VectorKey is a position or scale keyframe.
type VectorKey struct {
	Time  float32
	Value math.Vec3
}

// KeyframeAnimator samples rotation, position and scale tracks by time
// and writes the result into a target transform. Rotation interpolates by
// slerp, vectors linearly. Empty tracks leave their component untouched.
type KeyframeAnimator struct {
	target *Transform

	RotKeys   []RotationKey
	PosKeys   []VectorKey
	ScaleKeys []VectorKey
}

// NewKeyframeAnimator creates an animator driving the given transform.
func NewKeyframeAnimator(target *Transform) *KeyframeAnimator {
	return &KeyframeAnimator{target: target}
}

// Advance samples every non-empty track at the given time.
func (a *KeyframeAnimator) Advance(time, _ float32) {
	if a.target == nil {
		return
	}
	if len(a.RotKeys) > 0 {
		a.target.Rotation = sampleRotKeys(a.RotKeys, time)
	}
	if len(a.PosKeys) > 0 {
		a.target.Position = sampleVecKeys(a.PosKeys, time)
	}
	if len(a.ScaleKeys) > 0 {
		a.target.Scale = sampleVecKeys(a.ScaleKeys, time)
	}
}

// sampleRotKeys interpolates rotation keyframes at the given time.
// Keys are assumed sorted by time.
func sampleRotKeys(keys []RotationKey, time float32) math.Quat {
	if len(keys) == 1 {
		return keys[0].Rotation
	}

	// Find surrounding keyframes
	var prev, next int
	for i := range keys {
		if keys[i].Time > time {
			next = i
			break
		}
		prev = i
		next = i
	}

	// At or past the last frame
	if prev == next {
		return keys[prev].Rotation
	}

	k0 := keys[prev]
	k1 := keys[next]
	t := float32(0)
	if k1.Time != k0.Time {
		t = (time - k0.Time) / (k1.Time - k0.Time)
	}
	return k0.Rotation.Slerp(k1.Rotation, t)
}

// sampleVecKeys interpolates vector keyframes at the given time.
// Keys are assumed sorted by time.
func sampleVecKeys(keys []VectorKey, time float32) math.Vec3 {
	if len(keys) == 1 {
		return keys[0].Value
	}

	var prev, next int
	for i := range keys {
		if keys[i].Time > time {
			next = i
			break
		}
		prev = i
		next = i
	}

	if prev == next {
		return keys[prev].Value
	}

	k0 := keys[prev]
	k1 := keys[next]
	t := float32(0)
	if k1.Time != k0.Time {
		t = (time - k0.Time) / (k1.Time - k0.Time)
	}
	return k0.Value.Lerp(k1.Value, t)
}
