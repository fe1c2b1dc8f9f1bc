package game

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3           { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3           { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3      { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64        { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Length() float64           { return math.Sqrt(v.Dot(v)) }
func (v Vec3) DistanceTo(o Vec3) float64 { return v.Sub(o).Length() }

func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// AngleTo returns the angle in radians between v and o. A zero vector is
// treated as perpendicular to everything.
func (v Vec3) AngleTo(o Vec3) float64 {
	d := math.Sqrt(v.Dot(v) * o.Dot(o))
	if d == 0 {
		return math.Pi / 2
	}
	c := v.Dot(o) / d
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Euler is an XYZ rotation in radians.
type Euler struct {
	X, Y, Z float64
}

type Pose struct {
	Position Vec3
	Rotation Euler
}

// Box is an axis aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// BoxAround builds a cube of the given edge length centred on c.
func BoxAround(c Vec3, size float64) Box {
	h := Vec3{size / 2, size / 2, size / 2}
	return Box{Min: c.Sub(h), Max: c.Add(h)}
}

func (b Box) Expand(by float64) Box {
	d := Vec3{by, by, by}
	return Box{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

func (b Box) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// ClosestPoint clamps p into the box.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	return Vec3{
		math.Max(b.Min.X, math.Min(p.X, b.Max.X)),
		math.Max(b.Min.Y, math.Min(p.Y, b.Max.Y)),
		math.Max(b.Min.Z, math.Min(p.Z, b.Max.Z)),
	}
}

// IntersectsSegment reports whether the segment a→b passes through the box
// (slab test).
func (b Box) IntersectsSegment(a, c Vec3) bool {
	d := c.Sub(a)
	tmin, tmax := 0.0, 1.0
	axes := [3][4]float64{
		{a.X, d.X, b.Min.X, b.Max.X},
		{a.Y, d.Y, b.Min.Y, b.Max.Y},
		{a.Z, d.Z, b.Min.Z, b.Max.Z},
	}
	for _, ax := range axes {
		origin, dir, lo, hi := ax[0], ax[1], ax[2], ax[3]
		if math.Abs(dir) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return true
}

func DegToRad(d float64) float64 { return d * math.Pi / 180 }
