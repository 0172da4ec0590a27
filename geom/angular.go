package geom

// AngularCos returns the cosine of the angle between (p - anchor) and ref.
// The seam zipper uses this as its angular-rank comparator: sorting
// candidates by descending AngularCos orders them by increasing angle to
// ref, so the candidate making the smallest angle with the base edge sorts
// first.
func AngularCos(p, ref, anchor Point) float64 {
	v := p.Sub(anchor)
	denom := v.Norm() * ref.Norm()
	if denom == 0 {
		return 0
	}
	return v.Dot(ref) / denom
}
