package drawpath

// Transform maps every point of the path through aff, in place. The identity
// transform leaves the path, including its cached string, untouched.
//
// The cursor and the subpath start are mapped as well, so that drawing can
// continue in the transformed space.
func (p *Path) Transform(aff Affine) {
	if aff.IsIdentity() {
		return
	}
	for i := 0; i+1 < len(p.params); i += 2 {
		p.params[i], p.params[i+1] = aff.apply(p.params[i], p.params[i+1])
	}
	if p.hasCursor {
		p.cursor = p.cursor.Transform(aff)
		p.startX, p.startY = aff.apply(p.startX, p.startY)
	}
	p.dirt()
}
