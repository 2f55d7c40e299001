package drawpath

// Stripes returns the path as a list of stripes, one per subpath. A stripe
// holds the subpath's start point followed by six parameters per segment, so
// that every segment is a cubic Bézier curve. Lines and closing lines become
// cubics with their control points at the thirds.
func (p *Path) Stripes() [][]float64 {
	return p.AppendStripes(nil)
}

// AppendStripes is like [Path.Stripes] but appends the stripes to dst.
func (p *Path) AppendStripes(dst [][]float64) [][]float64 {
	var cur []float64
	flush := func() {
		if cur != nil {
			dst = append(dst, cur)
		}
	}
	var last, start Point
	for el := range p.Elements() {
		switch el.Command {
		case MoveToKind:
			flush()
			cur = []float64{el.P0.X, el.P0.Y}
			last, start = el.P0, el.P0
		case LineToKind:
			cur = appendCubic(cur, lineCubic(last, el.P0))
			last = el.P0
		case CurveToKind:
			cur = append(cur, el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
			last = el.P2
		case ClosePathKind:
			cur = appendCubic(cur, lineCubic(last, start))
			last = start
		}
	}
	flush()
	return dst
}

func appendCubic(dst []float64, c CubicBez) []float64 {
	return append(dst, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

// FromStripes replaces the contents of p with the given stripes, each
// becoming a subpath of one move followed by cubic curves. Stripes shorter
// than one point are skipped, as are trailing values that do not form a
// whole segment.
//
// The cursor ends up on the final point and the subpath start on the start
// of the last stripe.
func (p *Path) FromStripes(stripes [][]float64) {
	p.Clear()
	for _, stripe := range stripes {
		if len(stripe) < 2 {
			continue
		}
		p.commands = append(p.commands, MoveToKind)
		p.params = append(p.params, stripe[0], stripe[1])
		p.startX, p.startY = stripe[0], stripe[1]
		for j := 2; j+6 <= len(stripe); j += 6 {
			p.commands = append(p.commands, CurveToKind)
			p.params = append(p.params, stripe[j:j+6]...)
		}
	}
	if n := len(p.params); n > 0 {
		p.cursor = Pt(p.params[n-2], p.params[n-1])
		p.hasCursor = true
	}
}
