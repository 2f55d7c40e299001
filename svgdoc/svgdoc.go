// Package svgdoc extracts the geometry of SVG documents as drawpath paths.
//
// Only the basic shapes and path elements are converted. Styling, text,
// references and nested viewports are ignored, and so is the content of
// definition-like containers such as defs and clipPath. Transforms are
// applied, so every returned path is in the coordinate system of the root
// element.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/net/html/charset"

	"honnef.co/go/drawpath"
)

// Element is a shape read from an SVG document.
type Element struct {
	// Tag is the local name of the element, such as "path" or "circle".
	Tag string
	// ID is the element's id attribute, if any.
	ID string
	// Path is the element's outline with all transforms applied.
	Path *drawpath.Path
}

// skipped lists containers whose content is not rendered directly.
var skipped = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
	"pattern":  true,
	"marker":   true,
}

// ErrNotSVG is returned when a document's root element is not svg.
var ErrNotSVG = errors.New("svgdoc: not an SVG document")

// Read reads an SVG document from r and returns its shapes in document order.
//
// Malformed XML and invalid transform attributes are errors. Shapes whose
// geometry cannot be converted are logged at warning level through
// [drawpath.Logger]; path data is kept up to the first error, as SVG
// renderers do.
func Read(r io.Reader) ([]Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var out []Element
	// ctm holds the current transformation matrix of each open element.
	var ctm []drawpath.Affine
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, ErrNotSVG
				}
				return out, nil
			}
			return out, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			name := se.Name.Local
			if !seenTag {
				if name != "svg" {
					return nil, ErrNotSVG
				}
				seenTag = true
			}
			if skipped[name] {
				drawpath.Logger().Debug("skipping SVG container", "tag", name)
				if err := decoder.Skip(); err != nil {
					return out, err
				}
				continue
			}

			parent := drawpath.Identity
			if len(ctm) > 0 {
				parent = ctm[len(ctm)-1]
			}
			m := parent
			if s := attr(se, "transform"); s != "" {
				own, err := ParseTransform(s)
				if err != nil {
					return out, fmt.Errorf("svgdoc: <%s id=%q>: %w", name, attr(se, "id"), err)
				}
				m = parent.Mul(own)
			}
			ctm = append(ctm, m)

			p, err := shape(se)
			if err != nil {
				drawpath.Logger().Warn("SVG shape not converted", "tag", name, "id", attr(se, "id"), "err", err)
			}
			if p != nil && !p.IsEmpty() {
				p.Transform(m)
				out = append(out, Element{Tag: name, ID: attr(se, "id"), Path: p})
			}
		case xml.EndElement:
			if len(ctm) > 0 {
				ctm = ctm[:len(ctm)-1]
			}
		}
	}
}

// ReadFile reads the SVG document in the named file.
func ReadFile(name string) ([]Element, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// shape converts a basic shape or path element. It returns a nil path for
// elements that have no geometry of their own. A non-nil error may come with
// a partial path.
func shape(se xml.StartElement) (*drawpath.Path, error) {
	var lp lengthParser
	length := func(name string) float64 { return lp.length(se, name) }

	var p *drawpath.Path
	switch se.Name.Local {
	case "path":
		var err error
		p, err = drawpath.ParseSVGPath(attr(se, "d"))
		if err != nil {
			return p, err
		}

	case "rect":
		x, y := length("x"), length("y")
		w, h := length("width"), length("height")
		rx, ry := lp.radii(se, w, h)
		if lp.err != nil {
			return nil, lp.err
		}
		if w <= 0 || h <= 0 {
			return nil, nil
		}
		p = drawpath.NewPath()
		if rx == 0 || ry == 0 {
			p.Rect(x, y, w, h)
			break
		}
		p.MoveTo(x+rx, y)
		p.Ellipse(x+w-rx, y+ry, rx, ry, 0, -math.Pi/2, 0, false)
		p.Ellipse(x+w-rx, y+h-ry, rx, ry, 0, 0, math.Pi/2, false)
		p.Ellipse(x+rx, y+h-ry, rx, ry, 0, math.Pi/2, math.Pi, false)
		p.Ellipse(x+rx, y+ry, rx, ry, 0, math.Pi, 3*math.Pi/2, false)
		p.ClosePath()

	case "circle", "ellipse":
		cx, cy := length("cx"), length("cy")
		var rx, ry float64
		if se.Name.Local == "circle" {
			rx = length("r")
			ry = rx
		} else {
			rx, ry = length("rx"), length("ry")
		}
		if lp.err != nil {
			return nil, lp.err
		}
		if rx <= 0 || ry <= 0 {
			return nil, nil
		}
		p = drawpath.NewPath()
		p.Ellipse(cx, cy, rx, ry, 0, 0, 2*math.Pi, false)
		p.ClosePath()

	case "line":
		x1, y1 := length("x1"), length("y1")
		x2, y2 := length("x2"), length("y2")
		if lp.err != nil {
			return nil, lp.err
		}
		p = drawpath.NewPath()
		p.MoveTo(x1, y1)
		p.LineTo(x2, y2)

	case "polyline", "polygon":
		pts, err := parseNumbers(attr(se, "points"))
		if len(pts)%2 == 1 {
			pts = pts[:len(pts)-1]
			if err == nil {
				err = errors.New("odd number of coordinates in points")
			}
		}
		if len(pts) == 0 {
			return nil, err
		}
		p = drawpath.NewPath()
		p.MoveTo(pts[0], pts[1])
		for i := 2; i < len(pts); i += 2 {
			p.LineTo(pts[i], pts[i+1])
		}
		if se.Name.Local == "polygon" {
			p.ClosePath()
		}
		return p, err
	}
	return p, nil
}

// lengthParser reads length attributes, remembering the first error.
type lengthParser struct {
	err error
}

func (lp *lengthParser) length(se xml.StartElement, name string) float64 {
	s := attr(se, name)
	if s == "" {
		return 0
	}
	v, err := parseLength(s)
	if err != nil && lp.err == nil {
		lp.err = fmt.Errorf("attribute %s: %w", name, err)
	}
	return v
}

// radii resolves the corner radii of a rect. A missing radius takes the
// value of the other one, and both are clamped to half the rect's size.
func (lp *lengthParser) radii(se xml.StartElement, w, h float64) (rx, ry float64) {
	hasRx, hasRy := attr(se, "rx") != "", attr(se, "ry") != ""
	rx, ry = lp.length(se, "rx"), lp.length(se, "ry")
	switch {
	case hasRx && !hasRy:
		ry = rx
	case hasRy && !hasRx:
		rx = ry
	}
	rx = math.Max(0, math.Min(rx, w/2))
	ry = math.Max(0, math.Min(ry, h/2))
	return rx, ry
}
