// Package drawpath implements an SVG-compatible path engine: a builder for 2D
// paths, a parser for SVG path data, cubic Bézier approximation of elliptical
// arcs, affine transforms, and curve-exact bounding boxes.
//
// # The path model
//
// A [Path] stores its geometry as two parallel buffers: a sequence of
// [Command] values and a flat slice of float64 parameters. Only four commands
// exist in the model:
//
//   - [MoveToKind] (2 parameters: x, y)
//   - [LineToKind] (2 parameters: x, y)
//   - [CurveToKind] (6 parameters: two control points and an end point)
//   - [ClosePathKind] (no parameters)
//
// Every higher-level operation funnels into these. Quadratic curves are
// degree-raised to cubics, arcs and ellipses are approximated by cubics, and
// the relative, shorthand and smooth commands of SVG path data are resolved to
// absolute coordinates while parsing. Iterating the commands while advancing a
// cursor into the parameters by [Command.Arity] reconstructs every segment;
// [Path.Elements] does exactly that.
//
// The zero value of Path is an empty path ready for use.
//
// # Building paths
//
// Paths are built either by calling builder methods such as [Path.MoveTo],
// [Path.LineTo], [Path.BezierCurveTo], [Path.Arc] and [Path.ArcTo], or by
// parsing path data with [ParseSVGPath]. Builder methods tolerate degenerate
// input rather than failing: drawing on an empty path implicitly starts a
// subpath, zero-sized rectangles are skipped, and arcs with zero radius or
// collinear tangent points fall back to straight lines.
//
// # Arc approximation
//
// Elliptical arcs are split into steps of at most a quarter turn. Whole
// quarter turns use a fixed control point ratio of 0.547443256150549; the
// final partial step uses the fitted polynomial
// (0.3294738052815987 + 0.012120855841304373·θ)·θ. The constants are part of
// the output format: two implementations using them produce identical
// parameters for identical input.
//
// # Geometry
//
// [Path.Dimension] and [Path.Bounds] report the tight axis-aligned bounding
// box of a path, solving for the interior extrema of every cubic segment
// instead of using the hull of its control points.
// [Path.DimensionWithTransform] does the same for the path as seen through an
// [Affine] transform, without modifying the path. [Path.Transform] applies a
// transform in place.
//
// # Serialization
//
// [Path.String] returns the path as canonical SVG path data, using absolute M,
// L, C and Z commands only. The string is cached and only rebuilt after the
// path changes. [Path.Stripes] and [Path.FromStripes] convert between paths
// and "stripes", flat slices holding one subpath each as a start point
// followed by cubic segments; lines and closing segments are expressed as
// cubics with control points at the thirds.
//
// # Concurrency
//
// Paths are not safe for concurrent mutation. Use [Path.Clone] to hand
// independent copies to different goroutines.
package drawpath
