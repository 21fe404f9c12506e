// Package lyon provides a plane-sweep fill tessellator for 2D vector paths.
//
// The library converts closed planar paths, built from line and quadratic
// Bézier segments, into a stream of non-overlapping triangles suitable for
// GPU rasterization. Paths may self-intersect and may contain multiple
// contours; fill membership is decided by an even-odd or non-zero winding
// rule.
//
// # Packages
//
//   - [github.com/jianantian/lyon/point]: the 2D point primitive shared by
//     every other package.
//   - [github.com/jianantian/lyon/numeric]: epsilon-aware floating-point
//     comparisons.
//   - [github.com/jianantian/lyon/options]: functional options (epsilon
//     tolerance, fill rule).
//   - [github.com/jianantian/lyon/path]: path command storage, a builder,
//     and a parser for a subset of SVG path data.
//   - [github.com/jianantian/lyon/geometry]: the geometry-builder capability
//     the tessellator writes vertices and triangles through.
//   - [github.com/jianantian/lyon/fill]: the sweep-line fill tessellator
//     itself.
//
// # Coordinate system
//
// The sweep walks vertices in lexicographic (y, x) order, so y increases in
// the sweep direction. Paths produced for screen-space rendering (y-down)
// are swept top to bottom.
//
// # Algorithm
//
// The tessellator assembles path segments into a sorted event stream, then
// advances a sweep line across the event positions while maintaining an
// ordered list of active edges and a list of open monotone spans. Start,
// end, left, right, merge and split events mutate the span list; each span
// accumulates its boundary vertices in a monotone tessellator that emits
// triangles when the span closes.
package lyon
