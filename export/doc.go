// Package export renders an evaluated complex as GeoJSON for drawing layers.
//
// The output is a single FeatureCollection:
//   - one Point feature per vertex, with property "index";
//   - one LineString feature per edge, with properties "i" and "j";
//   - one Polygon feature per triangle, with properties "i", "j" and "k".
//
// Vertices come first, then edges, then triangles, each group in the
// Result's lexicographic order, so the encoding is stable across runs. The
// collection carries a bbox over the vertices and the foreign members
// "kind" and "radius".
//
// Coordinates are planar and written as-is; no projection is implied.
package export
