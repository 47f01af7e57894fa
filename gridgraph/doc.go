// SPDX-License-Identifier: MIT

// Package gridgraph treats the cells of a spatial grid.Grid as a graph, enabling
// region analysis and minimal-cost "island" bridging on tilemaps.
//
// What:
//
//   - Graph[T] wraps a *grid.Grid[T] with a caller predicate that decides which
//     cell values are passable ("land").
//   - Identifies connected components (islands) of passable cells.
//   - Finds the components touching a physical query rectangle, seeded from the
//     grid's overlap query so only the rectangle's cells start a search.
//   - Computes minimal conversions (0-1 BFS) to connect two components.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Culling: which regions are visible under a camera rectangle.
//
// Complexity:
//
//   - ConnectedComponents: O(C×R×d), Memory: O(C×R)   (d = 4 or 8 neighbours).
//   - ComponentsInRect:    O(k + S×d), Memory: O(C×R) (k cells under the rect,
//     S cells in the touched components).
//   - ExpandIsland:        O(C×R×d), Memory: O(C×R).
//
// Options:
//
//   - Options.Conn: Conn4 (orthogonal) or Conn8 (with diagonals).
//
// Errors:
//
//   - ErrNilGrid: New was given a nil grid.
//   - ErrNilPredicate: New was given a nil passability predicate.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//
// The predicate is evaluated on demand, so results always reflect the grid's
// current cell values.
package gridgraph
