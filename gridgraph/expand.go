// SPDX-License-Identifier: MIT

package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/cellgrid/grid"
)

// ExpandIsland finds a minimum-conversion path of impassable cells to connect
// any cell in component srcComp to any cell in component dstComp, as indexed
// by ConnectedComponents(). Each impassable cell on the path costs 1.
// Returns the cells of the path (including the start and end land cells) and
// the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a passable cell   → cost 0
//     • moving into an impassable one → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(C·R·d) time, O(C·R) memory.
func (gg *Graph[T]) ExpandIsland(srcComp, dstComp int) (path []grid.Cell, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	n := gg.g.Len()
	isDst := make([]bool, n)
	for _, c := range comps[dstComp] {
		isDst[gg.index(c)] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 steps at the front, cost-1 steps at the back
	dq := list.New()
	for _, c := range comps[srcComp] {
		i := gg.index(c)
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if isDst[u] {
			target = u
			break
		}
		for _, nc := range gg.Neighbors(gg.cell(u)) {
			v := gg.index(nc)
			step := 0
			if !gg.Passable(nc) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, gg.cell(at))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist[target], nil
}
