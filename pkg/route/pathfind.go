package route

import "container/heap"

// Cost model for the A* search. The turn penalty dominates the base step
// cost so paths prefer long straight runs with few 90 degree bends, the way
// a drafter would wire a schematic by hand.
const (
	baseCost       = 1
	turnPenalty    = 5
	distanceWeight = 1

	// maxIterations caps the search; hitting it triggers the L-shaped
	// fallback so routing always produces a path.
	maxIterations = 2000
)

// direction indexes the four orthogonal moves.
type direction int8

const dirNone direction = -1

var dirDeltas = [4]Cell{
	{0, -1}, // up
	{1, 0},  // right
	{0, 1},  // down
	{-1, 0}, // left
}

// FindPath searches for a minimum-cost orthogonal path from start to end.
// Blocked cells are impassable except end itself: pins sit on a component
// border, which is inside its own obstacle mask, so the goal must stay
// reachable. Cells outside bounds are pruned.
//
// The result is never empty. If the frontier empties or the iteration cap
// is hit, a naive L-shaped path is returned instead, ignoring obstacles.
// Ties in the frontier break by insertion order, so the search is fully
// deterministic for fixed inputs.
func FindPath(start, end Cell, field Field, bounds Bounds) []Cell {
	if start == end {
		return []Cell{start}
	}

	gScore := map[Cell]int{start: 0}
	cameFrom := make(map[Cell]Cell)
	visited := make(map[Cell]bool)

	var seq int
	pq := &pathQueue{}
	heap.Init(pq)
	heap.Push(pq, &pathItem{cell: start, dir: dirNone, f: heuristic(start, end)})

	for iter := 0; pq.Len() > 0; iter++ {
		if iter >= maxIterations {
			return fallbackPath(start, end)
		}

		item := heap.Pop(pq).(*pathItem)
		cur := item.cell

		if cur == end {
			return simplify(reconstruct(cameFrom, start, end))
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true

		for d, delta := range dirDeltas {
			next := Cell{cur.X + delta.X, cur.Y + delta.Y}
			if visited[next] || !bounds.Contains(next) {
				continue
			}
			if next != end && field.Blocked(next) {
				continue
			}

			step := baseCost
			if item.dir != dirNone && direction(d) != item.dir {
				step += turnPenalty
			}
			g := gScore[cur] + step
			if old, ok := gScore[next]; !ok || g < old {
				gScore[next] = g
				cameFrom[next] = cur
				seq++
				heap.Push(pq, &pathItem{
					cell: next,
					dir:  direction(d),
					f:    g + heuristic(next, end),
					seq:  seq,
				})
			}
		}
	}

	return fallbackPath(start, end)
}

// heuristic is the Manhattan distance scaled by the distance weight. It
// never overestimates while the base step cost is at least the weight.
func heuristic(a, b Cell) int {
	return distanceWeight * (abs(a.X-b.X) + abs(a.Y-b.Y))
}

// reconstruct walks the came-from links back from end and reverses.
func reconstruct(cameFrom map[Cell]Cell, start, end Cell) []Cell {
	var path []Cell
	for c := end; ; {
		path = append(path, c)
		if c == start {
			break
		}
		prev, ok := cameFrom[c]
		if !ok {
			break
		}
		c = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// simplify drops interior points collinear with both neighbors, reducing a
// staircase of unit steps to its bend points. The first and last point are
// always kept.
func simplify(path []Cell) []Cell {
	if len(path) <= 2 {
		return path
	}
	out := path[:1]
	for i := 1; i < len(path)-1; i++ {
		a, b, c := path[i-1], path[i], path[i+1]
		if (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y) {
			continue
		}
		out = append(out, b)
	}
	return append(out, path[len(path)-1])
}

// fallbackPath is the horizontal-then-vertical L between two cells. It
// ignores obstacles; overlapping a body is the accepted cost of never
// failing to produce a wire.
func fallbackPath(start, end Cell) []Cell {
	if start.X == end.X || start.Y == end.Y {
		return []Cell{start, end}
	}
	return []Cell{start, {end.X, start.Y}, end}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// pathItem is a frontier entry in the A* priority queue.
type pathItem struct {
	cell  Cell
	dir   direction // direction of the move that reached cell
	f     int       // g + heuristic
	seq   int       // insertion order, breaks f ties deterministically
	index int
}

// pathQueue implements heap.Interface over pathItems.
type pathQueue []*pathItem

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *pathQueue) Push(x interface{}) {
	item := x.(*pathItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}
