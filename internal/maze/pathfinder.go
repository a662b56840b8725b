package maze

import "image"

// Neighbour offsets in search order: left, right, up, down.
var directions = [4]image.Point{
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
}

// Solution is the outcome of a search.
type Solution struct {
	// Solved is true when the end cell was reached.
	Solved bool `json:"solved"`

	// Path lists the cells strictly between start and end in walking order.
	// Consecutive points are 4-adjacent. It is empty (never nil) when the maze
	// is unsolved, and also when start and end touch.
	Path []image.Point `json:"path"`

	// Steps counts the cells the search entered, including dead ends.
	Steps int `json:"steps"`
}

// Route returns the full walk from start to end, both inclusive. It returns
// nil for an unsolved maze.
func (s *Solution) Route(start, end image.Point) []image.Point {
	if !s.Solved {
		return nil
	}
	route := make([]image.Point, 0, len(s.Path)+2)
	route = append(route, start)
	route = append(route, s.Path...)
	return append(route, end)
}

// frame is one level of the explicit search stack.
type frame struct {
	pos   image.Point
	moves [4]image.Point
	n     int // number of valid entries in moves
	next  int // index of the next move to try
}

// PathFinder solves a maze by depth-first search with backtracking.
//
// It owns a working copy of the grid. While searching, cells on the current
// branch are marked TraversedPath and reverted to Path when the branch dead
// ends; after a successful search the winning route stays marked.
// A PathFinder is not safe for concurrent use.
type PathFinder struct {
	grid     *Grid
	path     []image.Point
	solved   bool
	steps    int
	solution *Solution
}

// NewPathFinder returns a PathFinder working on a copy of g.
func NewPathFinder(g *Grid) *PathFinder {
	return &PathFinder{grid: g.Clone()}
}

// Grid returns the working grid, including TraversedPath marks.
func (pf *PathFinder) Grid() *Grid {
	return pf.grid
}

// Solve runs the search once and returns its result. Later calls return the
// same Solution.
func (pf *PathFinder) Solve() *Solution {
	if pf.solution != nil {
		return pf.solution
	}

	g := pf.grid
	pf.path = append(pf.path[:0], g.start)
	stack := []frame{pf.expand(g.start)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.pos == g.end {
			pf.solved = true
			// Drop the end cell itself.
			pf.path = pf.path[:len(pf.path)-1]
			break
		}

		if top.next < top.n {
			next := top.moves[top.next]
			top.next++
			pf.enter(next)
			stack = append(stack, pf.expand(next))
			continue
		}

		// Every move from here dead ends.
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			pf.leave(top.pos)
		}
	}

	sol := &Solution{Solved: pf.solved, Path: []image.Point{}, Steps: pf.steps}
	if pf.solved {
		sol.Path = append(sol.Path, pf.path[1:]...)
	}
	pf.solution = sol
	return sol
}

// expand builds the frame for p, keeping only in-bounds neighbours that are
// still open at this moment.
func (pf *PathFinder) expand(p image.Point) frame {
	f := frame{pos: p}
	for _, d := range directions {
		q := p.Add(d)
		if pf.grid.InBounds(q) && pf.grid.Cell(q).walkable() {
			f.moves[f.n] = q
			f.n++
		}
	}
	return f
}

// enter marks p as part of the current branch and pushes it on the path.
// The end cell keeps its kind; reaching it stops the search.
func (pf *PathFinder) enter(p image.Point) {
	if pf.grid.Cell(p) == Path {
		pf.grid.set(p, TraversedPath)
	}
	pf.path = append(pf.path, p)
	pf.steps++
}

// leave undoes enter for a dead-end cell.
func (pf *PathFinder) leave(p image.Point) {
	if pf.grid.Cell(p) == TraversedPath {
		pf.grid.set(p, Path)
	}
	pf.path = pf.path[:len(pf.path)-1]
}

// Solve searches g without modifying it.
func Solve(g *Grid) *Solution {
	return NewPathFinder(g).Solve()
}
