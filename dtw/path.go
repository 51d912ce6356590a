package dtw

import "github.com/ieee0824/recitekit/internal/mathutil"

// backtrack recovers the optimal warping path through cost, starting at
// (n-1, m-1) and walking back to (0, 0). At each interior cell it moves to
// whichever neighbour has the lowest cost, breaking ties in a fixed order:
// diagonal before up before left. On an edge (i == 0 or j == 0) the only
// legal move is along that edge.
func backtrack(cost mathutil.FlatMat, n, m int) [][2]int {
	path := make([][2]int, 0, n+m)
	i, j := n-1, m-1
	path = append(path, [2]int{i, j})

	for i > 0 || j > 0 {
		switch {
		case i == 0:
			j--
		case j == 0:
			i--
		default:
			diag := cost.At(i-1, j-1)
			up := cost.At(i-1, j)
			left := cost.At(i, j-1)
			switch {
			case diag <= up && diag <= left:
				i--
				j--
			case up <= left:
				i--
			default:
				j--
			}
		}
		path = append(path, [2]int{i, j})
	}

	// path was built end-to-start; reverse it to run (0,0) -> (n-1,m-1).
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
