package dijkstra

import "fmt"

// PathTo rebuilds the vertex sequence source → … → target from the
// predecessor slice returned by Dijkstra with WithReturnPath.
//
// Returns ErrSourceOutOfRange / ErrTargetOutOfRange for indices outside
// prev, and ErrNoPath when target was not reached from source.
// Complexity: O(len(path)).
func PathTo(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source=%d, N=%d", ErrSourceOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target=%d, N=%d", ErrTargetOutOfRange, target, n)
	}

	path := []int{target}
	for v := target; v != source; {
		v = prev[v]
		// A chain longer than n can only come from a slice not built by Dijkstra.
		if v == NoPredecessor || v < 0 || v >= n || len(path) > n {
			return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
		}
		path = append(path, v)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
