package climb

import "container/heap"

// dijkstra pops the smallest tentative distance from a binary heap. Updated
// distances are pushed as new entries ("lazy decrease-key"); stale entries
// are skipped when popped because their cell is already visited.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func (s *search) dijkstra() (int, error) {
	pq := make(nodePQ, 0, len(s.dist))
	heap.Init(&pq)

	s.lower(s.source, 0)
	heap.Push(&pq, &nodeItem{idx: s.source, dist: 0})

	for pq.Len() > 0 {
		if err := s.cancelled(); err != nil {
			return 0, err
		}

		item := heap.Pop(&pq).(*nodeItem)
		u := item.idx
		// stale heap entry
		if s.visited[u] {
			continue
		}

		done, err := s.settle(u)
		if err != nil {
			return 0, err
		}
		if done {
			return s.dist[u], nil
		}

		next := s.dist[u] + 1
		for _, v := range s.successors(u) {
			if s.lower(v, next) {
				heap.Push(&pq, &nodeItem{idx: v, dist: next})
			}
		}
	}

	return 0, ErrUnreachable
}

// nodeItem is a heap entry: a row-major cell index and its distance when pushed.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index so pops are deterministic.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
