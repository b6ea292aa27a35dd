package climb

// bfs explores cells in FIFO order. With unit edge weights the first time a
// cell is discovered is also its shortest distance, so each cell is lowered
// at most once and dequeued in non-decreasing distance order.
//
// Complexity: O(V + E) time, O(V) memory.
func (s *search) bfs() (int, error) {
	queue := make([]int, 0, len(s.dist))
	s.lower(s.source, 0)
	queue = append(queue, s.source)

	for head := 0; head < len(queue); head++ {
		if err := s.cancelled(); err != nil {
			return 0, err
		}

		u := queue[head]
		done, err := s.settle(u)
		if err != nil {
			return 0, err
		}
		if done {
			return s.dist[u], nil
		}

		next := s.dist[u] + 1
		for _, v := range s.successors(u) {
			// already discovered: its distance can only be ≤ next
			if s.dist[v] != Infinity {
				continue
			}
			s.lower(v, next)
			queue = append(queue, v)
		}
	}

	return 0, ErrUnreachable
}
