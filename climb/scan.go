package climb

// scan is the textbook rendition: every iteration walks all unvisited cells
// to find the smallest tentative distance. If that minimum is Infinity the
// destination is unreachable. Ties resolve to the lowest row-major index.
//
// Complexity: O(V²) time, O(V) memory. Useful as a reference on small grids.
func (s *search) scan() (int, error) {
	s.lower(s.source, 0)
	unvisited := len(s.dist)

	for unvisited > 0 {
		if err := s.cancelled(); err != nil {
			return 0, err
		}

		u, best := -1, Infinity
		for i, d := range s.dist {
			if !s.visited[i] && d < best {
				u, best = i, d
			}
		}
		if u < 0 {
			break
		}

		done, err := s.settle(u)
		if err != nil {
			return 0, err
		}
		if done {
			return best, nil
		}
		unvisited--

		for _, v := range s.successors(u) {
			s.lower(v, best+1)
		}
	}

	return 0, ErrUnreachable
}
