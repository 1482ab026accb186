package searcher

import "time"

// Metrics describes one Search call.
type Metrics struct {
	Difficulty int
	Nodes      int           // positions visited, including the root's children
	Prunes     int           // beta cutoffs taken
	Truncated  bool          // a budget deadline cut the search short
	Elapsed    time.Duration
}
