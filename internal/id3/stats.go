package id3

// TreeStats summarizes a classifier's shape for the training report
// (spec §4.12): total node count, leaf count, and how many leaves are the
// "unknown" sentinel.
type TreeStats struct {
	Nodes         int
	Leaves        int
	UnknownLeaves int
}

// Stats walks cls and computes TreeStats.
func Stats(cls *Classifier) TreeStats {
	var s TreeStats
	walkStats(cls, &s)
	return s
}

func walkStats(cls *Classifier, s *TreeStats) {
	s.Nodes++
	if cls.IsLeaf() {
		s.Leaves++
		if cls.ID == UnknownLeaf {
			s.UnknownLeaves++
		}
		return
	}
	for _, child := range cls.Children {
		walkStats(child, s)
	}
}
