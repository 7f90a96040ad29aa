package id3

// binIndexFor returns the bin a numeric value falls into given an ascending
// threshold list: the first bin i (0 <= i < len(thresholds)) whose
// threshold strictly exceeds value, or the last bin len(thresholds) if no
// threshold does. This single rule implements both the induction-time
// per-bin partitioning (spec.md §4.5) and the classify driver's numeric
// branch selection (spec.md §4.7), so both call this helper instead of
// duplicating the comparison.
func binIndexFor(thresholds []int, value int) int {
	for i, th := range thresholds {
		if value < th {
			return i
		}
	}
	return len(thresholds)
}
