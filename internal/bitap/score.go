package bitap

// Score computes the bitap location/distance score for a candidate offset
// x given pattern length m, error count e, preferred location loc, and
// decay parameter distance. Exported because spec.md §8's invariants 3-5
// are stated directly in terms of this function.
//
//   accuracy  = e / m
//   proximity = |x - loc|
//   distance == 0: accuracy when proximity == 0, else 1.0
//   otherwise:     accuracy + proximity / distance
func Score(m, e, x, loc, distance int) float64 {
	accuracy := float64(e) / float64(m)
	proximity := absInt(x - loc)

	if distance == 0 {
		if proximity != 0 {
			return 1.0
		}
		return accuracy
	}

	return accuracy + float64(proximity)/float64(distance)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
