package main

// Fixture is one scheduled match within a round
type Fixture struct {
	Home *Club
	Away *Club
}

// Round is the set of fixtures played in one week
type Round []Fixture

// generateFixtureList builds a double round robin for one division using the
// circle method: one slot stays fixed while the rest rotate each round, and
// the pairing folds the line in half. The second cycle reverses venues. An
// odd club count gets a synthetic bye slot that produces no fixture.
func generateFixtureList(clubs []*Club) []Round {
	slots := make([]*Club, len(clubs))
	copy(slots, clubs)
	if len(slots)%2 == 1 {
		slots = append(slots, nil) // bye
	}
	n := len(slots)

	var fixtures []Round
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for cycle := 0; cycle < 2; cycle++ {
		for r := 0; r < n-1; r++ {
			var round Round
			for j := 0; j < n/2; j++ {
				t1, t2 := indices[j], indices[n-1-j]
				if slots[t1] == nil || slots[t2] == nil {
					continue
				}
				if cycle == 0 {
					round = append(round, Fixture{Home: slots[t1], Away: slots[t2]})
				} else {
					round = append(round, Fixture{Home: slots[t2], Away: slots[t1]})
				}
			}
			fixtures = append(fixtures, round)

			// Rotate: fix slot 0, move the last index into position 1
			last := indices[n-1]
			copy(indices[2:], indices[1:n-1])
			indices[1] = last
		}
	}
	return fixtures
}
