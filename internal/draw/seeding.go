package draw

import "sort"

// canonicalSeedPositions returns, for a bracket of the given size, the
// 0-indexed slot occupied by seed k at result[k-1]. Built by the standard
// recursive single-elimination seeding construction (§4.2): at size 2,
// positions are [0,1]; doubling the bracket interleaves each existing
// position p with its mirror (2*len-1-p) so seed i never meets seed
// 2^r-i+1 before the final of its half.
func canonicalSeedPositions(size int) []int {
	positions := []int{0}
	for len(positions) < size {
		m := len(positions)
		next := make([]int, 0, m*2)
		for _, p := range positions {
			next = append(next, p, 2*m-1-p)
		}
		positions = next
	}
	return positions
}

// seedEntry pairs an athlete id with its assigned seed number.
type seedEntry struct {
	athleteID string
	seed      int
}

// assignSeeds implements §4.2's three seeding modes. It returns the seed
// assignments (possibly empty) and the unseeded participants in the order
// placement.go should consume them.
func assignSeeds(rules Rules, participants []Participant, size int) ([]seedEntry, []Participant, *Error) {
	switch rules.SeedingMode {
	case SeedingOff, "":
		return nil, sortedByID(participants), nil
	case SeedingManual:
		return assignManualSeeds(participants)
	case SeedingAuto:
		return assignAutoSeeds(rules, participants)
	default:
		return nil, nil, invalidRules("unknown seeding_mode %q", rules.SeedingMode)
	}
}

func sortedByID(participants []Participant) []Participant {
	out := make([]Participant, len(participants))
	copy(out, participants)
	sort.Slice(out, func(i, j int) bool { return out[i].AthleteID < out[j].AthleteID })
	return out
}

func assignManualSeeds(participants []Participant) ([]seedEntry, []Participant, *Error) {
	var seeded []seedEntry
	var unseeded []Participant
	seen := map[int]string{}
	k := 0
	for _, p := range participants {
		if p.Seed != nil {
			k++
		}
	}
	for _, p := range participants {
		if p.Seed == nil {
			unseeded = append(unseeded, p)
			continue
		}
		s := *p.Seed
		if s < 1 || s > k {
			return nil, nil, invalidSeeding("participant %s has out-of-range seed %d (expected 1..%d)", p.AthleteID, s, k)
		}
		if prior, dup := seen[s]; dup {
			return nil, nil, invalidSeeding("duplicate seed %d assigned to %s and %s", s, prior, p.AthleteID)
		}
		seen[s] = p.AthleteID
		seeded = append(seeded, seedEntry{athleteID: p.AthleteID, seed: s})
	}
	sort.Slice(seeded, func(i, j int) bool { return seeded[i].seed < seeded[j].seed })
	unseeded = sortedByID(unseeded)
	return seeded, unseeded, nil
}

// assignAutoSeeds caps the seed count at rules.SeedingThresholds (Min16 for
// fields of 16+, Lt16 below that). A zero-valued SeedingThresholds — the Go
// zero value, distinct from the source system's pydantic defaults of 8/4 —
// caps k at 0 and yields no seeds at all; callers that want auto-seeding
// must set thresholds explicitly.
func assignAutoSeeds(rules Rules, participants []Participant) ([]seedEntry, []Participant, *Error) {
	n := len(participants)
	t := rules.SeedingThresholds.Lt16
	if n >= 16 {
		t = rules.SeedingThresholds.Min16
	}
	k := rules.MaxSeeds
	if t < k {
		k = t
	}
	if n < k {
		k = n
	}
	if k < 0 {
		k = 0
	}

	ranked := make([]Participant, n)
	copy(ranked, participants)
	sort.Slice(ranked, func(i, j int) bool {
		ri, rj := rankingOf(ranked[i]), rankingOf(ranked[j])
		if ri != rj {
			return ri > rj
		}
		return ranked[i].AthleteID < ranked[j].AthleteID
	})

	seeded := make([]seedEntry, 0, k)
	for i := 0; i < k; i++ {
		seeded = append(seeded, seedEntry{athleteID: ranked[i].AthleteID, seed: i + 1})
	}
	// Unseeded participants are placed in the same auto-sort order
	// (ranking desc, athlete_id asc), not re-sorted by id alone.
	unseeded := make([]Participant, len(ranked)-k)
	copy(unseeded, ranked[k:])
	return seeded, unseeded, nil
}

func rankingOf(p Participant) int {
	if p.RankingPoints == nil {
		return 0
	}
	return *p.RankingPoints
}
