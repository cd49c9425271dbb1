package draw

import (
	"math"
	"time"
)

// placementResult is the filled slot array plus a lookup of which slots
// hold seeds (used later by quality.go).
type placementResult struct {
	slots      []*string
	seedBySlot map[int]int
}

// pairKey is an unordered athlete pair, used as a faced-pairs set key.
// Grounded on sazarkin-major-pickems-sim's Faced adjacency table: build the
// set once from history, then do O(1) lookups during placement instead of
// scanning recent_pairs per candidate slot.
type pairKey struct{ a, b string }

func pairKeyFor(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// placeParticipants implements §4.3: seeds go to their canonical slots
// first, then unseeded participants are placed one at a time into the
// empty slot with the lowest penalty, with no backtracking. Ties go first
// to a slot that is not opposite a seed, then to the lowest slot index.
func placeParticipants(rules Rules, seeded []seedEntry, unseeded []Participant, all []Participant, history History, drawDate string, size int) (*placementResult, *Error) {
	byID := make(map[string]Participant, len(all))
	for _, p := range all {
		byID[p.AthleteID] = p
	}

	slots := make([]*string, size)
	seedBySlot := make(map[int]int, len(seeded))

	positions := canonicalSeedPositions(size)
	for _, se := range seeded {
		if se.seed < 1 || se.seed > len(positions) {
			return nil, invalidSeeding("seed %d exceeds bracket capacity %d", se.seed, len(positions))
		}
		slot := positions[se.seed-1]
		id := se.athleteID
		slots[slot] = &id
		seedBySlot[slot] = se.seed
	}

	penalties := rules.Penalties
	if penalties == nil {
		d := DefaultPenalties()
		penalties = &d
	}

	faced := buildFacedSet(history, drawDate, rules.AvoidRematchDays)
	nationHalved := nationEntropyBelowThreshold(all)
	separateClub := hasConstraint(rules.SeparateBy, SeparateByClub)
	separateNation := hasConstraint(rules.SeparateBy, SeparateByNation)

	for _, p := range unseeded {
		bestSlot := -1
		bestPenalty := math.MaxInt64
		bestOppSeed := 1 // worst (opposite a seed); 0 is preferred
		for s := 0; s < size; s++ {
			if slots[s] != nil {
				continue
			}
			pen := penaltyFor(p, s, slots, byID, faced, penalties, separateClub, separateNation, nationHalved)
			oppSeed := 0
			if opp := s ^ 1; opp < len(slots) {
				if _, isSeed := seedBySlot[opp]; isSeed {
					oppSeed = 1
				}
			}
			// bye_fairness / §4.3: never place opposite a seed if a
			// non-seed-opposite slot ties or beats it on penalty; only
			// a strict penalty improvement overrides that preference.
			if pen < bestPenalty || (pen == bestPenalty && oppSeed < bestOppSeed) {
				bestPenalty = pen
				bestOppSeed = oppSeed
				bestSlot = s
			}
		}
		if bestSlot == -1 {
			return nil, internalInvariantViolation("no empty slot available for participant %s", p.AthleteID)
		}
		id := p.AthleteID
		slots[bestSlot] = &id
	}

	return &placementResult{slots: slots, seedBySlot: seedBySlot}, nil
}

// penaltyFor computes penalty(p,s) per §4.3. Slots are scanned in
// ascending order by placeParticipants, so among equal-penalty slots with
// the same seed-opposite status the first one encountered is the lowest
// index, giving the slot-index tiebreak for free.
func penaltyFor(p Participant, s int, slots []*string, byID map[string]Participant, faced map[pairKey]bool, penalties *Penalties, separateClub, separateNation, nationHalved bool) int {
	opp := s ^ 1
	if opp >= len(slots) || slots[opp] == nil {
		return 0
	}
	q := byID[*slots[opp]]

	penalty := 0
	if separateClub && p.ClubID != nil && q.ClubID != nil && *p.ClubID == *q.ClubID {
		penalty += penalties.SameClubR1
	}
	if separateNation && p.NationCode != nil && q.NationCode != nil && *p.NationCode == *q.NationCode {
		term := penalties.SameNationR1
		if nationHalved {
			term /= 2
		}
		penalty += term
	}
	if faced[pairKeyFor(p.AthleteID, q.AthleteID)] {
		penalty += penalties.RematchRecent
	}
	return penalty
}

// buildFacedSet resolves history.recent_pairs within avoid_rematch_days of
// drawDate into a lookup set. When avoid_rematch_days is 0 the set is empty,
// so the rematch penalty never applies. When drawDate can't be parsed (no
// anchor to window against), all recorded pairs are treated as recent.
func buildFacedSet(history History, drawDate string, avoidDays int) map[pairKey]bool {
	faced := make(map[pairKey]bool, len(history.RecentPairs))
	if avoidDays <= 0 {
		return faced
	}
	anchor, err := time.Parse("2006-01-02", drawDate)
	useWindow := err == nil
	for _, rp := range history.RecentPairs {
		if useWindow {
			d, err := time.Parse("2006-01-02", rp.Date)
			if err != nil {
				continue
			}
			days := anchor.Sub(d).Hours() / 24
			if days < 0 || days > float64(avoidDays) {
				continue
			}
		}
		faced[pairKeyFor(rp.A, rp.B)] = true
	}
	return faced
}

// nationEntropyBelowThreshold implements §4.3's adaptive rule: the
// same-nation penalty is halved when the field's nation distribution has
// Shannon entropy under 1 bit, i.e. the field is intrinsically dominated
// by one or two nations.
func nationEntropyBelowThreshold(participants []Participant) bool {
	counts := map[string]int{}
	total := 0
	for _, p := range participants {
		if p.NationCode == nil {
			continue
		}
		counts[*p.NationCode]++
		total++
	}
	if total == 0 {
		return false
	}
	entropy := 0.0
	for _, c := range counts {
		pr := float64(c) / float64(total)
		entropy -= pr * math.Log2(pr)
	}
	return entropy < 1.0
}

func hasConstraint(list []SeparationConstraint, want SeparationConstraint) bool {
	for _, c := range list {
		if c == want {
			return true
		}
	}
	return false
}
