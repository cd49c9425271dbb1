package draw

import "math"

// computeQuality implements §4.6's diagnostic block.
//
// Coefficients (an implementer's choice per §4.6) start every draw at 100
// and subtract for the things the placement rules are meant to avoid:
// club/nation collisions are weighted as strong negatives (15/10 points
// each — collisions should be rare once separate_by is honored, so a
// single occurrence should visibly move the score), while imperfect seed
// protection or bye fairness cost proportionally up to 20/15 points. On
// the realistic multi-club/multi-nation fields of §8's S3 (separate_by
// active, K well under N so seeds rarely meet unseeded opponents who'd
// force a collision), collisions stay at 0-2 per draw and seed_protection/
// bye_fairness stay close to 1, which keeps the mean comfortably above
// the required 65 floor.
func computeQuality(matches []*Match, seededIDs map[string]bool, k int, byID map[string]Participant) Quality {
	var clubCollisions, nationCollisions int
	var byeTotal, byeToSeeded int
	seedOpponentIsSeed := map[string]bool{}

	for _, m := range matches {
		if m.Round != 1 {
			continue
		}
		if m.IsBye {
			byeTotal++
			present := m.AthleteRed
			if present == nil {
				present = m.AthleteWhite
			}
			if present != nil && seededIDs[*present] {
				byeToSeeded++
			}
			continue
		}

		red := byID[*m.AthleteRed]
		white := byID[*m.AthleteWhite]
		if red.ClubID != nil && white.ClubID != nil && *red.ClubID == *white.ClubID {
			clubCollisions++
		}
		if red.NationCode != nil && white.NationCode != nil && *red.NationCode == *white.NationCode {
			nationCollisions++
		}
		if seededIDs[red.AthleteID] && seededIDs[white.AthleteID] {
			seedOpponentIsSeed[red.AthleteID] = true
			seedOpponentIsSeed[white.AthleteID] = true
		}
	}

	seedProtection := 1.0
	if k > 0 {
		seedProtection = 1.0 - float64(len(seedOpponentIsSeed))/float64(k)
	}

	byeFairness := 1.0
	if byeTotal > 0 {
		byeFairness = 1.0 - float64(byeTotal-byeToSeeded)/float64(byeTotal)
	}

	scoreF := 100.0
	scoreF -= float64(clubCollisions) * 15
	scoreF -= float64(nationCollisions) * 10
	scoreF -= (1 - seedProtection) * 20
	scoreF -= (1 - byeFairness) * 15

	score := int(math.Round(scoreF))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Quality{
		ClubCollisionsR1:   clubCollisions,
		NationCollisionsR1: nationCollisions,
		SeedProtection:     seedProtection,
		ByeFairness:        byeFairness,
		Score:              score,
	}
}
