package draw

import (
	"fmt"
	"strings"
)

// seedPrefix is the first 8 hex characters of the draw seed used in match
// ids (§4.4), stripped of the "sha256:" self-description so ids stay
// compact regardless of whether the seed was derived or caller-supplied.
func seedPrefix(drawSeed string) string {
	s := strings.TrimPrefix(drawSeed, "sha256:")
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func strPtr(s string) *string { return &s }

// buildMainDraw emits round 1 from the filled slots, then rounds 2..R as
// empty parent matches, wiring next_match_id as each parent is built.
// Matches are emitted in strict round-major, position-minor order and
// match ids are minted in that same emission order, grounded on the
// donor's linkBracketProgression / cliffdoyle's round-by-round NextMatchID
// wiring: link while building, not in a second pass.
func buildMainDraw(slots []*string, size, rounds int, drawSeed string) []*Match {
	prefix := seedPrefix(drawSeed)
	counter := 0

	matches := make([]*Match, 0, size-1)
	prevRound := make([]*Match, size/2)
	for pos := 0; pos < size/2; pos++ {
		counter++
		red := slots[2*pos]
		white := slots[2*pos+1]
		matchType := MatchTypeMain
		if rounds == 1 {
			matchType = MatchTypeFinal
		}
		m := &Match{
			ID:           fmt.Sprintf("match-%d-%s", counter, prefix),
			MatchType:    matchType,
			Round:        1,
			Position:     pos + 1,
			AthleteRed:   red,
			AthleteWhite: white,
			IsBye:        red == nil || white == nil,
			Path:         fmt.Sprintf("R1:M%d", pos+1),
		}
		matches = append(matches, m)
		prevRound[pos] = m
	}

	for r := 2; r <= rounds; r++ {
		count := size >> uint(r)
		cur := make([]*Match, count)
		for pos := 0; pos < count; pos++ {
			counter++
			matchType := MatchTypeMain
			if r == rounds {
				matchType = MatchTypeFinal
			}
			m := &Match{
				ID:        fmt.Sprintf("match-%d-%s", counter, prefix),
				MatchType: matchType,
				Round:     r,
				Position:  pos + 1,
				Path:      fmt.Sprintf("R%d:M%d", r, pos+1),
			}
			matches = append(matches, m)
			cur[pos] = m

			left := prevRound[2*pos]
			right := prevRound[2*pos+1]
			left.NextMatchID = strPtr(m.ID)
			right.NextMatchID = strPtr(m.ID)
		}
		prevRound = cur
	}

	return matches
}
