package draw

import "fmt"

// buildRepechage implements §4.5's generic contract under the explicit
// minimum convention ("a single bronze match fed by the two main-draw
// semifinal losers"), since the data model's source_loser_match_id is a
// single reference per repechage match, not a pair.
//
// This is modeled as two chained nodes rather than one: a round-1
// "repechage" feeder consuming one semifinal's loser, whose winner then
// meets the other semifinal's loser directly in the terminal "bronze"
// match. That keeps every repechage match honoring "exactly one
// source_loser_match_id" while still seating both semifinal losers
// against each other for the single bronze medal this minimum contract
// awards. Full sport-specific repechage ladders (e.g. judo's two
// loser pools across every earlier round) are a documented extension
// this minimum contract intentionally does not implement.
func buildRepechage(ctx Context, mainMatches []*Match, rounds int, drawSeed string) []*RepechageMatch {
	if !ctx.Repechage || rounds < 2 {
		return nil
	}

	semiRound := rounds - 1
	var semiA, semiB *Match
	for _, m := range mainMatches {
		if m.Round != semiRound {
			continue
		}
		switch m.Position {
		case 1:
			semiA = m
		case 2:
			semiB = m
		}
	}
	if semiA == nil || semiB == nil {
		return nil
	}

	prefix := seedPrefix(drawSeed)
	feederID := fmt.Sprintf("repechage-1-%s", prefix)
	bronzeID := fmt.Sprintf("bronze-1-%s", prefix)

	feeder := &RepechageMatch{
		ID:                 feederID,
		MatchType:          MatchTypeRepechage,
		Round:              1,
		Position:           1,
		SourceLoserMatchID: semiB.ID,
		NextMatchID:        strPtr(bronzeID),
		Path:               "REP:R1:M1",
	}
	bronze := &RepechageMatch{
		ID:                 bronzeID,
		MatchType:          MatchTypeBronze,
		Round:              2,
		Position:           1,
		SourceLoserMatchID: semiA.ID,
		Path:               "REP:R2:M1",
	}
	return []*RepechageMatch{feeder, bronze}
}
