package draw

import (
	"encoding/json"
	"math/rand"
	"testing"
)

func intPtr(i int) *int { return &i }

func participants(ids ...string) []Participant {
	out := make([]Participant, len(ids))
	for i, id := range ids {
		out[i] = Participant{AthleteID: id}
	}
	return out
}

func mustGenerate(t *testing.T, req Request) *Response {
	t.Helper()
	resp, err := Generate(req)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	return resp
}

// checkInvariants verifies the §8 invariants that hold for any valid
// response, independent of the scenario that produced it.
func checkInvariants(t *testing.T, req Request, resp *Response) {
	t.Helper()

	n := len(req.Participants)
	if len(resp.ParticipantsSlots) != n {
		t.Fatalf("invariant 1: got %d slots, want %d", len(resp.ParticipantsSlots), n)
	}
	seen := map[string]bool{}
	for _, s := range resp.ParticipantsSlots {
		if seen[s.AthleteID] {
			t.Fatalf("invariant 1: %s appears more than once", s.AthleteID)
		}
		seen[s.AthleteID] = true
	}
	for _, p := range req.Participants {
		if !seen[p.AthleteID] {
			t.Fatalf("invariant 1: input participant %s missing from output", p.AthleteID)
		}
	}

	wantSize, wantRounds, wantByes := computeSizing(n)
	if resp.Summary.Size != wantSize || resp.Summary.Rounds != wantRounds || resp.Summary.Byes != wantByes {
		t.Fatalf("invariant 2: summary = (%d,%d,%d), want (%d,%d,%d)",
			resp.Summary.Size, resp.Summary.Rounds, resp.Summary.Byes, wantSize, wantRounds, wantByes)
	}

	if len(resp.Matches) != wantSize-1 {
		t.Fatalf("invariant 3: got %d matches, want %d", len(resp.Matches), wantSize-1)
	}

	byID := map[string]*Match{}
	for _, m := range resp.Matches {
		byID[m.ID] = m
	}
	for _, m := range resp.Matches {
		if m.AthleteRed != nil && m.AthleteWhite != nil && *m.AthleteRed == *m.AthleteWhite {
			t.Fatalf("invariant 5: match %s pairs %s against itself", m.ID, *m.AthleteRed)
		}
		if m.MatchType == MatchTypeFinal {
			continue
		}
		if m.NextMatchID == nil {
			t.Fatalf("invariant 4: non-final match %s has no next_match_id", m.ID)
		}
		next, ok := byID[*m.NextMatchID]
		if !ok {
			t.Fatalf("invariant 4: match %s has orphan next_match_id", m.ID)
		}
		if next.Round != m.Round+1 {
			t.Fatalf("invariant 4: match %s next_match_id not in round+1", m.ID)
		}
	}

	q := resp.Summary.Quality
	if q.Score < 0 || q.Score > 100 {
		t.Fatalf("invariant 8: score %d out of bounds", q.Score)
	}
	if q.SeedProtection < 0 || q.SeedProtection > 1 || q.ByeFairness < 0 || q.ByeFairness > 1 {
		t.Fatalf("invariant 8: ratios out of bounds (%v, %v)", q.SeedProtection, q.ByeFairness)
	}
}

// S1: determinism under a fixed draw seed.
func TestGenerate_Determinism(t *testing.T) {
	ids := make([]string, 16)
	for i := range ids {
		ids[i] = rune1(i)
	}
	req := Request{
		Context: Context{Sport: "judo", Format: "single_elim", DrawSeed: "dod_test_seed_12345"},
		Rules: Rules{
			SeedingMode:       SeedingAuto,
			MaxSeeds:          8,
			SeedingThresholds: SeedingThresholds{Min16: 8, Lt16: 4},
		},
		Participants: participants(ids...),
	}

	var prev string
	for i := 0; i < 5; i++ {
		resp := mustGenerate(t, req)
		b, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if i > 0 && string(b) != prev {
			t.Fatalf("run %d differs from run 0", i)
		}
		prev = string(b)
		checkInvariants(t, req, resp)
	}
}

func rune1(i int) string {
	return string(rune('a'+i%26)) + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}

// S4: minimum input (N=2).
func TestGenerate_MinimumInput(t *testing.T) {
	req := Request{
		Context:      Context{Sport: "judo", Format: "single_elim"},
		Rules:        Rules{SeedingMode: SeedingOff},
		Participants: participants("a", "b"),
	}
	resp := mustGenerate(t, req)
	checkInvariants(t, req, resp)

	if len(resp.Matches) != 1 {
		t.Fatalf("expected exactly 1 match, got %d", len(resp.Matches))
	}
	m := resp.Matches[0]
	if m.MatchType != MatchTypeFinal || m.Round != 1 {
		t.Fatalf("expected a round-1 final match, got type=%s round=%d", m.MatchType, m.Round)
	}
	if len(resp.RepechageMatches) != 0 {
		t.Fatalf("expected no repechage matches for N=2, got %d", len(resp.RepechageMatches))
	}
}

// S5: N=3, S=4, the lone bye must attach to seed 1's own pairing.
func TestGenerate_ByeAttachesToTopSeed(t *testing.T) {
	req := Request{
		Context: Context{Sport: "judo", Format: "single_elim"},
		Rules: Rules{
			SeedingMode:       SeedingAuto,
			MaxSeeds:          1,
			SeedingThresholds: SeedingThresholds{Min16: 8, Lt16: 1},
		},
		Participants: []Participant{
			{AthleteID: "seed1", RankingPoints: intPtr(100)},
			{AthleteID: "alice"},
			{AthleteID: "bob"},
		},
	}
	resp := mustGenerate(t, req)
	checkInvariants(t, req, resp)

	var seed1Match *Match
	for _, m := range resp.Matches {
		if m.Round != 1 {
			continue
		}
		if (m.AthleteRed != nil && *m.AthleteRed == "seed1") || (m.AthleteWhite != nil && *m.AthleteWhite == "seed1") {
			seed1Match = m
		}
	}
	if seed1Match == nil {
		t.Fatalf("could not find seed1's round-1 match")
	}
	if !seed1Match.IsBye {
		t.Fatalf("expected seed1's round-1 match to be a bye, it was not")
	}
}

// S6: 4 participants, two sharing a club, must be separated in round 1 when
// a legal arrangement exists.
func TestGenerate_ClubSeparation(t *testing.T) {
	club := "club-x"
	req := Request{
		Context: Context{Sport: "judo", Format: "single_elim"},
		Rules: Rules{
			SeedingMode: SeedingOff,
			SeparateBy:  []SeparationConstraint{SeparateByClub},
		},
		Participants: []Participant{
			{AthleteID: "a", ClubID: &club},
			{AthleteID: "b", ClubID: &club},
			{AthleteID: "c"},
			{AthleteID: "d"},
		},
	}
	resp := mustGenerate(t, req)
	checkInvariants(t, req, resp)

	for _, m := range resp.Matches {
		if m.Round != 1 || m.IsBye {
			continue
		}
		if m.AthleteRed != nil && m.AthleteWhite != nil && *m.AthleteRed == "a" && *m.AthleteWhite == "b" {
			t.Fatalf("a and b were not separated in round 1")
		}
		if m.AthleteRed != nil && m.AthleteWhite != nil && *m.AthleteRed == "b" && *m.AthleteWhite == "a" {
			t.Fatalf("a and b were not separated in round 1")
		}
	}
	if resp.Summary.Quality.ClubCollisionsR1 != 0 {
		t.Fatalf("expected zero club collisions, got %d", resp.Summary.Quality.ClubCollisionsR1)
	}
}

// Repechage minimum contract: two semifinal losers feed exactly one bronze
// match via a single chained feeder.
func TestGenerate_RepechageMinimumContract(t *testing.T) {
	req := Request{
		Context:      Context{Sport: "judo", Format: "single_elim", Repechage: true},
		Rules:        Rules{SeedingMode: SeedingOff},
		Participants: participants("a", "b", "c", "d", "e", "f", "g", "h"),
	}
	resp := mustGenerate(t, req)
	checkInvariants(t, req, resp)

	if len(resp.RepechageMatches) != 2 {
		t.Fatalf("expected 2 repechage entities (feeder + bronze), got %d", len(resp.RepechageMatches))
	}
	var bronze *RepechageMatch
	for _, rm := range resp.RepechageMatches {
		if rm.MatchType == MatchTypeBronze {
			bronze = rm
		}
	}
	if bronze == nil {
		t.Fatalf("no bronze match emitted")
	}
	if bronze.NextMatchID != nil {
		t.Fatalf("bronze match must be terminal, got next_match_id = %v", *bronze.NextMatchID)
	}
}

func TestGenerate_InvalidParticipants(t *testing.T) {
	cases := []struct {
		name string
		req  Request
	}{
		{"empty", Request{Rules: Rules{SeedingMode: SeedingOff}}},
		{"duplicate id", Request{
			Rules:        Rules{SeedingMode: SeedingOff},
			Participants: participants("a", "a"),
		}},
		{"empty id", Request{
			Rules:        Rules{SeedingMode: SeedingOff},
			Participants: []Participant{{AthleteID: ""}},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Generate(c.req)
			if err == nil {
				t.Fatalf("expected an error, got nil")
			}
			de, ok := err.(*Error)
			if !ok || de.Kind != KindInvalidParticipants {
				t.Fatalf("expected KindInvalidParticipants, got %v", err)
			}
		})
	}
}

func TestGenerate_ManualSeedingDuplicate(t *testing.T) {
	req := Request{
		Rules: Rules{SeedingMode: SeedingManual},
		Participants: []Participant{
			{AthleteID: "a", Seed: intPtr(1)},
			{AthleteID: "b", Seed: intPtr(1)},
		},
	}
	_, err := Generate(req)
	if err == nil {
		t.Fatalf("expected an error for duplicate manual seed")
	}
	de, ok := err.(*Error)
	if !ok || de.Kind != KindInvalidSeeding {
		t.Fatalf("expected KindInvalidSeeding, got %v", err)
	}
}

func TestGenerate_MaxSeedsExceedsCapacity(t *testing.T) {
	req := Request{
		Rules:        Rules{SeedingMode: SeedingAuto, MaxSeeds: 8, SeedingThresholds: SeedingThresholds{Lt16: 8}},
		Participants: participants("a", "b"),
	}
	_, err := Generate(req)
	if err == nil {
		t.Fatalf("expected an error when max_seeds exceeds S/2")
	}
	de, ok := err.(*Error)
	if !ok || de.Kind != KindInvalidRules {
		t.Fatalf("expected KindInvalidRules, got %v", err)
	}
}

// S3: mean quality score over 50 realistic multi-club fields (8/16/24/32
// participants, 4 clubs x 6 nations) stays above the 65 floor
// computeQuality's coefficients are tuned against.
func TestGenerate_QualityFloorOverMultiClubFields(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	clubs := []string{"c1", "c2", "c3", "c4"}
	nations := []string{"n1", "n2", "n3", "n4", "n5", "n6"}
	fieldSizes := []int{8, 16, 24, 32}

	const fields = 50

	var total int
	for f := 0; f < fields; f++ {
		fieldSize := fieldSizes[f%len(fieldSizes)]
		parts := make([]Participant, fieldSize)
		for i := 0; i < fieldSize; i++ {
			club := clubs[src.Intn(len(clubs))]
			nation := nations[src.Intn(len(nations))]
			parts[i] = Participant{
				AthleteID:     "p" + itoa(f) + "_" + itoa(i),
				ClubID:        &club,
				NationCode:    &nation,
				RankingPoints: intPtr(src.Intn(1000)),
			}
		}
		req := Request{
			Context: Context{Sport: "judo", Format: "single_elim"},
			Rules: Rules{
				SeedingMode:       SeedingAuto,
				MaxSeeds:          fieldSize / 4,
				SeedingThresholds: SeedingThresholds{Min16: 8, Lt16: 4},
				SeparateBy:        []SeparationConstraint{SeparateByClub, SeparateByNation},
			},
			Participants: parts,
		}
		resp := mustGenerate(t, req)
		checkInvariants(t, req, resp)
		total += resp.Summary.Quality.Score
	}

	mean := float64(total) / float64(fields)
	if mean < 65 {
		t.Fatalf("mean quality score over %d multi-club fields = %.2f, want >= 65", fields, mean)
	}
}

// S2-style stability sweep: many field sizes, no crashes, invariants hold.
func TestGenerate_StabilitySweep(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	clubs := []string{"c1", "c2", "c3", "c4"}
	nations := []string{"n1", "n2", "n3", "n4", "n5", "n6"}

	for _, n := range []int{4, 5, 7, 8, 12, 16, 24, 32, 64, 128} {
		parts := make([]Participant, n)
		for i := 0; i < n; i++ {
			club := clubs[src.Intn(len(clubs))]
			nation := nations[src.Intn(len(nations))]
			parts[i] = Participant{
				AthleteID:     "p" + itoa(i),
				ClubID:        &club,
				NationCode:    &nation,
				RankingPoints: intPtr(src.Intn(1000)),
			}
		}
		req := Request{
			Context: Context{Sport: "judo", Format: "single_elim", Repechage: true},
			Rules: Rules{
				SeedingMode:       SeedingAuto,
				MaxSeeds:          n / 2,
				SeedingThresholds: SeedingThresholds{Min16: 8, Lt16: 4},
				SeparateBy:        []SeparationConstraint{SeparateByClub, SeparateByNation},
			},
			Participants: parts,
		}
		resp, err := Generate(req)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		checkInvariants(t, req, resp)
	}
}
