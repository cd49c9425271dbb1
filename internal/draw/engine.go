package draw

// EngineVersion is returned verbatim on every response. The determinism
// contract (§6) is scoped to this string: a caller reproducing a draw
// across engine versions expects byte-identical output only when this
// value matches too.
const EngineVersion = "1.0.0"

// Generate runs the engine's full pipeline (§2) over req and returns a
// fully wired, self-checked Response, or a structured *Error describing
// why the request could not be honored. Generate is a pure function: it
// owns no state across calls and performs no I/O.
//
// Orchestration follows the donor's TournamentService.GenerateFixtures
// step-numbered style, adapted from a transactional DB write pipeline to
// an in-memory build pipeline with a mandatory self-check before return.
func Generate(req Request) (*Response, error) {
	// Step 1: validate participants.
	if err := validateParticipants(req.Participants); err != nil {
		return nil, err
	}
	n := len(req.Participants)

	// Step 2: sizing.
	size, rounds, byes := computeSizing(n)

	// Step 3: validate rules and context against the computed size.
	if err := validateRules(req.Rules, size); err != nil {
		return nil, err
	}
	if err := validateEngineMode(req.Context); err != nil {
		return nil, err
	}

	// Step 4: seed derivation. The draw seed is carried through match-ID
	// derivation and repechage below as the sole source of
	// reproducibility; no PRNG stream is constructed from it because
	// placeParticipants resolves every tiebreak deterministically by
	// ascending slot index (see its doc comment) and never reaches for one.
	drawSeed := req.Context.DrawSeed
	if drawSeed == "" {
		derived, err := deriveDrawSeed(req.Context, req.Rules, req.Participants)
		if err != nil {
			return nil, internalInvariantViolation("seed derivation failed: %v", err)
		}
		drawSeed = derived
	}

	// Step 5: seeding.
	seeded, unseeded, serr := assignSeeds(req.Rules, req.Participants, size)
	if serr != nil {
		return nil, serr
	}

	// Step 6: placement.
	placement, perr := placeParticipants(req.Rules, seeded, unseeded, req.Participants, req.History, req.Context.DrawDate, size)
	if perr != nil {
		return nil, perr
	}

	// Step 7: match graph construction.
	matches := buildMainDraw(placement.slots, size, rounds, drawSeed)

	// Step 8: repechage construction.
	repechageMatches := buildRepechage(req.Context, matches, rounds, drawSeed)

	// Step 9: quality scoring.
	byID := make(map[string]Participant, n)
	for _, p := range req.Participants {
		byID[p.AthleteID] = p
	}
	seededIDs := make(map[string]bool, len(seeded))
	seedByAthlete := make(map[string]int, len(seeded))
	for _, se := range seeded {
		seededIDs[se.athleteID] = true
		seedByAthlete[se.athleteID] = se.seed
	}
	quality := computeQuality(matches, seededIDs, len(seeded), byID)

	// Step 10: assemble the response.
	slots := make([]ParticipantSlot, 0, n)
	for i, athleteID := range placement.slots {
		if athleteID == nil {
			continue
		}
		ps := ParticipantSlot{AthleteID: *athleteID, Slot: i + 1}
		if seed, ok := seedByAthlete[*athleteID]; ok {
			s := seed
			ps.Seed = &s
		}
		slots = append(slots, ps)
	}

	resp := &Response{
		EngineVersion: EngineVersion,
		Summary: Summary{
			Participants: n,
			Size:         size,
			Rounds:       rounds,
			Byes:         byes,
			Repechage:    req.Context.Repechage,
			Quality:      quality,
		},
		ParticipantsSlots: slots,
		Matches:           matches,
		RepechageMatches:  repechageMatches,
	}

	// Step 11: self-check. A failure here is this engine's own defect,
	// never the caller's — partial results are never returned (§7).
	if err := selfCheck(req, resp, size, byes); err != nil {
		return nil, err
	}

	return resp, nil
}

func validateParticipants(participants []Participant) *Error {
	if len(participants) == 0 {
		return invalidParticipants("at least one participant is required")
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.AthleteID == "" {
			return invalidParticipants("participant has an empty athlete_id")
		}
		if seen[p.AthleteID] {
			return invalidParticipants("duplicate athlete_id %q", p.AthleteID)
		}
		seen[p.AthleteID] = true
	}
	return nil
}

func validateRules(rules Rules, size int) *Error {
	switch rules.SeedingMode {
	case SeedingOff, SeedingAuto, SeedingManual, "":
	default:
		return invalidRules("unknown seeding_mode %q", rules.SeedingMode)
	}
	if rules.MaxSeeds < 0 {
		return invalidRules("max_seeds must be non-negative, got %d", rules.MaxSeeds)
	}
	if rules.MaxSeeds > size/2 {
		return invalidRules("max_seeds %d exceeds S/2 = %d", rules.MaxSeeds, size/2)
	}
	switch rules.ByesPolicy {
	case ByesPolicyPreferHighSeeds, "":
	default:
		return invalidRules("unknown byes_policy %q", rules.ByesPolicy)
	}
	for _, c := range rules.SeparateBy {
		if c != SeparateByClub && c != SeparateByNation {
			return invalidRules("unknown separate_by constraint %q", c)
		}
	}
	if rules.AvoidRematchDays < 0 {
		return invalidRules("avoid_rematch_days must be non-negative, got %d", rules.AvoidRematchDays)
	}
	return nil
}

func validateEngineMode(ctx Context) *Error {
	if ctx.EngineMode != "" && ctx.EngineMode != EngineModeDeterministic {
		return invalidRules("unsupported engine_mode %q", ctx.EngineMode)
	}
	return nil
}

// selfCheck verifies §8's structural invariants over a just-built response
// before Generate is allowed to return it.
func selfCheck(req Request, resp *Response, size, byes int) *Error {
	if len(resp.ParticipantsSlots) != len(req.Participants) {
		return internalInvariantViolation("expected %d filled slots, got %d", len(req.Participants), len(resp.ParticipantsSlots))
	}
	seen := make(map[string]bool, len(resp.ParticipantsSlots))
	for _, s := range resp.ParticipantsSlots {
		if seen[s.AthleteID] {
			return internalInvariantViolation("athlete %s appears in multiple slots", s.AthleteID)
		}
		seen[s.AthleteID] = true
	}
	for _, p := range req.Participants {
		if !seen[p.AthleteID] {
			return internalInvariantViolation("athlete %s missing from output slots", p.AthleteID)
		}
	}

	if resp.Summary.Size != size || resp.Summary.Byes != byes {
		return internalInvariantViolation("summary sizing does not match computed sizing")
	}
	if len(resp.Matches) != size-1 {
		return internalInvariantViolation("expected %d main-draw matches, got %d", size-1, len(resp.Matches))
	}

	byID := make(map[string]*Match, len(resp.Matches))
	for _, m := range resp.Matches {
		byID[m.ID] = m
	}
	for _, m := range resp.Matches {
		if m.AthleteRed != nil && m.AthleteWhite != nil && *m.AthleteRed == *m.AthleteWhite {
			return internalInvariantViolation("match %s pairs an athlete against itself", m.ID)
		}
		if m.MatchType == MatchTypeFinal {
			continue
		}
		if m.NextMatchID == nil {
			return internalInvariantViolation("non-final match %s has no next_match_id", m.ID)
		}
		next, ok := byID[*m.NextMatchID]
		if !ok {
			return internalInvariantViolation("match %s has an orphan next_match_id %s", m.ID, *m.NextMatchID)
		}
		if next.Round != m.Round+1 {
			return internalInvariantViolation("match %s next_match_id does not point into round+1", m.ID)
		}
	}

	q := resp.Summary.Quality
	if q.Score < 0 || q.Score > 100 {
		return internalInvariantViolation("quality score %d out of [0,100]", q.Score)
	}
	if q.SeedProtection < 0 || q.SeedProtection > 1 || q.ByeFairness < 0 || q.ByeFairness > 1 {
		return internalInvariantViolation("quality ratios out of [0,1]")
	}

	return nil
}
