package draw

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// ResolveDrawSeed returns req.Context.DrawSeed verbatim if set, otherwise
// derives it per §4.1. Callers that need to know the seed a Generate call
// will use (e.g. to key a persisted record) can call this first, since
// Generate itself returns no draw_seed field on Response.
func ResolveDrawSeed(req Request) (string, error) {
	if req.Context.DrawSeed != "" {
		return req.Context.DrawSeed, nil
	}
	return deriveDrawSeed(req.Context, req.Rules, req.Participants)
}

// deriveDrawSeed computes the canonical draw seed for a request whose
// context.draw_seed is empty, per §4.1: canonicalize (sport, format, rules,
// participants), SHA-256 it, and prefix the hex digest with "sha256:".
func deriveDrawSeed(ctx Context, rules Rules, participants []Participant) (string, error) {
	canon, err := canonicalize(ctx, rules, participants)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}

// canonicalize produces a stable byte form: participants sorted by
// athlete_id, then the whole tuple round-tripped through a generic
// map/slice representation so encoding/json's key sort gives
// lexicographically ordered object keys with no insignificant whitespace.
func canonicalize(ctx Context, rules Rules, participants []Participant) ([]byte, error) {
	sorted := make([]Participant, len(participants))
	copy(sorted, participants)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AthleteID < sorted[j].AthleteID
	})

	tuple := struct {
		Sport        string        `json:"sport"`
		Format       string        `json:"format"`
		Rules        Rules         `json:"rules"`
		Participants []Participant `json:"participants"`
	}{
		Sport:        ctx.Sport,
		Format:       ctx.Format,
		Rules:        rules,
		Participants: sorted,
	}

	raw, err := json.Marshal(tuple)
	if err != nil {
		return nil, err
	}

	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	// json.Marshal sorts map[string]interface{} keys lexicographically,
	// which is what gives this round trip its canonical-form guarantee.
	return json.Marshal(generic)
}
