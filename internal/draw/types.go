// Package draw implements the deterministic single-elimination bracket
// draw engine: sizing, seeding, constraint-aware placement, match graph
// and repechage construction, and quality scoring.
//
// Generate is a pure function: same Request in, byte-identical Response
// out, no package-level state, no I/O.
package draw

// SeedingMode controls how seeds 1..K are assigned to participants.
type SeedingMode string

const (
	SeedingOff    SeedingMode = "off"
	SeedingAuto   SeedingMode = "auto"
	SeedingManual SeedingMode = "manual"
)

// SeparationConstraint names a field pairs of round-1 opponents should not share.
type SeparationConstraint string

const (
	SeparateByClub   SeparationConstraint = "club"
	SeparateByNation SeparationConstraint = "nation"
)

// ByesPolicy controls how byes are distributed across the bracket.
type ByesPolicy string

const ByesPolicyPreferHighSeeds ByesPolicy = "prefer_high_seeds"

// EngineMode is the only supported execution mode for Generate.
type EngineMode string

const EngineModeDeterministic EngineMode = "deterministic"

// MatchType distinguishes main-draw matches from the repechage sub-graph.
type MatchType string

const (
	MatchTypeMain       MatchType = "main"
	MatchTypeFinal      MatchType = "final"
	MatchTypeRepechage  MatchType = "repechage"
	MatchTypeBronze     MatchType = "bronze"
)

// Participant is an entrant in the draw, identified by AthleteID.
type Participant struct {
	AthleteID     string                 `json:"athlete_id"`
	ClubID        *string                `json:"club_id,omitempty"`
	NationCode    *string                `json:"nation_code,omitempty"`
	RankingPoints *int                   `json:"ranking_points,omitempty"`
	Seed          *int                   `json:"seed,omitempty"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// SeedingThresholds caps how many seeds auto-seeding assigns by field size.
type SeedingThresholds struct {
	Min16 int `json:"min_16"`
	Lt16  int `json:"lt_16"`
}

// Penalties weights the placement penalty terms of §4.3. A nil *Penalties
// on Rules means "use the spec defaults"; an explicit zero field disables
// that term.
type Penalties struct {
	SameClubR1    int `json:"same_club_r1"`
	SameNationR1  int `json:"same_nation_r1"`
	RematchRecent int `json:"rematch_recent"`
}

// DefaultPenalties returns the spec §4.3 default weights.
func DefaultPenalties() Penalties {
	return Penalties{
		SameClubR1:    1000,
		SameNationR1:  600,
		RematchRecent: 400,
	}
}

// Rules configures seeding, separation, and placement behavior.
type Rules struct {
	SeedingMode       SeedingMode            `json:"seeding_mode"`
	MaxSeeds          int                    `json:"max_seeds"`
	SeedingThresholds SeedingThresholds      `json:"seeding_thresholds"`
	SeparateBy        []SeparationConstraint `json:"separate_by"`
	AvoidRematchDays  int                    `json:"avoid_rematch_days"`
	ByesPolicy        ByesPolicy             `json:"byes_policy"`
	Penalties         *Penalties             `json:"penalties,omitempty"`
}

// Context names the event and carries the draw seed.
type Context struct {
	Sport      string     `json:"sport"`
	Format     string     `json:"format"`
	Repechage  bool       `json:"repechage"`
	DrawSeed   string     `json:"draw_seed,omitempty"`
	EngineMode EngineMode `json:"engine_mode,omitempty"`
	// DrawDate (YYYY-MM-DD) anchors avoid_rematch_days. When it is unset or
	// cannot be parsed, every recorded pair counts as recent.
	DrawDate string `json:"draw_date,omitempty"`
}

// RecentPair is one historical meeting between two athletes.
type RecentPair struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Date string `json:"date"`
}

// History supplies prior meetings for the rematch-avoidance penalty.
type History struct {
	RecentPairs []RecentPair `json:"recent_pairs"`
}

// Request is the full input to Generate.
type Request struct {
	Context      Context       `json:"context"`
	Rules        Rules         `json:"rules"`
	Participants []Participant `json:"participants"`
	History      History       `json:"history"`
}

// ParticipantSlot is one row of the response's slot assignment.
type ParticipantSlot struct {
	AthleteID string `json:"athlete_id"`
	Slot      int    `json:"slot"`
	Seed      *int   `json:"seed,omitempty"`
}

// Match is a main-draw node: a played or to-be-played pairing.
type Match struct {
	ID            string    `json:"id"`
	MatchType     MatchType `json:"match_type"`
	Round         int       `json:"round"`
	Position      int       `json:"position"`
	AthleteRed    *string   `json:"athlete_red,omitempty"`
	AthleteWhite  *string   `json:"athlete_white,omitempty"`
	IsBye         bool      `json:"is_bye"`
	NextMatchID   *string   `json:"next_match_id,omitempty"`
	Path          string    `json:"path"`
}

// RepechageMatch is a node in the repechage sub-graph.
type RepechageMatch struct {
	ID                 string    `json:"id"`
	MatchType          MatchType `json:"match_type"`
	Round              int       `json:"round"`
	Position           int       `json:"position"`
	SourceLoserMatchID string    `json:"source_loser_match_id"`
	NextMatchID        *string   `json:"next_match_id,omitempty"`
	Path               string    `json:"path"`
}

// Quality is the diagnostic scoring block of §4.6.
type Quality struct {
	ClubCollisionsR1   int     `json:"club_collisions_r1"`
	NationCollisionsR1 int     `json:"nation_collisions_r1"`
	SeedProtection     float64 `json:"seed_protection"`
	ByeFairness        float64 `json:"bye_fairness"`
	Score              int     `json:"score"`
}

// Summary is the top-level sizing + quality digest.
type Summary struct {
	Participants int     `json:"participants"`
	Size         int     `json:"size"`
	Rounds       int     `json:"rounds"`
	Byes         int     `json:"byes"`
	Repechage    bool    `json:"repechage"`
	Quality      Quality `json:"quality"`
}

// Response is the full, self-contained output of Generate.
type Response struct {
	EngineVersion      string            `json:"engine_version"`
	Summary            Summary           `json:"summary"`
	ParticipantsSlots  []ParticipantSlot `json:"participants_slots"`
	Matches            []*Match          `json:"matches"`
	RepechageMatches   []*RepechageMatch `json:"repechage_matches"`
}
