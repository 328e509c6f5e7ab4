package trailnet

// Difficulty is the closed three-value trail classification.
type Difficulty uint16

const (
	DIFFICULTY_EASY = Difficulty(iota + 1)
	DIFFICULTY_MODERATE
	DIFFICULTY_HARD
)

func (iotaIdx Difficulty) String() string {
	return [...]string{"Easy", "Moderate", "Hard"}[iotaIdx-1]
}

var (
	sacScaleEasyTags = map[string]struct{}{
		"hiking":          {},
		"mountain_hiking": {},
	}

	sacScaleModerateTags = map[string]struct{}{
		"demanding_mountain_hiking": {},
		"alpine_hiking":             {},
	}

	visibilityEasyTags = map[string]struct{}{
		"excellent": {},
		"good":      {},
	}

	surfaceEasyTags = map[string]struct{}{
		"paved":         {},
		"asphalt":       {},
		"concrete":      {},
		"paving_stones": {},
		"gravel":        {},
		"fine_gravel":   {},
		"compacted":     {},
	}

	surfaceModerateTags = map[string]struct{}{
		"dirt":  {},
		"earth": {},
		"grass": {},
	}
)

// estimateDifficulty resolves trail difficulty from resolved tags and length.
// Rules are evaluated in fixed priority order: sac_scale, trail_visibility,
// surface, length. A trail with no usable tags and no length is Moderate.
func estimateDifficulty(tags map[string]string, lengthMiles float64) Difficulty {
	if sacScale := tags["sac_scale"]; sacScale != "" {
		if _, ok := sacScaleEasyTags[sacScale]; ok {
			return DIFFICULTY_EASY
		}
		if _, ok := sacScaleModerateTags[sacScale]; ok {
			return DIFFICULTY_MODERATE
		}
		return DIFFICULTY_HARD
	}
	if visibility := tags["trail_visibility"]; visibility != "" {
		if _, ok := visibilityEasyTags[visibility]; ok {
			return DIFFICULTY_EASY
		}
		if visibility == "intermediate" {
			return DIFFICULTY_MODERATE
		}
		return DIFFICULTY_HARD
	}
	if surface := tags["surface"]; surface != "" {
		if _, ok := surfaceEasyTags[surface]; ok {
			return DIFFICULTY_EASY
		}
		if _, ok := surfaceModerateTags[surface]; ok {
			return DIFFICULTY_MODERATE
		}
		return DIFFICULTY_HARD
	}
	if lengthMiles > 0 {
		if lengthMiles < 2 {
			return DIFFICULTY_EASY
		}
		if lengthMiles < 5 {
			return DIFFICULTY_MODERATE
		}
		return DIFFICULTY_HARD
	}
	return DIFFICULTY_MODERATE
}
