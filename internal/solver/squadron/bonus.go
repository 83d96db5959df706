package squadron

import "github.com/napolitain/solver-squadron/internal/models"

// AllBonusStates returns every distribution of cap points across the three
// axes in steps of models.BonusStep, with tactical taking the remainder.
func AllBonusStates(cap int) []models.BonusAttributes {
	if cap < 0 {
		return nil
	}

	var states []models.BonusAttributes
	for physical := 0; physical <= cap; physical += models.BonusStep {
		for mental := 0; mental <= cap-physical; mental += models.BonusStep {
			states = append(states, models.BonusAttributes{
				Physical: physical,
				Mental:   mental,
				Tactical: cap - physical - mental,
				Cap:      cap,
			})
		}
	}
	return states
}

// CandidateBonusStates returns the bonus states under current's cap other than current itself
func CandidateBonusStates(current models.BonusAttributes) []models.BonusAttributes {
	all := AllBonusStates(current.Cap)
	candidates := make([]models.BonusAttributes, 0, len(all))
	for _, b := range all {
		if b != current {
			candidates = append(candidates, b)
		}
	}
	return candidates
}
