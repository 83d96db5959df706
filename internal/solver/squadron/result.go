package squadron

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-squadron/internal/models"
)

// ErrNoGoodSolution is returned by BestResult when no result is worth suggesting
var ErrNoGoodSolution = errors.New("no good solution found")

// MaxSuggestedTrainings is the most trainings a suggested result may need
const MaxSuggestedTrainings = 2

// CalculationResult is one roster paired with the bonus state it is evaluated under
type CalculationResult struct {
	Members []models.Member
	Bonus   models.BonusAttributes

	// Roster plus bonus scores
	Physical int
	Mental   int
	Tactical int

	// Trainings needed to reach Bonus from the squadron's current bonus
	Trainings           []models.Training
	TrainingsCalculated bool

	// Set once the result is selected for a mission
	Mission            *models.Mission
	Thresholds         models.Attributes
	MatchingAttributes int
}

func newCalculationResult(members []models.Member, bonus models.BonusAttributes) *CalculationResult {
	totals := models.SumAttributes(members).Add(bonus.Attributes())
	return &CalculationResult{
		Members:  members,
		Bonus:    bonus,
		Physical: totals.Physical,
		Mental:   totals.Mental,
		Tactical: totals.Tactical,
	}
}

// withMission tags the result with the mission it satisfies
func (r *CalculationResult) withMission(mission *models.Mission, thresholds models.Attributes, matching int) *CalculationResult {
	r.Mission = mission
	r.Thresholds = thresholds
	r.MatchingAttributes = matching
	return r
}

// Totals returns the roster plus bonus scores
func (r *CalculationResult) Totals() models.Attributes {
	return models.Attributes{Physical: r.Physical, Mental: r.Mental, Tactical: r.Tactical}
}

// TotalLevel returns the sum of member levels
func (r *CalculationResult) TotalLevel() int {
	total := 0
	for _, m := range r.Members {
		total += m.Level
	}
	return total
}

// NeedsTraining reports whether the bonus has to be changed first
func (r *CalculationResult) NeedsTraining() bool {
	return len(r.Trainings) > 0
}

// SuccessProbability is the coarse in-game success chance
func (r *CalculationResult) SuccessProbability() int {
	if r.MatchingAttributes == 3 {
		return 100
	}
	return 66
}

// Label summarizes the result, e.g. "100%, no training"
func (r *CalculationResult) Label() string {
	if len(r.Trainings) == 0 {
		return fmt.Sprintf("%d%%, no training", r.SuccessProbability())
	}
	return fmt.Sprintf("%d%%", r.SuccessProbability())
}

// EstimatedSuccessRate refines SuccessProbability with how far the totals
// exceed the thresholds.
func (r *CalculationResult) EstimatedSuccessRate() int {
	required := r.MatchingAttributes
	if r.Mission != nil {
		required = r.Mission.RequiredMatches()
	}
	return EstimateSuccessRate(r.Totals(), r.Thresholds, required)
}

// EstimateSuccessRate returns 60% plus a third of the summed surplus over
// the thresholds (capped at 100) when enough axes match, 50 otherwise.
func EstimateSuccessRate(totals, thresholds models.Attributes, required int) int {
	if totals.Matches(thresholds) < required {
		return 50
	}

	surplus := max(0, totals.Physical-thresholds.Physical) +
		max(0, totals.Mental-thresholds.Mental) +
		max(0, totals.Tactical-thresholds.Tactical)

	return min(100, 60+surplus/3)
}

// CalculationResults is everything the solver found for one mission
type CalculationResults struct {
	IsFlaggedMission bool
	Results          []*CalculationResult
}

// Best returns the result to suggest, see BestResult
func (c *CalculationResults) Best() (*CalculationResult, error) {
	return BestResult(c.Results)
}

// BestResult picks among full rosters the first result needing no
// training, then the first needing at most MaxSuggestedTrainings.
func BestResult(results []*CalculationResult) (*CalculationResult, error) {
	for _, r := range results {
		if len(r.Members) == models.RosterSize && len(r.Trainings) == 0 {
			return r, nil
		}
	}
	for _, r := range results {
		if len(r.Members) == models.RosterSize && len(r.Trainings) <= MaxSuggestedTrainings {
			return r, nil
		}
	}
	return nil, ErrNoGoodSolution
}
