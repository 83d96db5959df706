package squadron

import (
	"io"
	"log"
	"strings"

	"github.com/napolitain/solver-squadron/internal/models"
)

// Logger receives solver progress messages
type Logger interface {
	Printf(format string, v ...any)
}

var discardLogger Logger = log.New(io.Discard, "", 0)

// Option configures a Solver
type Option func(*Solver)

// WithLogger sends progress messages to logger
func WithLogger(logger Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Solver finds rosters, and if needed bonus trainings, that satisfy a
// mission. Rosters, candidate bonus states and discovered training paths
// are computed once per Solver and reused by every Calculate call.
//
// A Solver is not safe for concurrent use.
type Solver struct {
	state      models.SquadronState
	trainings  []models.Training
	rosters    [][]models.Member
	candidates []models.BonusAttributes
	paths      *TrainingPaths
	logger     Logger
}

// NewSolver creates a solver for a squadron snapshot and training catalog
func NewSolver(state models.SquadronState, trainings []models.Training, opts ...Option) *Solver {
	s := &Solver{
		state:     state,
		trainings: trainings,
		logger:    discardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rosters = MemberCombinations(state.Members, models.RosterSize)
	for _, roster := range s.rosters {
		s.logger.Printf("Squadron member combination: %s → %v",
			strings.Join(models.MemberNames(roster), " "), models.SumAttributes(roster))
	}

	s.candidates = CandidateBonusStates(state.Bonus)
	s.paths = NewTrainingPaths(state.Bonus, trainings, s.logger)

	return s
}

// State returns the squadron snapshot the solver was built from
func (s *Solver) State() models.SquadronState {
	return s.state
}

// Rosters returns the distinct rosters considered
func (s *Solver) Rosters() [][]models.Member {
	return s.rosters
}

// CandidateBonusStates returns the alternative bonus states considered
func (s *Solver) CandidateBonusStates() []models.BonusAttributes {
	return s.candidates
}

// Paths returns the solver's training path search
func (s *Solver) Paths() *TrainingPaths {
	return s.paths
}

// Calculate solves mission against one of its threshold triples
func (s *Solver) Calculate(mission *models.Mission, thresholds models.Attributes) *CalculationResults {
	return &CalculationResults{
		IsFlaggedMission: mission.IsFlaggedMission,
		Results:          s.SolveFor(mission, thresholds, mission.RequiredMatches()),
	}
}

// SolveFor returns the rosters meeting at least requiredMatches thresholds.
//
// Rosters that succeed with the current bonus are returned without
// training. Otherwise the candidate bonus states are tried in order and the
// first one that is reachable by training and lets some roster succeed
// provides the results; later states are not examined.
func (s *Solver) SolveFor(mission *models.Mission, thresholds models.Attributes, requiredMatches int) []*CalculationResult {
	var results []*CalculationResult
	for _, r := range s.evaluate(mission.Level, s.state.Bonus) {
		matching := r.Totals().Matches(thresholds)
		if matching < requiredMatches {
			continue
		}
		r.TrainingsCalculated = true
		results = append(results, r.withMission(mission, thresholds, matching))
	}
	if len(results) > 0 {
		return results
	}

	for _, bonus := range s.candidates {
		if trained := s.solveWithBonus(mission, thresholds, requiredMatches, bonus); len(trained) > 0 {
			return trained
		}
	}

	return nil
}

// solveWithBonus evaluates every roster under bonus and attaches the
// training path once a roster qualifies.
func (s *Solver) solveWithBonus(mission *models.Mission, thresholds models.Attributes, requiredMatches int, bonus models.BonusAttributes) []*CalculationResult {
	var (
		results   []*CalculationResult
		trainings []models.Training
		searched  bool
	)

	for _, r := range s.evaluate(mission.Level, bonus) {
		matching := r.Totals().Matches(thresholds)
		if matching < requiredMatches {
			continue
		}

		if !searched {
			var ok bool
			trainings, ok = s.paths.Find(bonus)
			if !ok {
				return nil
			}
			searched = true
		}

		r.Trainings = trainings
		r.TrainingsCalculated = true
		results = append(results, r.withMission(mission, thresholds, matching))
	}

	return results
}

// evaluate pairs every roster that has a member of at least requiredLevel with bonus
func (s *Solver) evaluate(requiredLevel int, bonus models.BonusAttributes) []*CalculationResult {
	results := make([]*CalculationResult, 0, len(s.rosters))
	for _, roster := range s.rosters {
		if maxLevel(roster) < requiredLevel {
			continue
		}
		results = append(results, newCalculationResult(roster, bonus))
	}
	return results
}
