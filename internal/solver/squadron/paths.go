package squadron

import (
	"slices"

	"github.com/napolitain/solver-squadron/internal/models"
)

// MaxTrainingRounds bounds how many breadth-first rounds a TrainingPaths
// runs over its whole lifetime.
const MaxTrainingRounds = 10

// TrainingPaths finds the shortest training sequences from a fixed start
// bonus state. Discovered states and the frontier are kept between calls,
// so later lookups continue where earlier ones stopped.
//
// A TrainingPaths is not safe for concurrent use.
type TrainingPaths struct {
	start    models.BonusAttributes
	catalog  []models.Training
	known    map[models.BonusAttributes][]models.Training
	frontier []models.BonusAttributes
	rounds   int
	logger   Logger
}

// NewTrainingPaths creates a path search rooted at start. The catalog order
// decides which of several equally short paths is kept.
func NewTrainingPaths(start models.BonusAttributes, catalog []models.Training, logger Logger) *TrainingPaths {
	if logger == nil {
		logger = discardLogger
	}
	return &TrainingPaths{
		start:    start,
		catalog:  catalog,
		known:    map[models.BonusAttributes][]models.Training{start: {}},
		frontier: []models.BonusAttributes{start},
		logger:   logger,
	}
}

// Start returns the bonus state every path begins at
func (p *TrainingPaths) Start() models.BonusAttributes {
	return p.start
}

// Rounds returns how many rounds have been expanded so far
func (p *TrainingPaths) Rounds() int {
	return p.rounds
}

// Known returns the number of bonus states discovered so far, start included
func (p *TrainingPaths) Known() int {
	return len(p.known)
}

// Find returns the shortest training sequence from the start state to
// target. The second result is false when the target was not reached
// within MaxTrainingRounds or the reachable states ran out.
func (p *TrainingPaths) Find(target models.BonusAttributes) ([]models.Training, bool) {
	if path, ok := p.known[target]; ok {
		return slices.Clone(path), true
	}

	p.logger.Printf("Trying to find steps from %v to %v", p.start, target)

	for p.rounds < MaxTrainingRounds {
		if p.expand() == 0 {
			break
		}
		if path, ok := p.known[target]; ok {
			p.logger.Printf("Found steps to reach %v: %v", target, models.TrainingNames(path))
			return slices.Clone(path), true
		}
	}

	return nil, false
}

// expand runs one breadth-first round and returns the number of new states
func (p *TrainingPaths) expand() int {
	p.rounds++
	p.logger.Printf("Calculating training step %d from currently %d training combinations", p.rounds, len(p.known))

	next := make([]models.BonusAttributes, 0, len(p.frontier))
	for _, from := range p.frontier {
		base := p.known[from]
		for _, t := range p.catalog {
			to := from.ApplyTraining(t)
			if !to.Valid() {
				continue
			}
			if _, seen := p.known[to]; seen {
				continue
			}

			path := make([]models.Training, len(base)+1)
			copy(path, base)
			path[len(base)] = t

			p.known[to] = path
			next = append(next, to)
		}
	}
	p.frontier = next

	p.logger.Printf("Finished calculating, we now have %d training combinations", len(p.known))
	return len(next)
}
