package squadron

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/napolitain/solver-squadron/internal/models"
)

// CalculationKey identifies a cached calculation
type CalculationKey struct {
	MissionID  int
	Attributes models.Attributes
}

func (k CalculationKey) String() string {
	return fmt.Sprintf("%d:%d/%d/%d", k.MissionID, k.Attributes.Physical, k.Attributes.Mental, k.Attributes.Tactical)
}

// Cache remembers calculation results for one squadron snapshot. It owns a
// single Solver so discovered training paths are shared by all missions,
// runs at most one calculation at a time, and collapses concurrent requests
// for the same mission and thresholds into one.
//
// Cache is safe for concurrent use. Returned results are shared and must
// not be modified.
type Cache struct {
	solver *Solver

	solveMu sync.Mutex // serializes solver use

	mu      sync.Mutex
	results map[CalculationKey]*CalculationResults

	group singleflight.Group
}

// NewCache creates a calculation cache for a squadron snapshot
func NewCache(state models.SquadronState, trainings []models.Training, opts ...Option) *Cache {
	return &Cache{
		solver:  NewSolver(state, trainings, opts...),
		results: make(map[CalculationKey]*CalculationResults),
	}
}

// State returns the squadron snapshot the cache calculates for
func (c *Cache) State() models.SquadronState {
	return c.solver.State()
}

// GetCalculation returns a finished calculation, false if there is none
func (c *Cache) GetCalculation(mission *models.Mission, attributes models.Attributes) (*CalculationResults, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	results, ok := c.results[CalculationKey{MissionID: mission.ID, Attributes: attributes}]
	return results, ok
}

// SetCalculation stores the results of a calculation
func (c *Cache) SetCalculation(mission *models.Mission, attributes models.Attributes, results *CalculationResults) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[CalculationKey{MissionID: mission.ID, Attributes: attributes}] = results
}

// Len returns the number of cached calculations
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}

// Calculate returns cached results for mission or computes them. If ctx is
// done first the caller stops waiting; the calculation still completes and
// is cached for the next caller.
func (c *Cache) Calculate(ctx context.Context, mission *models.Mission, attributes models.Attributes) (*CalculationResults, error) {
	if results, ok := c.GetCalculation(mission, attributes); ok {
		return results, nil
	}

	key := CalculationKey{MissionID: mission.ID, Attributes: attributes}
	ch := c.group.DoChan(key.String(), func() (any, error) {
		if results, ok := c.GetCalculation(mission, attributes); ok {
			return results, nil
		}

		c.solveMu.Lock()
		results := c.solver.Calculate(mission, attributes)
		c.solveMu.Unlock()

		c.SetCalculation(mission, attributes, results)
		return results, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*CalculationResults), nil
	}
}
