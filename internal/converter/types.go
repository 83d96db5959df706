// Package converter provides conversions between wire messages and model types
package converter

import (
	"fmt"

	"github.com/napolitain/solver-squadron/internal/models"
	"github.com/napolitain/solver-squadron/internal/solver/squadron"
)

// AttributesJSON is the wire form of models.Attributes
type AttributesJSON struct {
	Physical int `json:"physical"`
	Mental   int `json:"mental"`
	Tactical int `json:"tactical"`
}

// BonusJSON is the wire form of models.BonusAttributes
type BonusJSON struct {
	Physical int `json:"physical"`
	Mental   int `json:"mental"`
	Tactical int `json:"tactical"`
	Cap      int `json:"cap"`
}

// SolveRequest asks for the rosters that can take a mission
type SolveRequest struct {
	Squadron  models.SquadronConfig `json:"squadron"`
	MissionID int                   `json:"missionId"`

	// Optional, defaults to the mission's first threshold triple
	Thresholds *AttributesJSON `json:"thresholds,omitempty"`
}

// ResultJSON is one roster suggestion
type ResultJSON struct {
	Members              []string       `json:"members"`
	Bonus                BonusJSON      `json:"bonus"`
	Totals               AttributesJSON `json:"totals"`
	MatchingAttributes   int            `json:"matchingAttributes"`
	Trainings            []string       `json:"trainings"`
	SuccessProbability   int            `json:"successProbability"`
	EstimatedSuccessRate int            `json:"estimatedSuccessRate"`
	Label                string         `json:"label"`
}

// SolveResponse is everything found for one mission
type SolveResponse struct {
	MissionID        int            `json:"missionId"`
	MissionName      string         `json:"missionName"`
	IsFlaggedMission bool           `json:"isFlaggedMission"`
	Thresholds       AttributesJSON `json:"thresholds"`
	Best             *ResultJSON    `json:"best,omitempty"`
	Results          []ResultJSON   `json:"results"`
}

// AttributesToJSON converts model Attributes to their wire form
func AttributesToJSON(a models.Attributes) AttributesJSON {
	return AttributesJSON{Physical: a.Physical, Mental: a.Mental, Tactical: a.Tactical}
}

// Model converts wire attributes back to models.Attributes
func (a AttributesJSON) Model() models.Attributes {
	return models.Attributes{Physical: a.Physical, Mental: a.Mental, Tactical: a.Tactical}
}

// BonusToJSON converts model BonusAttributes to their wire form
func BonusToJSON(b models.BonusAttributes) BonusJSON {
	return BonusJSON{Physical: b.Physical, Mental: b.Mental, Tactical: b.Tactical, Cap: b.Cap}
}

// State validates the request's squadron and converts it to a SquadronState
func (r *SolveRequest) State() (*models.SquadronState, error) {
	if err := models.ValidateSquadronConfig(&r.Squadron); err != nil {
		return nil, err
	}
	if len(r.Squadron.Members) < models.RosterSize {
		return nil, fmt.Errorf("%w: %d members, a mission needs %d",
			models.ErrInvalidSquadron, len(r.Squadron.Members), models.RosterSize)
	}
	return models.SquadronConfigToState(&r.Squadron), nil
}

// MissionThresholds returns the requested thresholds, or the mission's first triple
func (r *SolveRequest) MissionThresholds(mission *models.Mission) (models.Attributes, error) {
	if r.Thresholds != nil {
		return r.Thresholds.Model(), nil
	}
	thresholds, ok := mission.DefaultAttributes()
	if !ok {
		return models.Attributes{}, fmt.Errorf("mission %d has no attribute requirements", mission.ID)
	}
	return thresholds, nil
}

// ResultToJSON converts a calculation result to its wire form
func ResultToJSON(r *squadron.CalculationResult) ResultJSON {
	trainings := models.TrainingNames(r.Trainings)
	return ResultJSON{
		Members:              models.MemberNames(r.Members),
		Bonus:                BonusToJSON(r.Bonus),
		Totals:               AttributesToJSON(r.Totals()),
		MatchingAttributes:   r.MatchingAttributes,
		Trainings:            trainings,
		SuccessProbability:   r.SuccessProbability(),
		EstimatedSuccessRate: r.EstimatedSuccessRate(),
		Label:                r.Label(),
	}
}

// ResultsToResponse builds the response for a solved mission
func ResultsToResponse(mission *models.Mission, thresholds models.Attributes, results *squadron.CalculationResults) *SolveResponse {
	resp := &SolveResponse{
		MissionID:        mission.ID,
		MissionName:      mission.Name,
		IsFlaggedMission: results.IsFlaggedMission,
		Thresholds:       AttributesToJSON(thresholds),
		Results:          make([]ResultJSON, 0, len(results.Results)),
	}

	for _, r := range results.Results {
		resp.Results = append(resp.Results, ResultToJSON(r))
	}

	if best, err := results.Best(); err == nil {
		b := ResultToJSON(best)
		resp.Best = &b
	}

	return resp
}
