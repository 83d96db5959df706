package converter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-squadron/internal/models"
	"github.com/napolitain/solver-squadron/internal/solver/squadron"
)

func testSquadron() models.SquadronConfig {
	members := make([]models.MemberConfig, 5)
	for i := range members {
		members[i] = models.MemberConfig{
			Name:     string(rune('A' + i)),
			Level:    50,
			Class:    "Archer",
			Race:     "Elezen",
			Physical: 30,
			Mental:   30,
			Tactical: 10,
		}
	}
	return models.SquadronConfig{
		Members: members,
		Bonus:   models.BonusConfig{Physical: 40, Mental: 40, Tactical: 40, Cap: 120},
	}
}

func TestSolveRequestState(t *testing.T) {
	req := &SolveRequest{Squadron: testSquadron(), MissionID: 1}

	state, err := req.State()
	require.NoError(t, err)
	require.Len(t, state.Members, 5)
	require.Equal(t, models.Elezen, state.Members[0].Race)
	require.Equal(t, models.Archer, state.Members[0].ClassJob)
	require.Equal(t, models.BonusAttributes{Physical: 40, Mental: 40, Tactical: 40, Cap: 120}, state.Bonus)
}

func TestSolveRequestStateInvalid(t *testing.T) {
	small := testSquadron()
	small.Members = small.Members[:3]
	_, err := (&SolveRequest{Squadron: small, MissionID: 1}).State()
	require.ErrorIs(t, err, models.ErrInvalidSquadron)

	offGrid := testSquadron()
	offGrid.Bonus.Physical = 30
	_, err = (&SolveRequest{Squadron: offGrid, MissionID: 1}).State()
	require.ErrorIs(t, err, models.ErrInvalidSquadron)
}

func TestMissionThresholds(t *testing.T) {
	mission := &models.Mission{
		ID:                 2,
		PossibleAttributes: []models.Attributes{{Physical: 120, Mental: 90, Tactical: 90}},
	}

	got, err := (&SolveRequest{}).MissionThresholds(mission)
	require.NoError(t, err)
	require.Equal(t, mission.PossibleAttributes[0], got)

	req := &SolveRequest{Thresholds: &AttributesJSON{Physical: 1, Mental: 2, Tactical: 3}}
	got, err = req.MissionThresholds(mission)
	require.NoError(t, err)
	require.Equal(t, models.Attributes{Physical: 1, Mental: 2, Tactical: 3}, got)

	_, err = (&SolveRequest{}).MissionThresholds(&models.Mission{ID: 3})
	require.Error(t, err)
}

func TestResultsToResponse(t *testing.T) {
	req := &SolveRequest{Squadron: testSquadron(), MissionID: 2}
	state, err := req.State()
	require.NoError(t, err)

	mission := &models.Mission{
		ID:                 2,
		Name:               "Supply Escort",
		Level:              20,
		PossibleAttributes: []models.Attributes{{Physical: 150, Mental: 150, Tactical: 150}},
	}
	thresholds, err := req.MissionThresholds(mission)
	require.NoError(t, err)

	results := squadron.NewSolver(*state, nil).Calculate(mission, thresholds)
	resp := ResultsToResponse(mission, thresholds, results)

	require.Equal(t, 2, resp.MissionID)
	require.Equal(t, "Supply Escort", resp.MissionName)
	require.False(t, resp.IsFlaggedMission)
	require.Equal(t, AttributesJSON{Physical: 150, Mental: 150, Tactical: 150}, resp.Thresholds)
	require.Len(t, resp.Results, 5)

	first := resp.Results[0]
	require.Equal(t, []string{"A", "B", "C", "D"}, first.Members)
	require.Equal(t, AttributesJSON{Physical: 160, Mental: 160, Tactical: 80}, first.Totals)
	require.Equal(t, 2, first.MatchingAttributes)
	require.Empty(t, first.Trainings)
	require.Equal(t, 66, first.SuccessProbability)
	require.Equal(t, 66, first.EstimatedSuccessRate)
	require.Equal(t, "66%, no training", first.Label)

	require.NotNil(t, resp.Best)
	require.Equal(t, first, *resp.Best)
}

func TestResultsToResponseEmpty(t *testing.T) {
	mission := &models.Mission{ID: 7, IsFlaggedMission: true}
	resp := ResultsToResponse(mission, models.Attributes{}, &squadron.CalculationResults{IsFlaggedMission: true})

	require.True(t, resp.IsFlaggedMission)
	require.NotNil(t, resp.Results)
	require.Empty(t, resp.Results)
	require.Nil(t, resp.Best)
}
