package loader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-squadron/internal/models"
)

func TestLoadMissionsFromFile(t *testing.T) {
	missions, err := LoadMissionsFromFile("testdata")
	require.NoError(t, err)
	require.Len(t, missions, 2, "row 0 is skipped")

	// Sorted by id
	require.Equal(t, 2, missions[0].ID)
	require.Equal(t, 15, missions[1].ID)

	escort := missions[0]
	require.Equal(t, "Supply Escort", escort.Name)
	require.Equal(t, 20, escort.Level)
	require.False(t, escort.IsFlaggedMission)
	require.Equal(t, 2, escort.RequiredMatches())
	require.Equal(t, []models.Attributes{
		{Physical: 120, Mental: 90, Tactical: 90},
		{Physical: 90, Mental: 120, Tactical: 90},
		{Physical: 90, Mental: 90, Tactical: 120},
	}, escort.PossibleAttributes)

	temple := missions[1]
	require.True(t, temple.IsFlaggedMission)
	require.Equal(t, 3, temple.RequiredMatches())
}

func TestParseMissionsErrors(t *testing.T) {
	_, err := ParseMissions([]byte(`{"rows": [`))
	require.ErrorContains(t, err, "invalid JSON")

	_, err = LoadMissionsFromFile("testdata/broken")
	require.ErrorContains(t, err, "missing rows array")
}

func TestFindMission(t *testing.T) {
	missions := DefaultMissions()

	m, err := FindMission(missions, 14)
	require.NoError(t, err)
	require.Equal(t, "Flagged Mission: Crystal Mines", m.Name)

	_, err = FindMission(missions, 99)
	require.ErrorIs(t, err, ErrMissionNotFound)
}

func TestDefaultMissions(t *testing.T) {
	missions := DefaultMissions()
	require.NotEmpty(t, missions)

	seen := make(map[int]bool)
	for _, m := range missions {
		require.False(t, seen[m.ID], "duplicate mission %d", m.ID)
		seen[m.ID] = true

		require.NotEmpty(t, m.Name)
		require.Positive(t, m.Level, "mission %d", m.ID)
		require.NotEmpty(t, m.PossibleAttributes, "mission %d", m.ID)
		require.Equal(t, models.IsFlaggedMissionID(m.ID), m.IsFlaggedMission, "mission %d", m.ID)
	}

	for _, id := range []int{7, 14, 15, 34} {
		m, err := FindMission(missions, id)
		require.NoError(t, err)
		require.True(t, m.IsFlaggedMission, "mission %d", id)
	}
}

// The bundled data directory and the built-in table describe the same missions
func TestDataDirectoryMatchesDefaults(t *testing.T) {
	fromFile, err := LoadMissionsFromFile("../../data")
	require.NoError(t, err)
	require.Equal(t, DefaultMissions(), fromFile)

	trainings, err := LoadTrainingsFromFile("../../data")
	require.NoError(t, err)
	require.Equal(t, DefaultTrainings(), trainings)
}

func TestGetMissionsForLevel(t *testing.T) {
	missions := DefaultMissions()

	tests := []struct {
		level int
		want  int
	}{
		{10, 0},
		{20, 2},
		{40, 7},
		{60, len(missions)},
	}

	for _, tc := range tests {
		available := GetMissionsForLevel(missions, tc.level)
		require.Len(t, available, tc.want, "level %d", tc.level)
		for _, m := range available {
			require.LessOrEqual(t, m.Level, tc.level)
		}
	}
}
