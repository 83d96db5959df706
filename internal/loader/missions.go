package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/napolitain/solver-squadron/internal/models"
)

// ErrMissionNotFound is returned when a mission id is not in the table
var ErrMissionNotFound = errors.New("mission not found")

// LoadMissionsFromFile loads missions from missions.json
func LoadMissionsFromFile(dataDir string) ([]*models.Mission, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, MissionsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", MissionsFile, err)
	}
	return ParseMissions(data)
}

// ParseMissions decodes a mission sheet dump. Row 0 is skipped and the
// flagged missions are marked by id.
func ParseMissions(data []byte) ([]*models.Mission, error) {
	rows, err := sheetRows(data, MissionsFile)
	if err != nil {
		return nil, err
	}

	var missions []*models.Mission
	rows.ForEach(func(_, v gjson.Result) bool {
		id := int(v.Get("row_id").Int())
		if id <= 0 {
			return true
		}

		m := &models.Mission{
			ID:               id,
			Name:             v.Get("name").String(),
			Level:            int(v.Get("required_level").Int()),
			IsFlaggedMission: models.IsFlaggedMissionID(id),
		}
		v.Get("expedition_params").ForEach(func(_, p gjson.Result) bool {
			m.PossibleAttributes = append(m.PossibleAttributes, models.Attributes{
				Physical: int(p.Get("required_physical").Int()),
				Mental:   int(p.Get("required_mental").Int()),
				Tactical: int(p.Get("required_tactical").Int()),
			})
			return true
		})

		missions = append(missions, m)
		return true
	})

	// Sort by id for determinism
	sort.Slice(missions, func(i, j int) bool {
		return missions[i].ID < missions[j].ID
	})

	return missions, nil
}

// FindMission returns the mission with the given id
func FindMission(missions []*models.Mission, id int) (*models.Mission, error) {
	if m := models.FindMission(missions, id); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("mission %d: %w", id, ErrMissionNotFound)
}

// GetMissionsForLevel returns missions a squadron whose best member has
// the given level can take
func GetMissionsForLevel(missions []*models.Mission, level int) []*models.Mission {
	available := make([]*models.Mission, 0, len(missions))
	for _, m := range missions {
		if m.Level <= level {
			available = append(available, m)
		}
	}
	return available
}

// DefaultMissions returns the built-in mission table (hardcoded fallback)
func DefaultMissions() []*models.Mission {
	missions := []*models.Mission{
		{
			ID: 1, Name: "Border Patrol", Level: 20,
			PossibleAttributes: []models.Attributes{
				{Physical: 100, Mental: 105, Tactical: 95},
				{Physical: 110, Mental: 95, Tactical: 95},
				{Physical: 95, Mental: 95, Tactical: 110},
			},
		},
		{
			ID: 2, Name: "Supply Escort", Level: 20,
			PossibleAttributes: []models.Attributes{
				{Physical: 120, Mental: 90, Tactical: 90},
				{Physical: 90, Mental: 120, Tactical: 90},
				{Physical: 90, Mental: 90, Tactical: 120},
			},
		},
		{
			ID: 3, Name: "Beastman Skirmish", Level: 25,
			PossibleAttributes: []models.Attributes{
				{Physical: 140, Mental: 100, Tactical: 115},
				{Physical: 115, Mental: 140, Tactical: 100},
			},
		},
		{
			ID: 4, Name: "Reconnaissance", Level: 30,
			PossibleAttributes: []models.Attributes{
				{Physical: 110, Mental: 145, Tactical: 145},
				{Physical: 145, Mental: 110, Tactical: 145},
			},
		},
		{
			ID: 5, Name: "Convoy Protection", Level: 35,
			PossibleAttributes: []models.Attributes{
				{Physical: 180, Mental: 130, Tactical: 150},
				{Physical: 150, Mental: 180, Tactical: 130},
			},
		},
		{
			ID: 6, Name: "Hunting the Hunters", Level: 40,
			PossibleAttributes: []models.Attributes{
				{Physical: 210, Mental: 150, Tactical: 170},
				{Physical: 170, Mental: 210, Tactical: 150},
			},
		},
		{
			ID: 7, Name: "Flagged Mission: Dance of Shadows", Level: 40,
			PossibleAttributes: []models.Attributes{
				{Physical: 185, Mental: 185, Tactical: 185},
			},
		},
		{
			ID: 8, Name: "Stolen Goods", Level: 45,
			PossibleAttributes: []models.Attributes{
				{Physical: 240, Mental: 180, Tactical: 200},
				{Physical: 180, Mental: 200, Tactical: 240},
			},
		},
		{
			ID: 14, Name: "Flagged Mission: Crystal Mines", Level: 50,
			PossibleAttributes: []models.Attributes{
				{Physical: 230, Mental: 230, Tactical: 230},
			},
		},
		{
			ID: 15, Name: "Flagged Mission: Sunken Temple", Level: 50,
			PossibleAttributes: []models.Attributes{
				{Physical: 250, Mental: 220, Tactical: 230},
			},
		},
		{
			ID: 34, Name: "Flagged Mission: The Last Stand", Level: 60,
			PossibleAttributes: []models.Attributes{
				{Physical: 290, Mental: 290, Tactical: 290},
			},
		},
	}
	for _, m := range missions {
		m.IsFlaggedMission = models.IsFlaggedMissionID(m.ID)
	}
	return missions
}
