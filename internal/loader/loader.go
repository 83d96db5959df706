package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/napolitain/solver-squadron/internal/models"
)

const (
	TrainingsFile = "trainings.json"
	MissionsFile  = "missions.json"
)

// excludedTrainingRows are sheet rows that are not real regimens
var excludedTrainingRows = map[uint32]bool{
	0: true,
	7: true,
}

// GameData is the decoded content of a data directory
type GameData struct {
	Trainings []models.Training
	Missions  []*models.Mission
}

// Load reads trainings and missions from dataDir. A missing file falls back
// to the built-in table; any other read or parse error is returned.
func Load(dataDir string) (*GameData, error) {
	trainings, err := LoadTrainingsFromFile(dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		trainings, err = DefaultTrainings(), nil
	}
	if err != nil {
		return nil, err
	}

	missions, err := LoadMissionsFromFile(dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		missions, err = DefaultMissions(), nil
	}
	if err != nil {
		return nil, err
	}

	return &GameData{Trainings: trainings, Missions: missions}, nil
}

// LoadTrainingsFromFile loads the training catalog from trainings.json
func LoadTrainingsFromFile(dataDir string) ([]models.Training, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, TrainingsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TrainingsFile, err)
	}
	return ParseTrainings(data)
}

// ParseTrainings decodes a training sheet dump, keeping sheet order
func ParseTrainings(data []byte) ([]models.Training, error) {
	rows, err := sheetRows(data, TrainingsFile)
	if err != nil {
		return nil, err
	}

	var trainings []models.Training
	rows.ForEach(func(_, v gjson.Result) bool {
		rowID := uint32(v.Get("row_id").Uint())
		if excludedTrainingRows[rowID] {
			return true
		}
		trainings = append(trainings, models.Training{
			RowID:          rowID,
			Name:           v.Get("name").String(),
			PhysicalGained: int(v.Get("physical_bonus").Int()),
			MentalGained:   int(v.Get("mental_bonus").Int()),
			TacticalGained: int(v.Get("tactical_bonus").Int()),
		})
		return true
	})

	return trainings, nil
}

// DefaultTrainings returns the built-in training catalog
func DefaultTrainings() []models.Training {
	return []models.Training{
		{RowID: 1, Name: "Physical Training", PhysicalGained: 40},
		{RowID: 2, Name: "Mental Training", MentalGained: 40},
		{RowID: 3, Name: "Tactical Training", TacticalGained: 40},
		{RowID: 4, Name: "Physical and Mental Training", PhysicalGained: 20, MentalGained: 20},
		{RowID: 5, Name: "Physical and Tactical Training", PhysicalGained: 20, TacticalGained: 20},
		{RowID: 6, Name: "Mental and Tactical Training", MentalGained: 20, TacticalGained: 20},
	}
}

// sheetRows validates a sheet dump and returns its rows array
func sheetRows(data []byte, name string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("failed to parse %s: invalid JSON", name)
	}
	rows := gjson.GetBytes(data, "rows")
	if !rows.IsArray() {
		return gjson.Result{}, fmt.Errorf("failed to parse %s: missing rows array", name)
	}
	return rows, nil
}
