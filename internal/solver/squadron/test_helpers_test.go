package squadron

import (
	"fmt"

	"github.com/napolitain/solver-squadron/internal/models"
)

// defaultCatalog mirrors the six regimens of the game data
func defaultCatalog() []models.Training {
	return []models.Training{
		{RowID: 1, Name: "Physical Training", PhysicalGained: 40},
		{RowID: 2, Name: "Mental Training", MentalGained: 40},
		{RowID: 3, Name: "Tactical Training", TacticalGained: 40},
		{RowID: 4, Name: "Physical and Mental Training", PhysicalGained: 20, MentalGained: 20},
		{RowID: 5, Name: "Physical and Tactical Training", PhysicalGained: 20, TacticalGained: 20},
		{RowID: 6, Name: "Mental and Tactical Training", MentalGained: 20, TacticalGained: 20},
	}
}

// uniformMembers creates n level-60 members with the same scores
func uniformMembers(n, physical, mental, tactical int) []models.Member {
	members := make([]models.Member, n)
	for i := range members {
		members[i] = models.Member{
			Name:     fmt.Sprintf("Member %d", i+1),
			Level:    60,
			Physical: physical,
			Mental:   mental,
			Tactical: tactical,
		}
	}
	return members
}

func trainingNames(trainings []models.Training) string {
	return fmt.Sprint(models.TrainingNames(trainings))
}
