package models

// Training is a squadron training regimen as read from the game data
type Training struct {
	RowID          uint32
	Name           string
	PhysicalGained int
	MentalGained   int
	TacticalGained int
}

// CappedPhysicalGained returns the physical delta applied once the bonus pool is saturated
func (t Training) CappedPhysicalGained() int {
	return cappedGain(t.PhysicalGained, t.MentalGained, t.TacticalGained)
}

// CappedMentalGained returns the mental delta applied once the bonus pool is saturated
func (t Training) CappedMentalGained() int {
	return cappedGain(t.MentalGained, t.PhysicalGained, t.TacticalGained)
}

// CappedTacticalGained returns the tactical delta applied once the bonus pool is saturated
func (t Training) CappedTacticalGained() int {
	return cappedGain(t.TacticalGained, t.PhysicalGained, t.MentalGained)
}

// Gains returns the raw per-axis gains
func (t Training) Gains() Attributes {
	return Attributes{Physical: t.PhysicalGained, Mental: t.MentalGained, Tactical: t.TacticalGained}
}

// CappedGains returns the capped per-axis gains
func (t Training) CappedGains() Attributes {
	return Attributes{
		Physical: t.CappedPhysicalGained(),
		Mental:   t.CappedMentalGained(),
		Tactical: t.CappedTacticalGained(),
	}
}

// cappedGain keeps a positive gain and turns anything else into a cost,
// which is halved when a sibling axis receives the full 40 points.
func cappedGain(main, otherA, otherB int) int {
	if main > 0 {
		return main
	}
	if otherA == 40 || otherB == 40 {
		return -20
	}
	return -40
}

// TrainingNames returns the names of a training sequence in order
func TrainingNames(trainings []Training) []string {
	names := make([]string, len(trainings))
	for i, t := range trainings {
		names[i] = t.Name
	}
	return names
}
