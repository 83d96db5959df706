package models

// RosterSize is the number of members sent on a mission
const RosterSize = 4

// flaggedMissionIDs are the missions that need all three attributes
var flaggedMissionIDs = map[int]bool{
	7:  true,
	14: true,
	15: true,
	34: true,
}

// IsFlaggedMissionID reports whether a mission id is one of the flagged missions
func IsFlaggedMissionID(id int) bool {
	return flaggedMissionIDs[id]
}

// Mission represents a squadron command mission
type Mission struct {
	ID               int
	Name             string
	Level            int // Required level of at least one member
	IsFlaggedMission bool

	// Threshold triples the mission can ask for; the game picks one
	PossibleAttributes []Attributes
}

// RequiredMatches returns how many of the three axes must meet the thresholds
func (m *Mission) RequiredMatches() int {
	if m.IsFlaggedMission {
		return 3
	}
	return 2
}

// DefaultAttributes returns the first threshold triple, false if there is none
func (m *Mission) DefaultAttributes() (Attributes, bool) {
	if len(m.PossibleAttributes) == 0 {
		return Attributes{}, false
	}
	return m.PossibleAttributes[0], true
}

// FindMission returns the mission with the given id, nil if missing
func FindMission(missions []*Mission, id int) *Mission {
	for _, m := range missions {
		if m.ID == id {
			return m
		}
	}
	return nil
}
