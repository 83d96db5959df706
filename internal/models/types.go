package models

import "strings"

// Race represents the race of a squadron member
type Race uint8

const (
	RaceUnknown Race = iota
	Hyur
	Elezen
	Lalafell
	Miqote
	Roegadyn
	AuRa
)

// AllRaces returns all known races in deterministic order
func AllRaces() []Race {
	return []Race{Hyur, Elezen, Lalafell, Miqote, Roegadyn, AuRa}
}

func (r Race) String() string {
	switch r {
	case Hyur:
		return "Hyur"
	case Elezen:
		return "Elezen"
	case Lalafell:
		return "Lalafell"
	case Miqote:
		return "Miqo'te"
	case Roegadyn:
		return "Roegadyn"
	case AuRa:
		return "Au Ra"
	default:
		return "Unknown"
	}
}

// ParseRace converts a race name (case and punctuation insensitive) to a Race
func ParseRace(name string) Race {
	normalized := strings.ToLower(strings.NewReplacer("'", "", " ", "", "_", "").Replace(name))
	for _, r := range AllRaces() {
		if strings.ToLower(strings.NewReplacer("'", "", " ", "").Replace(r.String())) == normalized {
			return r
		}
	}
	return RaceUnknown
}

// ClassJob identifiers of the classes a squadron member can have
const (
	Gladiator   uint32 = 1
	Pugilist    uint32 = 2
	Marauder    uint32 = 3
	Lancer      uint32 = 4
	Archer      uint32 = 5
	Conjurer    uint32 = 6
	Thaumaturge uint32 = 7
	Arcanist    uint32 = 26
	Rogue       uint32 = 29
)

var classJobNames = map[uint32]string{
	Gladiator:   "Gladiator",
	Pugilist:    "Pugilist",
	Marauder:    "Marauder",
	Lancer:      "Lancer",
	Archer:      "Archer",
	Conjurer:    "Conjurer",
	Thaumaturge: "Thaumaturge",
	Arcanist:    "Arcanist",
	Rogue:       "Rogue",
}

// ClassJobName returns the display name of a class job id
func ClassJobName(id uint32) string {
	if name, ok := classJobNames[id]; ok {
		return name
	}
	return "Unknown"
}

// ParseClassJob converts a class name to its id, 0 if unknown
func ParseClassJob(name string) uint32 {
	for id, n := range classJobNames {
		if strings.EqualFold(n, name) {
			return id
		}
	}
	return 0
}

// Member is a squadron member with already resolved ability scores
type Member struct {
	Name       string
	Level      int
	ClassJob   uint32
	Race       Race
	Experience uint32

	Physical int
	Mental   int
	Tactical int
}

// Attributes returns the scores the member contributes to a roster
func (m Member) Attributes() Attributes {
	return Attributes{Physical: m.Physical, Mental: m.Mental, Tactical: m.Tactical}
}

// SquadronState is the snapshot of a squadron the solver works from
type SquadronState struct {
	Members         []Member
	Bonus           BonusAttributes
	CurrentTraining uint32
}

// MemberNames returns member names in roster order
func MemberNames(members []Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return names
}

// SumAttributes returns the total scores of a roster
func SumAttributes(members []Member) Attributes {
	var total Attributes
	for _, m := range members {
		total = total.Add(m.Attributes())
	}
	return total
}
