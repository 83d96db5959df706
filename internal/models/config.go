package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSquadron is returned when a squadron config cannot be used
var ErrInvalidSquadron = errors.New("invalid squadron")

// MaxMembers is the largest squadron the game allows
const MaxMembers = 8

// SquadronConfig is the YAML description of a squadron
type SquadronConfig struct {
	Members         []MemberConfig `yaml:"members" json:"members"`
	Bonus           BonusConfig    `yaml:"bonus" json:"bonus"`
	CurrentTraining uint32         `yaml:"current_training,omitempty" json:"currentTraining,omitempty"`
}

// MemberConfig is one squadron member in the YAML file
type MemberConfig struct {
	Name       string `yaml:"name" json:"name"`
	Level      int    `yaml:"level" json:"level"`
	Class      string `yaml:"class,omitempty" json:"class,omitempty"`
	Race       string `yaml:"race,omitempty" json:"race,omitempty"`
	Experience uint32 `yaml:"experience,omitempty" json:"experience,omitempty"`
	Physical   int    `yaml:"physical" json:"physical"`
	Mental     int    `yaml:"mental" json:"mental"`
	Tactical   int    `yaml:"tactical" json:"tactical"`
}

// BonusConfig is the squadron bonus pool in the YAML file
type BonusConfig struct {
	Physical int `yaml:"physical" json:"physical"`
	Mental   int `yaml:"mental" json:"mental"`
	Tactical int `yaml:"tactical" json:"tactical"`
	Cap      int `yaml:"cap" json:"cap"`
}

// LoadSquadronConfig loads a squadron description from a YAML file
func LoadSquadronConfig(path string) (*SquadronConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSquadronConfig(data)
}

// ParseSquadronConfig decodes a YAML squadron description
func ParseSquadronConfig(data []byte) (*SquadronConfig, error) {
	config := &SquadronConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return config, nil
}

// MarshalSquadronConfig encodes a squadron description as YAML
func MarshalSquadronConfig(c *SquadronConfig) ([]byte, error) {
	return yaml.Marshal(c)
}

// ValidateSquadronConfig checks member names, counts and bonus values
func ValidateSquadronConfig(c *SquadronConfig) error {
	if len(c.Members) > MaxMembers {
		return fmt.Errorf("%w: %d members, at most %d allowed", ErrInvalidSquadron, len(c.Members), MaxMembers)
	}

	seen := make(map[string]bool, len(c.Members))
	for i, m := range c.Members {
		if m.Name == "" {
			return fmt.Errorf("%w: member %d has no name", ErrInvalidSquadron, i+1)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate member %q", ErrInvalidSquadron, m.Name)
		}
		seen[m.Name] = true
		if m.Physical < 0 || m.Mental < 0 || m.Tactical < 0 {
			return fmt.Errorf("%w: member %q has negative attributes", ErrInvalidSquadron, m.Name)
		}
	}

	b := c.Bonus
	if b.Physical < 0 || b.Mental < 0 || b.Tactical < 0 || b.Cap < 0 {
		return fmt.Errorf("%w: negative bonus attributes", ErrInvalidSquadron)
	}
	if b.Physical%BonusStep != 0 || b.Mental%BonusStep != 0 || b.Tactical%BonusStep != 0 {
		return fmt.Errorf("%w: bonus attributes must be multiples of %d", ErrInvalidSquadron, BonusStep)
	}

	return nil
}

// SquadronConfigToState converts a YAML squadron description to a SquadronState
func SquadronConfigToState(c *SquadronConfig) *SquadronState {
	state := &SquadronState{
		Members: make([]Member, 0, len(c.Members)),
		Bonus: BonusAttributes{
			Physical: c.Bonus.Physical,
			Mental:   c.Bonus.Mental,
			Tactical: c.Bonus.Tactical,
			Cap:      c.Bonus.Cap,
		},
		CurrentTraining: c.CurrentTraining,
	}

	for _, m := range c.Members {
		state.Members = append(state.Members, Member{
			Name:       m.Name,
			Level:      m.Level,
			ClassJob:   ParseClassJob(m.Class),
			Race:       ParseRace(m.Race),
			Experience: m.Experience,
			Physical:   m.Physical,
			Mental:     m.Mental,
			Tactical:   m.Tactical,
		})
	}

	return state
}

// StateToSquadronConfig converts a SquadronState back to its YAML description
func StateToSquadronConfig(s *SquadronState) *SquadronConfig {
	config := &SquadronConfig{
		Bonus: BonusConfig{
			Physical: s.Bonus.Physical,
			Mental:   s.Bonus.Mental,
			Tactical: s.Bonus.Tactical,
			Cap:      s.Bonus.Cap,
		},
		CurrentTraining: s.CurrentTraining,
	}

	for _, m := range s.Members {
		mc := MemberConfig{
			Name:       m.Name,
			Level:      m.Level,
			Experience: m.Experience,
			Physical:   m.Physical,
			Mental:     m.Mental,
			Tactical:   m.Tactical,
		}
		if m.ClassJob != 0 {
			mc.Class = ClassJobName(m.ClassJob)
		}
		if m.Race != RaceUnknown {
			mc.Race = m.Race.String()
		}
		config.Members = append(config.Members, mc)
	}

	return config
}
