package models

import "fmt"

// BonusStep is the granularity of bonus points across the three axes
const BonusStep = 20

// Attributes holds the three ability scores of a member, a roster or a mission requirement
type Attributes struct {
	Physical int
	Mental   int
	Tactical int
}

// Add returns the axis-wise sum of a and b
func (a Attributes) Add(b Attributes) Attributes {
	return Attributes{
		Physical: a.Physical + b.Physical,
		Mental:   a.Mental + b.Mental,
		Tactical: a.Tactical + b.Tactical,
	}
}

// Sum returns physical + mental + tactical
func (a Attributes) Sum() int {
	return a.Physical + a.Mental + a.Tactical
}

// Matches counts the axes where a meets or exceeds the threshold
func (a Attributes) Matches(threshold Attributes) int {
	n := 0
	if a.Physical >= threshold.Physical {
		n++
	}
	if a.Mental >= threshold.Mental {
		n++
	}
	if a.Tactical >= threshold.Tactical {
		n++
	}
	return n
}

func (a Attributes) String() string {
	return fmt.Sprintf("%d / %d / %d", a.Physical, a.Mental, a.Tactical)
}

// BonusAttributes is the squadron-wide bonus pool: three axes plus the cap
// the axes are distributed under. It is comparable and used as a map key.
type BonusAttributes struct {
	Physical int
	Mental   int
	Tactical int
	Cap      int
}

// Attributes projects out the three axes
func (b BonusAttributes) Attributes() Attributes {
	return Attributes{Physical: b.Physical, Mental: b.Mental, Tactical: b.Tactical}
}

// Saturated reports whether the axes use the whole cap
func (b BonusAttributes) Saturated() bool {
	return b.Physical+b.Mental+b.Tactical == b.Cap
}

// Valid reports whether no axis is negative
func (b BonusAttributes) Valid() bool {
	return b.Physical >= 0 && b.Mental >= 0 && b.Tactical >= 0
}

func (b BonusAttributes) String() string {
	return fmt.Sprintf("%d / %d / %d (cap %d)", b.Physical, b.Mental, b.Tactical, b.Cap)
}

// ApplyTraining returns the bonus state reached by running training t.
//
// While the pool is still growing the raw gains are added and the cap grows
// by their sum. Once saturated, the capped gains are used and every axis
// that received points is spilled into its siblings (physical, then
// mental, then tactical), so the cap stays fixed. The result may contain
// negative axes; callers decide whether such a state is reachable.
func (b BonusAttributes) ApplyTraining(t Training) BonusAttributes {
	if !b.Saturated() {
		return BonusAttributes{
			Physical: b.Physical + t.PhysicalGained,
			Mental:   b.Mental + t.MentalGained,
			Tactical: b.Tactical + t.TacticalGained,
			Cap:      b.Cap + t.PhysicalGained + t.MentalGained + t.TacticalGained,
		}
	}

	gp := t.CappedPhysicalGained()
	gm := t.CappedMentalGained()
	gt := t.CappedTacticalGained()

	p := b.Physical + gp
	m := b.Mental + gm
	tt := b.Tactical + gt

	spill(&p, gp, &m, gm, &tt, gt)
	spill(&m, gm, &p, gp, &tt, gt)
	spill(&tt, gt, &p, gp, &m, gm)

	return BonusAttributes{Physical: p, Mental: m, Tactical: tt, Cap: b.Cap}
}

// spill zeroes a main axis that gained points and moves the gain to the two
// other axes, half to a and the rest to b, signed by their own gains.
func spill(main *int, mainGained int, a *int, aGained int, b *int, bGained int) {
	if mainGained <= 0 || *main <= 0 {
		return
	}
	*main = 0

	amount := abs(mainGained)
	half := amount / 2
	rest := amount - half

	if aGained >= 0 {
		*a += half
	} else {
		*a -= half
	}
	if bGained >= 0 {
		*b += rest
	} else {
		*b -= rest
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
