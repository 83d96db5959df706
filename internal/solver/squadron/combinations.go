package squadron

import (
	"sort"
	"strings"

	"github.com/napolitain/solver-squadron/internal/models"
)

// Combinations returns every unordered selection of size elements from pool,
// in lexicographic index order. A size of zero or one larger than the pool
// yields no combinations.
func Combinations[T any](pool []T, size int) [][]T {
	if size <= 0 || size > len(pool) {
		return nil
	}

	var out [][]T
	indices := make([]int, size)

	var pick func(depth, start int)
	pick = func(depth, start int) {
		if depth == size {
			combo := make([]T, size)
			for i, idx := range indices {
				combo[i] = pool[idx]
			}
			out = append(out, combo)
			return
		}
		// Leave room for the remaining picks
		for i := start; i <= len(pool)-(size-depth); i++ {
			indices[depth] = i
			pick(depth+1, i+1)
		}
	}
	pick(0, 0)

	return out
}

// MemberCombinations returns the rosters of size members that can be drawn
// from pool, keeping only the first roster for each set of names.
func MemberCombinations(pool []models.Member, size int) [][]models.Member {
	all := Combinations(pool, size)
	if len(all) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(all))
	rosters := make([][]models.Member, 0, len(all))
	for _, combo := range all {
		key := RosterKey(combo)
		if seen[key] {
			continue
		}
		seen[key] = true
		rosters = append(rosters, combo)
	}
	return rosters
}

// RosterKey identifies a roster by its sorted member names
func RosterKey(members []models.Member) string {
	names := models.MemberNames(members)
	sort.Strings(names)
	return strings.Join(names, "|")
}

// maxLevel returns the highest member level of a roster
func maxLevel(members []models.Member) int {
	level := 0
	for _, m := range members {
		if m.Level > level {
			level = m.Level
		}
	}
	return level
}
