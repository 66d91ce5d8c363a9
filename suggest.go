package gqlpager

import (
	"fmt"
	"slices"
)

// suggestion renders a "did you mean" hint for an unknown alias, or nothing
// when no known alias is close enough to be a typo.
func suggestion(input ColumnAlias, known []ColumnAlias) string {
	closest, dist := closestAlias(input, known)
	if closest == "" || dist > max(2, len([]rune(input))/2) {
		return ""
	}

	return fmt.Sprintf(", did you mean '%s'?", closest)
}

// closestAlias returns the known alias with the smallest edit distance to
// input. Ties resolve to the alphabetically first alias.
func closestAlias(input ColumnAlias, known []ColumnAlias) (ColumnAlias, int) {
	sorted := slices.Clone(known)
	slices.Sort(sorted)

	closest, minDist := "", -1
	for _, alias := range sorted {
		if dist := editDistance([]rune(alias), []rune(input)); minDist < 0 || dist < minDist {
			closest, minDist = alias, dist
		}
	}

	return closest, minDist
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b []rune) int {
	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := range a {
		diagonal := row[0]
		row[0] = i + 1

		for j := range b {
			substitution := diagonal
			if a[i] != b[j] {
				substitution++
			}

			diagonal = row[j+1]
			row[j+1] = min(row[j+1]+1, row[j]+1, substitution)
		}
	}

	return row[len(b)]
}
