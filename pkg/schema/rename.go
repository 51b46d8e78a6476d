package schema

import (
	"maps"
	"slices"
)

// RenamePair represents a rename operation from OldName to NewName
type RenamePair struct {
	OldName string
	NewName string
}

// DetectRenames partitions objects that exist only in current or only in target
// into rename pairs and the leftovers.
//
// Names are visited in sorted order. Each current object that no longer exists
// in target is paired with the first unmatched target object (by name) that
// does not exist in current and for which match returns true. Neither input is
// modified.
//
// Returns:
//   - renames: detected renames, ordered by OldName
//   - remainingCurrent: current objects that weren't renamed (for drop detection)
//   - remainingTarget: target objects that weren't renamed (for create detection)
//
// Example:
//
//	renames, drops, adds := schema.DetectRenames(removedCols, addedCols, func(a, b schema.ColumnDefinition) bool {
//		return a.Type == b.Type
//	})
func DetectRenames[T any](current, target map[string]T, match func(a, b T) bool) (
	renames []RenamePair,
	remainingCurrent map[string]T,
	remainingTarget map[string]T,
) {
	remainingCurrent = maps.Clone(current)
	remainingTarget = maps.Clone(target)
	if remainingCurrent == nil {
		remainingCurrent = make(map[string]T)
	}
	if remainingTarget == nil {
		remainingTarget = make(map[string]T)
	}

	matchedTarget := make(map[string]bool)
	targetNames := slices.Sorted(maps.Keys(target))

	for _, currentName := range slices.Sorted(maps.Keys(current)) {
		if _, exists := target[currentName]; exists {
			continue // exists in both, not a rename
		}

		for _, targetName := range targetNames {
			if matchedTarget[targetName] {
				continue
			}

			if _, exists := current[targetName]; exists {
				continue
			}

			if match(current[currentName], target[targetName]) {
				renames = append(renames, RenamePair{OldName: currentName, NewName: targetName})
				matchedTarget[targetName] = true

				delete(remainingCurrent, currentName)
				delete(remainingTarget, targetName)
				break
			}
		}
	}

	return renames, remainingCurrent, remainingTarget
}
