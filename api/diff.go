package api

// diffIDSets compares the current and desired id sets and returns the ids to
// add and to remove to turn current into desired. Ids present in both sets
// are untouched, so association updates only write the delta.
func diffIDSets(current, desired []uint) (toAdd, toRemove []uint) {
	currentSet := make(map[uint]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}

	desiredSet := make(map[uint]struct{}, len(desired))
	for _, id := range desired {
		if _, seen := desiredSet[id]; seen {
			continue // ignore duplicates in the request
		}
		desiredSet[id] = struct{}{}
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}

	for _, id := range current {
		if _, ok := desiredSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	return toAdd, toRemove
}
