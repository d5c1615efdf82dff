package model

import (
	"github.com/google/uuid"
)

// Move applies one drag-and-drop event to an ordered id sequence: the
// dragged id is removed from its old position and reinserted at the
// position the target currently occupies (an array move, not a swap).
// If either id is missing, or they are equal, the input order is returned
// unchanged.
func Move(ids []uuid.UUID, draggedID, targetID uuid.UUID) []uuid.UUID {
	from, to := -1, -1
	for i, id := range ids {
		switch id {
		case draggedID:
			from = i
		case targetID:
			to = i
		}
	}
	if from == -1 || to == -1 || draggedID == targetID {
		return ids
	}

	reordered := make([]uuid.UUID, 0, len(ids))
	reordered = append(reordered, ids[:from]...)
	reordered = append(reordered, ids[from+1:]...)

	result := make([]uuid.UUID, 0, len(ids))
	result = append(result, reordered[:to]...)
	result = append(result, draggedID)
	result = append(result, reordered[to:]...)
	return result
}

// SortIndexPair assigns a book (or copy) id its new position.
type SortIndexPair struct {
	ID        uuid.UUID `json:"id"`
	SortIndex int       `json:"sortIndex"`
}

// DenseIndexes maps an ordered id sequence to dense 0..n-1 sort indices by
// array position.
func DenseIndexes(ids []uuid.UUID) []SortIndexPair {
	pairs := make([]SortIndexPair, len(ids))
	for i, id := range ids {
		pairs[i] = SortIndexPair{ID: id, SortIndex: i}
	}
	return pairs
}
