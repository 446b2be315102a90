package catalog

import (
	"github.com/google/uuid"
)

// CanDelete is the referential-integrity pre-check run before a catalog
// delete: a toy referenced by at least one live order must not be deleted.
// The ledger passed in must be freshly fetched; the backend re-checks at
// delete time because this read-then-act sequence is race-prone.
func CanDelete(toyID uuid.UUID, orderedToyIDs []uuid.UUID) bool {
	for _, ref := range orderedToyIDs {
		if ref == toyID {
			return false
		}
	}
	return true
}
