package order

import (
	"github.com/google/uuid"
)

// Draft is the transient per-dialog order state: a target toy and the
// quantity currently selected. It exists between opening the order dialog
// and submit/cancel, and is never persisted.
type Draft struct {
	toyID    uuid.UUID
	quantity int
}

func NewDraft(toyID uuid.UUID) Draft {
	return Draft{toyID: toyID, quantity: 1}
}

// ResumeDraft rebuilds dialog state from a client-reported quantity. The
// gateway keeps no dialog state between requests; the floor of 1 applies to
// whatever the client sends.
func ResumeDraft(toyID uuid.UUID, quantity int) Draft {
	if quantity < 1 {
		quantity = 1
	}
	return Draft{toyID: toyID, quantity: quantity}
}

func (d Draft) ToyID() uuid.UUID { return d.toyID }
func (d Draft) Quantity() int    { return d.quantity }

// Step applies a stepper move (+1/-1) bounded by the quota and the policy
// ceiling. A delta of 0 re-clamps against a refreshed quota.
func (d Draft) Step(delta, availableQuota int) Draft {
	d.quantity = ClampQuantity(d.quantity, delta, availableQuota, PolicyCeiling)
	return d
}
