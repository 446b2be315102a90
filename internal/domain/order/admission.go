package order

// PolicyCeiling is the fixed per-order maximum, independent of how much
// inventory a toy has left.
const PolicyCeiling = 5

// ClampQuantity forces a requested quantity change into the legal range
// [1, min(availableQuota, ceiling)]. delta is -1/+1 for stepper moves and 0
// for a re-clamp after a snapshot refresh; a quantity that was legal against
// an older snapshot may exceed a freshly lowered quota, so callers must
// re-clamp on every refresh, not only on user interaction.
func ClampQuantity(current, delta, availableQuota, ceiling int) int {
	next := current + delta
	if next > availableQuota {
		next = availableQuota
	}
	if next > ceiling {
		next = ceiling
	}
	if next < 1 {
		next = 1
	}
	return next
}

// CanSubmit reports whether a quantity is admissible against the freshest
// known quota. With availableQuota 0 no quantity is ever valid; the clamp
// floor of 1 does not make a zero-quota order submittable.
func CanSubmit(quantity, availableQuota int) bool {
	return quantity >= 1 && quantity <= availableQuota
}
