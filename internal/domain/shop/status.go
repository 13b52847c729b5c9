package shop

// ===============================
// Shop Status
// ===============================

type Status string

const (
	// StatusPending marks a shop application awaiting admin review.
	StatusPending Status = "pending"

	// StatusActive marks an approved shop, discoverable via search.
	StatusActive Status = "active"
)
