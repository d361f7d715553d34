package repository

// OrderUpdate is one element of a reorder batch: the row's ID paired with its
// zero-based position in the submitted sequence.
type OrderUpdate struct {
	ID         uint `json:"id" binding:"required"`
	OrderIndex int  `json:"order_index"`
}
