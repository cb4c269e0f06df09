package history

import "context"

// Repository defines the operations for persisting and retrieving
// Activation records.
type Repository interface {
	Record(ctx context.Context, a *Activation) error
	ListRecent(ctx context.Context, limit int) ([]*Activation, error)
	Latest(ctx context.Context) (*Activation, error)
}
