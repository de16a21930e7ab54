package cart

import (
	"context"
	"time"

	"chronokart/internal/model"
)

// LineItem is one (product, colour, quantity) entry in the cart. The product
// is snapshotted in full so catalogue edits after adding to cart do not
// retroactively change what the customer sees until a re-fetch.
type LineItem struct {
	Product  model.Product        `json:"product"`
	Color    model.ColorSelection `json:"color"`
	Quantity int                  `json:"quantity"`
}

// Snapshot is the full serialized cart state written on every mutation.
type Snapshot struct {
	Items   []LineItem `json:"items"`
	SavedAt time.Time  `json:"savedAt"`
}

// Storage is the persistence port for the cart store. Load returns nil when
// no snapshot has ever been saved. Implementations surface corrupt stored
// data as an error; the store decides the recovery policy.
type Storage interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
}
