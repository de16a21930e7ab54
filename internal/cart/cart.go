package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"chronokart/internal/model"

	"github.com/rs/zerolog"
)

// MaxLineQuantity bounds the quantity of a single line item so repeated adds
// cannot grow a line without limit.
const MaxLineQuantity = 99

// Store maintains the authoritative client-side cart. Line items are keyed by
// (product ID, colour name): the same watch in two colours occupies two
// lines. Every mutation synchronously writes the full snapshot through the
// injected Storage port.
type Store struct {
	mu      sync.Mutex
	items   []LineItem
	storage Storage
	logger  zerolog.Logger
}

// NewStore creates a cart store rehydrated from storage. A corrupt snapshot
// is not fatal: the store logs a warning and starts empty.
func NewStore(ctx context.Context, storage Storage, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		storage: storage,
		logger:  logger.With().Str("component", "cart-store").Logger(),
	}

	snap, err := storage.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load cart snapshot, starting with empty cart")
		return s, nil
	}
	if snap != nil {
		s.items = snap.Items
		s.logger.Debug().Int("item_count", len(snap.Items)).Msg("cart rehydrated from snapshot")
	}

	return s, nil
}

// find returns the index of the line item matching (product ID, colour name),
// or -1.
func (s *Store) find(productID, colorName string) int {
	for i, item := range s.items {
		if item.Product.ID == productID && item.Color.Name == colorName {
			return i
		}
	}
	return -1
}

// Add merges quantity into an existing line item for the same (product,
// colour) pair, or appends a new line. Quantity must be positive and the
// resulting line quantity may not exceed MaxLineQuantity.
func (s *Store) Add(ctx context.Context, product model.Product, color model.ColorSelection, quantity int) error {
	if quantity <= 0 {
		return model.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(product.ID, color.Name); i >= 0 {
		if s.items[i].Quantity+quantity > MaxLineQuantity {
			return model.ErrQuantityLimit
		}
		s.items[i].Quantity += quantity
	} else {
		if quantity > MaxLineQuantity {
			return model.ErrQuantityLimit
		}
		s.items = append(s.items, LineItem{Product: product, Color: color, Quantity: quantity})
	}

	return s.persist(ctx)
}

// Remove deletes the line item matching (product, colour). Removing an absent
// item is a no-op, not an error.
func (s *Store) Remove(ctx context.Context, product model.Product, color model.ColorSelection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(product.ID, color.Name)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	return s.persist(ctx)
}

// UpdateQuantity overwrites the quantity of the matching line item. A
// quantity of zero or below removes the line entirely. Updating an absent
// item is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, product model.Product, color model.ColorSelection, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, product, color)
	}
	if quantity > MaxLineQuantity {
		return model.ErrQuantityLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(product.ID, color.Name)
	if i < 0 {
		return nil
	}
	s.items[i].Quantity = quantity

	return s.persist(ctx)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// Count is the sum of quantities across all line items, recomputed on every
// read.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Items returns a copy of the current line items in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// persist writes the full snapshot. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) error {
	snap := Snapshot{
		Items:   make([]LineItem, len(s.items)),
		SavedAt: time.Now(),
	}
	copy(snap.Items, s.items)

	if err := s.storage.Save(ctx, snap); err != nil {
		s.logger.Error().Err(err).Int("item_count", len(snap.Items)).Msg("failed to save cart snapshot")
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}
