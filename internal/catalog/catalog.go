package catalog

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stepkick/go-storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidDraft    = errors.New("invalid product draft")
)

// Store owns the mutable list of sellable products. Edits are session-scoped:
// they live only as long as the Store instance and are never persisted.
type Store struct {
	mu       sync.Mutex
	products []models.Product
}

// New seeds the store with the given catalog, newest first.
func New(seed []models.Product) *Store {
	products := make([]models.Product, len(seed))
	for i, p := range seed {
		products[i] = cloneProduct(p)
	}

	return &Store{products: products}
}

// cloneProduct copies the product together with its slice fields, so callers
// holding a returned product share no backing array with the store.
func cloneProduct(p models.Product) models.Product {
	out := p
	out.Images = slices.Clone(p.Images)
	out.Colors = slices.Clone(p.Colors)
	out.Sizes = slices.Clone(p.Sizes)
	out.Tags = slices.Clone(p.Tags)
	return out
}

// Draft holds the admin-supplied fields for a new product. Name, Brand, and a
// positive Price are required; everything else defaults.
type Draft struct {
	Name          string
	Brand         string
	Category      string
	Price         decimal.Decimal
	OriginalPrice decimal.Decimal
	Stock         int
	Images        []string
	Colors        []string
	Sizes         []string
	Tags          []string
	Discount      int
}

// Update carries optional replacement values for an existing product. Nil
// fields are left untouched, so a partial edit can never blank a field by
// accident.
type Update struct {
	Name          *string
	Brand         *string
	Category      *string
	Price         *decimal.Decimal
	OriginalPrice *decimal.Decimal
	Stock         *int
	Images        []string
	Colors        []string
	Sizes         []string
	Tags          []string
	Discount      *int
}

// List returns all products in display order, most recently added first.
func (s *Store) List() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = cloneProduct(p)
	}
	return out
}

type OffsetPage struct {
	Items      []models.Product `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

func (s *Store) ListPage(page, pageSize int) (*OffsetPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("invalid page %d size %d", page, pageSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.products)
	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	items := make([]models.Product, end-offset)
	for i, p := range s.products[offset:end] {
		items[i] = cloneProduct(p)
	}

	totalPages := total / pageSize
	if total%pageSize > 0 {
		totalPages++
	}

	return &OffsetPage{
		Items:      items,
		Total:      int64(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *Store) Get(id int64) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := cloneProduct(s.products[i])
			return &p, nil
		}
	}

	return nil, ErrProductNotFound
}

// Add validates the draft, assigns a fresh time-derived id, and prepends the
// product so admin-added items list first.
func (s *Store) Add(draft Draft) (*models.Product, error) {
	if draft.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidDraft)
	}
	if draft.Brand == "" {
		return nil, fmt.Errorf("%w: brand is required", ErrInvalidDraft)
	}
	if !draft.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidDraft)
	}

	originalPrice := draft.OriginalPrice
	if originalPrice.IsZero() {
		originalPrice = draft.Price
	}

	product := models.Product{
		ID:            time.Now().UnixMilli(),
		Name:          draft.Name,
		Brand:         draft.Brand,
		Category:      draft.Category,
		Price:         draft.Price,
		OriginalPrice: originalPrice,
		Stock:         draft.Stock,
		Images:        draft.Images,
		Colors:        draft.Colors,
		Sizes:         draft.Sizes,
		Tags:          draft.Tags,
		Discount:      draft.Discount,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]models.Product{cloneProduct(product)}, s.products...)

	out := cloneProduct(product)
	return &out, nil
}

// Update merges the non-nil fields into the product matching id. An unknown id
// is a no-op.
func (s *Store) Update(id int64, update Update) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		p := &s.products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Brand != nil {
			p.Brand = *update.Brand
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.OriginalPrice != nil {
			p.OriginalPrice = *update.OriginalPrice
		}
		if update.Stock != nil {
			p.Stock = *update.Stock
		}
		if update.Images != nil {
			p.Images = slices.Clone(update.Images)
		}
		if update.Colors != nil {
			p.Colors = slices.Clone(update.Colors)
		}
		if update.Sizes != nil {
			p.Sizes = slices.Clone(update.Sizes)
		}
		if update.Tags != nil {
			p.Tags = slices.Clone(update.Tags)
		}
		if update.Discount != nil {
			p.Discount = *update.Discount
		}
		return
	}
}

// Delete removes the product matching id. An unknown id is a no-op.
func (s *Store) Delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}
