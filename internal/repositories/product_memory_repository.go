package repositories

import (
	"sort"
	"sync"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It backs the service when no database is configured and
// keeps the same contract as the GORM store: id-ascending listing and
// duplicate-id rejection under the write lock.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]models.Product
	nextID   int
}

// NewMemoryProductRepository creates an empty in-memory repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// Count returns the number of stored products.
func (r *MemoryProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// List returns a page of products ordered by id ascending. Out-of-range
// skip/pageSize yields an empty slice, never an error.
func (r *MemoryProductRepository) List(skip, pageSize int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	if skip >= len(all) {
		return []models.Product{}, nil
	}
	end := skip + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

// GetByID returns a product by its ID, or (nil, nil) when absent.
func (r *MemoryProductRepository) GetByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Create stores a new product, assigning the next free ID when the incoming
// ID is zero. A colliding caller-supplied ID yields ErrDuplicateID.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	} else if _, exists := r.products[product.ID]; exists {
		return ErrDuplicateID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update overwrites the stored product. Updating an absent id is a no-op;
// the service checks existence before calling.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return nil
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID. Deleting an absent id is a no-op.
func (r *MemoryProductRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
	return nil
}
