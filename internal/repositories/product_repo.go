package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrDuplicateID is returned by Create when a product with the same ID is
// already stored. Enforced at the insert boundary, so it holds even when
// two creates race past the handler's existence pre-check.
var ErrDuplicateID = errors.New("product id already exists")

// ProductRepository defines the interface for product data access.
//
// A lookup miss is a normal outcome: GetByID returns (nil, nil). Errors are
// reserved for store faults.
type ProductRepository interface {
	Count() (int64, error)
	List(skip, pageSize int) ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}
