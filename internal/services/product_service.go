package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ProductService wraps the product store with pagination, existence checks
// and full-field update semantics. Store faults propagate to the caller
// unchanged; a missing product is a nil/false result, never an error.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewProductService creates a new ProductService. mqClient may be nil.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListPage returns one page of products plus the unfiltered total count.
// TotalRecords ignores skip/pageSize; a range past the end of the store
// yields an empty page, never an error.
func (s *ProductService) ListPage(skip, pageSize int) (*models.PaginationResult, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	records, err := s.repo.List(skip, pageSize)
	if err != nil {
		return nil, err
	}
	return models.NewPaginationResult(total, records), nil
}

// GetByID retrieves a single product. A missing product returns (nil, nil).
func (s *ProductService) GetByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create persists a new product and returns it with its assigned ID.
func (s *ProductService) Create(product *models.Product) (*models.Product, error) {
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publishEvent(rabbitmq.ProductCreated, product)
	return product, nil
}

// Update overwrites all four mutable fields of the product identified by
// product.ID. It returns false when no such product exists.
func (s *ProductService) Update(product *models.Product) (bool, error) {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	existing.StockNo = product.StockNo
	existing.StockName = product.StockName
	existing.Price = product.Price
	existing.Category = product.Category

	if err := s.repo.Update(existing); err != nil {
		return false, err
	}
	s.publishEvent(rabbitmq.ProductUpdated, existing)
	return true, nil
}

// Delete removes the product with the given ID. It returns false when no
// such product exists.
func (s *ProductService) Delete(id int) (bool, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.Delete(id); err != nil {
		return false, err
	}
	s.publishEvent(rabbitmq.ProductDeleted, existing)
	return true, nil
}

// publishEvent emits a product change event. Publishing is best-effort: a
// broker failure is logged inside the client and never fails the operation
// that triggered it.
func (s *ProductService) publishEvent(action string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(action, product); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
