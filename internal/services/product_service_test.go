package services_test

import (
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) List(skip, pageSize int) ([]models.Product, error) {
	args := m.Called(skip, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_ListPage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	stored := []models.Product{
		{ID: 1, StockNo: "S001", StockName: "Test1", Price: 50, Category: "A"},
		{ID: 2, StockNo: "S002", StockName: "Test2", Price: 60, Category: "B"},
	}

	mockRepo.On("Count").Return(int64(2), nil).Once()
	mockRepo.On("List", 0, 10).Return(stored, nil).Once()

	result, err := service.ListPage(0, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalRecords)
	assert.Len(t, result.Records, 2)
	assert.Equal(t, stored, result.Records)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListPage_TotalIgnoresPaging(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// A page deep into the store still reports the full count.
	mockRepo.On("Count").Return(int64(42), nil).Once()
	mockRepo.On("List", 40, 5).Return([]models.Product{{ID: 41}, {ID: 42}}, nil).Once()

	result, err := service.ListPage(40, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.TotalRecords)
	assert.Len(t, result.Records, 2)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListPage_OutOfRange(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Count").Return(int64(2), nil).Once()
	mockRepo.On("List", 100, 10).Return([]models.Product{}, nil).Once()

	result, err := service.ListPage(100, 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalRecords)
	assert.Empty(t, result.Records)
	assert.NotNil(t, result.Records)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListPage_StoreFault(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Count").Return(int64(0), fmt.Errorf("database error")).Once()

	result, err := service.ListPage(0, 10)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: 1, StockNo: "S001", StockName: "Test1", Price: 50, Category: "A"}

	// Successful retrieval
	mockRepo.On("GetByID", 1).Return(expected, nil).Once()
	product, err := service.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// Absent product is a normal outcome, not an error
	mockRepo.On("GetByID", 99).Return(nil, nil).Once()
	product, err = service.GetByID(99)
	assert.NoError(t, err)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	newProduct := &models.Product{StockNo: "S010", StockName: "New Product", Price: 19.90, Category: "C"}

	// Successful creation: the store assigns the id
	mockRepo.On("Create", newProduct).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 7
	}).Return(nil).Once()
	created, err := service.Create(newProduct)
	assert.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "S010", created.StockNo)

	// Store fault propagates unchanged
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	created, err = service.Create(newProduct)
	assert.Error(t, err)
	assert.Nil(t, created)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_Update(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: 1, StockNo: "S001", StockName: "Old", Price: 10, Category: "A"}
	incoming := &models.Product{ID: 1, StockNo: "S099", StockName: "New", Price: 20, Category: "B"}

	mockRepo.On("GetByID", 1).Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 1 && p.StockNo == "S099" && p.StockName == "New" &&
			p.Price == 20 && p.Category == "B"
	})).Return(nil).Once()

	updated, err := service.Update(incoming)

	assert.NoError(t, err)
	assert.True(t, updated)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Update_Absent(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// Absent id returns false with no error and no write.
	mockRepo.On("GetByID", 99).Return(nil, nil).Once()

	updated, err := service.Update(&models.Product{ID: 99, StockNo: "S099", StockName: "X", Price: 1, Category: "A"})

	assert.NoError(t, err)
	assert.False(t, updated)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Update_StoreFault(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// A store fault must not be converted into a false "not found".
	mockRepo.On("GetByID", 1).Return(nil, fmt.Errorf("database error")).Once()

	updated, err := service.Update(&models.Product{ID: 1, StockNo: "S001", StockName: "X", Price: 1, Category: "A"})

	assert.Error(t, err)
	assert.False(t, updated)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_Delete(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: 1, StockNo: "S001", StockName: "Test1", Price: 50, Category: "A"}

	// Successful deletion
	mockRepo.On("GetByID", 1).Return(existing, nil).Once()
	mockRepo.On("Delete", 1).Return(nil).Once()
	deleted, err := service.Delete(1)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// A second delete finds nothing and returns false
	mockRepo.On("GetByID", 1).Return(nil, nil).Once()
	deleted, err = service.Delete(1)
	assert.NoError(t, err)
	assert.False(t, deleted)
	mockRepo.AssertExpectations(t)
}
