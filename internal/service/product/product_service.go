package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrEmptyUpdate    = errors.New("no fields to update")
)

type ProductService interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	CreateProduct(ctx context.Context, req entity.CreateProductRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req entity.UpdateProductRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

// ListProducts returns the catalog newest first. Blank filter values are
// ignored.
func (s *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	filter.Category = nonBlank(filter.Category)
	filter.Brand = nonBlank(filter.Brand)
	filter.Model = nonBlank(filter.Model)
	filter.Search = nonBlank(filter.Search)

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req entity.CreateProductRequest) (*entity.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	req.CarBrand = strings.TrimSpace(req.CarBrand)
	req.CarModel = strings.TrimSpace(req.CarModel)

	switch {
	case req.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case req.Category == "":
		return nil, fmt.Errorf("%w: category is required", ErrInvalidProduct)
	case req.CarBrand == "" || req.CarModel == "":
		return nil, fmt.Errorf("%w: car_brand and car_model are required", ErrInvalidProduct)
	case req.Price == nil || req.Price.IsNegative():
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}

	if req.StockStatus == "" {
		req.StockStatus = entity.StockStatusInStock
	}
	if !entity.IsValidStockStatus(req.StockStatus) {
		return nil, fmt.Errorf("%w: unknown stock_status %q", ErrInvalidProduct, req.StockStatus)
	}

	product, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req entity.UpdateProductRequest) (*entity.Product, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	for field, value := range map[string]*string{
		"name":      req.Name,
		"category":  req.Category,
		"car_brand": req.CarBrand,
		"car_model": req.CarModel,
	} {
		if value == nil {
			continue
		}
		*value = strings.TrimSpace(*value)
		if *value == "" {
			return nil, fmt.Errorf("%w: %s must not be blank", ErrInvalidProduct, field)
		}
	}

	if req.Price != nil && req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if req.StockStatus != nil && !entity.IsValidStockStatus(*req.StockStatus) {
		return nil, fmt.Errorf("%w: unknown stock_status %q", ErrInvalidProduct, *req.StockStatus)
	}

	product, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

func nonBlank(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
