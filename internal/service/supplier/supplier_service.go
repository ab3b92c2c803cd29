package supplier

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSupplier = errors.New("invalid supplier")
	ErrEmptyUpdate     = errors.New("no fields to update")
)

type SupplierService interface {
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	CreateSupplier(ctx context.Context, req entity.CreateSupplierRequest) (*entity.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, req entity.UpdateSupplierRequest) (*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

// ListSuppliers returns suppliers with the most trusted first.
func (s *supplierService) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, req entity.CreateSupplierRequest) (*entity.Supplier, error) {
	req.SupplierName = strings.TrimSpace(req.SupplierName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Location = strings.TrimSpace(req.Location)
	req.Specialization = strings.TrimSpace(req.Specialization)

	if req.SupplierName == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: supplier_name and phone are required", ErrInvalidSupplier)
	}
	if req.TrustScore == nil {
		zero := decimal.Zero
		req.TrustScore = &zero
	}
	if req.TrustScore.IsNegative() {
		return nil, fmt.Errorf("%w: trust_score must not be negative", ErrInvalidSupplier)
	}

	supplier, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, req entity.UpdateSupplierRequest) (*entity.Supplier, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	if req.SupplierName != nil && strings.TrimSpace(*req.SupplierName) == "" {
		return nil, fmt.Errorf("%w: supplier_name must not be blank", ErrInvalidSupplier)
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone must not be blank", ErrInvalidSupplier)
	}
	if req.TrustScore != nil && req.TrustScore.IsNegative() {
		return nil, fmt.Errorf("%w: trust_score must not be negative", ErrInvalidSupplier)
	}

	supplier, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update supplier %s: %w", id, err)
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", id, err)
	}
	return nil
}
