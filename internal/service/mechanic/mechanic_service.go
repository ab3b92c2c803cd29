package mechanic

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/rblc/parts-marketplace-backend/internal/repository"
	"github.com/rblc/parts-marketplace-backend/pkg/utils"
)

const referralCodeAttempts = 10

var (
	ErrInvalidMechanic         = errors.New("invalid mechanic")
	ErrEmptyUpdate             = errors.New("no fields to update")
	ErrReferralCodeUnavailable = errors.New("could not allocate a unique referral code")
)

type MechanicService interface {
	ListMechanics(ctx context.Context) ([]entity.Mechanic, error)
	RegisterMechanic(ctx context.Context, req entity.MechanicRequest) (*entity.RegisterMechanicResponse, error)
	CreateMechanic(ctx context.Context, req entity.MechanicRequest) (*entity.Mechanic, error)
	UpdateMechanic(ctx context.Context, id uuid.UUID, req entity.UpdateMechanicRequest) (*entity.Mechanic, error)
	DeleteMechanic(ctx context.Context, id uuid.UUID) error
}

type mechanicService struct {
	repo           repository.MechanicRepository
	businessNumber string
	randomN        func(n int) int
}

func NewMechanicService(repo repository.MechanicRepository, businessNumber string) MechanicService {
	return &mechanicService{
		repo:           repo,
		businessNumber: businessNumber,
		randomN:        rand.IntN,
	}
}

func (s *mechanicService) ListMechanics(ctx context.Context) ([]entity.Mechanic, error) {
	mechanics, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}
	return mechanics, nil
}

// RegisterMechanic is the public sign-up. The referral code is always
// generated and the response carries a wa.me link announcing the garage.
func (s *mechanicService) RegisterMechanic(ctx context.Context, req entity.MechanicRequest) (*entity.RegisterMechanicResponse, error) {
	req.ReferralCode = ""

	mechanic, err := s.CreateMechanic(ctx, req)
	if err != nil {
		return nil, err
	}

	message := utils.FormatMechanicMessage(utils.MechanicMessage{
		Name:         mechanic.Name,
		GarageName:   mechanic.GarageName,
		Location:     mechanic.Location,
		Phone:        mechanic.Phone,
		Email:        deref(mechanic.Email),
		ReferralCode: mechanic.ReferralCode,
	})

	return &entity.RegisterMechanicResponse{
		Mechanic:     mechanic,
		WhatsAppLink: utils.WhatsAppLink(s.businessNumber, message),
	}, nil
}

// CreateMechanic stores a mechanic, keeping a referral code supplied by an
// admin and generating one otherwise.
func (s *mechanicService) CreateMechanic(ctx context.Context, req entity.MechanicRequest) (*entity.Mechanic, error) {
	mechanic := &entity.Mechanic{
		Name:         strings.TrimSpace(req.Name),
		GarageName:   strings.TrimSpace(req.GarageName),
		Location:     strings.TrimSpace(req.Location),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        optional(req.Email),
		ReferralCode: strings.ToUpper(strings.TrimSpace(req.ReferralCode)),
	}

	if mechanic.Name == "" || mechanic.GarageName == "" || mechanic.Location == "" || mechanic.Phone == "" {
		return nil, fmt.Errorf("%w: name, garage_name, location and phone are required", ErrInvalidMechanic)
	}

	if mechanic.ReferralCode == "" {
		code, err := s.uniqueReferralCode(ctx, mechanic.Name)
		if err != nil {
			return nil, err
		}
		mechanic.ReferralCode = code
	}

	if err := s.repo.Create(ctx, mechanic); err != nil {
		return nil, fmt.Errorf("failed to create mechanic: %w", err)
	}
	return mechanic, nil
}

func (s *mechanicService) UpdateMechanic(ctx context.Context, id uuid.UUID, req entity.UpdateMechanicRequest) (*entity.Mechanic, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyUpdate
	}

	for _, value := range []*string{req.Name, req.GarageName, req.Location, req.Phone, req.ReferralCode} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return nil, fmt.Errorf("%w: fields must not be blank", ErrInvalidMechanic)
		}
	}
	if req.ReferralCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.ReferralCode))
		req.ReferralCode = &code
	}

	mechanic, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update mechanic %s: %w", id, err)
	}
	return mechanic, nil
}

func (s *mechanicService) DeleteMechanic(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mechanic %s: %w", id, err)
	}
	return nil
}

func (s *mechanicService) uniqueReferralCode(ctx context.Context, name string) (string, error) {
	for attempt := 0; attempt < referralCodeAttempts; attempt++ {
		code := ReferralCode(name, s.randomN(1000))
		exists, err := s.repo.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to generate referral code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrReferralCodeUnavailable
}

// ReferralCode builds a code from the first letters of the first two words of
// name followed by n as three digits, e.g. "Jean Mugabo", 42 gives "JM042".
func ReferralCode(name string, n int) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		if len(initials) == 2 {
			break
		}
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
	}
	return fmt.Sprintf("%s%03d", string(initials), n)
}

func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
