package mechanic

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/rblc/parts-marketplace-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMechanicRepository struct {
	taken   map[string]bool
	created []entity.Mechanic
	checks  int
}

func newFakeRepo(taken ...string) *fakeMechanicRepository {
	f := &fakeMechanicRepository{taken: map[string]bool{}}
	for _, code := range taken {
		f.taken[code] = true
	}
	return f
}

func (f *fakeMechanicRepository) List(ctx context.Context) ([]entity.Mechanic, error) {
	return f.created, nil
}

func (f *fakeMechanicRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	f.checks++
	return f.taken[code], nil
}

func (f *fakeMechanicRepository) Create(ctx context.Context, mechanic *entity.Mechanic) error {
	mechanic.ID = uuid.Must(uuid.NewV4())
	f.taken[mechanic.ReferralCode] = true
	f.created = append(f.created, *mechanic)
	return nil
}

func (f *fakeMechanicRepository) Update(ctx context.Context, id uuid.UUID, req entity.UpdateMechanicRequest) (*entity.Mechanic, error) {
	return &entity.Mechanic{ID: id, ReferralCode: *req.ReferralCode}, nil
}

func (f *fakeMechanicRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

// sequence returns the given numbers in order, repeating the last one.
func sequence(numbers ...int) func(int) int {
	i := 0
	return func(int) int {
		n := numbers[i]
		if i < len(numbers)-1 {
			i++
		}
		return n
	}
}

func newTestService(repo *fakeMechanicRepository, numbers ...int) *mechanicService {
	return &mechanicService{repo: repo, businessNumber: "250786905080", randomN: sequence(numbers...)}
}

func registration() entity.MechanicRequest {
	return entity.MechanicRequest{
		Name:       "jean mugabo",
		GarageName: "JM Garage",
		Location:   "Remera",
		Phone:      "0788123456",
	}
}

func TestReferralCode(t *testing.T) {
	assert.Equal(t, "JM042", ReferralCode("jean mugabo", 42))
	assert.Equal(t, "JP007", ReferralCode("Jean Paul Habimana", 7))
	assert.Equal(t, "A999", ReferralCode("  aline ", 999))
	assert.Equal(t, "ÉN100", ReferralCode("élise niyonsaba", 100))
}

func TestMechanicService_RegisterMechanic(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, 42)

	req := registration()
	req.ReferralCode = "SELFCHOSEN"
	resp, err := svc.RegisterMechanic(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "JM042", resp.Mechanic.ReferralCode)
	require.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/250786905080?text="))

	text, err := url.QueryUnescape(strings.TrimPrefix(resp.WhatsAppLink, "https://wa.me/250786905080?text="))
	require.NoError(t, err)
	assert.Contains(t, text, "*Mechanic Registration*")
	assert.Contains(t, text, "Referral Code: JM042")
	assert.NotContains(t, text, "Email:")
}

func TestMechanicService_RegisterRetriesTakenCodes(t *testing.T) {
	repo := newFakeRepo("JM042", "JM043")
	svc := newTestService(repo, 42, 43, 44)

	resp, err := svc.RegisterMechanic(context.Background(), registration())

	require.NoError(t, err)
	assert.Equal(t, "JM044", resp.Mechanic.ReferralCode)
	assert.Equal(t, 3, repo.checks)
}

func TestMechanicService_RegisterGivesUpAfterTenAttempts(t *testing.T) {
	repo := newFakeRepo("JM042")
	svc := newTestService(repo, 42)

	_, err := svc.RegisterMechanic(context.Background(), registration())

	assert.ErrorIs(t, err, ErrReferralCodeUnavailable)
	assert.Equal(t, referralCodeAttempts, repo.checks)
	assert.Empty(t, repo.created)
}

func TestMechanicService_RegisterRejectsBlankFields(t *testing.T) {
	repo := newFakeRepo()
	req := registration()
	req.Location = "   "

	_, err := newTestService(repo, 1).RegisterMechanic(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidMechanic)
	assert.Zero(t, repo.checks)
}

func TestMechanicService_CreateMechanicKeepsAdminCode(t *testing.T) {
	repo := newFakeRepo()
	req := registration()
	req.ReferralCode = " vip001 "

	mechanic, err := newTestService(repo, 1).CreateMechanic(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "VIP001", mechanic.ReferralCode)
	assert.Zero(t, repo.checks)
}

func TestMechanicService_UpdateMechanic(t *testing.T) {
	svc := newTestService(newFakeRepo(), 1)
	id := uuid.Must(uuid.NewV4())

	_, err := svc.UpdateMechanic(context.Background(), id, entity.UpdateMechanicRequest{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)

	blank := " "
	_, err = svc.UpdateMechanic(context.Background(), id, entity.UpdateMechanicRequest{Phone: &blank})
	assert.ErrorIs(t, err, ErrInvalidMechanic)

	code := "ab123"
	mechanic, err := svc.UpdateMechanic(context.Background(), id, entity.UpdateMechanicRequest{ReferralCode: &code})
	require.NoError(t, err)
	assert.Equal(t, "AB123", mechanic.ReferralCode)
}
