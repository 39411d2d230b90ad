package promotion

import (
	"testing"
	"time"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromotionRepo struct {
	promos map[string]models.Promotion // by code
}

func (r *fakePromotionRepo) GetByID(id string) (*models.Promotion, error) { return nil, nil }
func (r *fakePromotionRepo) GetByCode(code string) (*models.Promotion, error) {
	if p, ok := r.promos[code]; ok {
		return &p, nil
	}
	return nil, nil
}
func (r *fakePromotionRepo) ListActive() ([]models.Promotion, error) { return nil, nil }
func (r *fakePromotionRepo) Create(p *models.Promotion) error        { return nil }
func (r *fakePromotionRepo) Delete(id string) error                  { return nil }

func TestValidate(t *testing.T) {
	now := time.Now()
	svc := &DefaultPromotionService{Repo: &fakePromotionRepo{promos: map[string]models.Promotion{
		"SPRING25": {
			ID: "promo-1", Code: "SPRING25",
			SavingsType: models.SavingsPercentage, SavingsValue: 25,
			ValidFrom: now.Add(-24 * time.Hour), ValidUntil: now.Add(24 * time.Hour),
		},
		"SHINEONLY": {
			ID: "promo-2", Code: "SHINEONLY", BusinessID: "biz-shine",
			SavingsType: models.SavingsFixed, SavingsValue: 500,
			ValidFrom: now.Add(-24 * time.Hour), ValidUntil: now.Add(24 * time.Hour),
		},
		"EXPIRED": {
			ID: "promo-3", Code: "EXPIRED",
			SavingsType: models.SavingsFixed, SavingsValue: 500,
			ValidFrom: now.Add(-48 * time.Hour), ValidUntil: now.Add(-24 * time.Hour),
		},
	}}}

	p, err := svc.Validate("SPRING25", "biz-any", "svc-any", now)
	require.NoError(t, err)
	assert.Equal(t, "promo-1", p.ID)

	_, err = svc.Validate("NOPE", "", "", now)
	assert.ErrorIs(t, err, ErrUnknownCode)

	_, err = svc.Validate("EXPIRED", "", "", now)
	assert.ErrorIs(t, err, ErrOutsideWindow)

	_, err = svc.Validate("SHINEONLY", "biz-other", "", now)
	assert.ErrorIs(t, err, ErrNotApplicable)

	p, err = svc.Validate("SHINEONLY", "biz-shine", "", now)
	require.NoError(t, err)
	assert.Equal(t, "promo-2", p.ID)
}

func TestDiscount(t *testing.T) {
	percent := models.Promotion{SavingsType: models.SavingsPercentage, SavingsValue: 25}
	assert.Equal(t, int64(1500), Discount(percent, 6000))

	capped := models.Promotion{SavingsType: models.SavingsPercentage, SavingsValue: 50, MaxSavingsCents: 1000}
	assert.Equal(t, int64(1000), Discount(capped, 6000), "cap limits percentage savings")

	fixed := models.Promotion{SavingsType: models.SavingsFixed, SavingsValue: 500}
	assert.Equal(t, int64(500), Discount(fixed, 6000))

	bigFixed := models.Promotion{SavingsType: models.SavingsFixed, SavingsValue: 10000}
	assert.Equal(t, int64(6000), Discount(bigFixed, 6000), "discount never exceeds subtotal")

	unknown := models.Promotion{SavingsType: "mystery", SavingsValue: 100}
	assert.Zero(t, Discount(unknown, 6000))
}
