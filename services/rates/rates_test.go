package rates

import (
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	table *models.RateTable
}

func (f *fakeRepo) Get() (*models.RateTable, error) { return f.table, nil }
func (f *fakeRepo) Put(rt *models.RateTable) error  { f.table = rt; return nil }

func TestGetReturnsNilWhenUnconfigured(t *testing.T) {
	svc := &DefaultRatesService{Repo: &fakeRepo{}}
	rt, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, rt)
}

func TestPutRoundTrips(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultRatesService{Repo: repo}

	table := models.RateTable{
		Adult:     models.TariffPair{Day: 50, Night: 70},
		Child:     models.TariffPair{Day: 30, Night: 40},
		PWDSenior: models.TariffPair{Day: 20, Night: 20},
	}
	require.NoError(t, svc.Put(table))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, table.Adult, got.Adult)
	assert.Equal(t, table.PWDSenior, got.PWDSenior)
}

func TestPutRejectsNegativeRates(t *testing.T) {
	svc := &DefaultRatesService{Repo: &fakeRepo{}}

	err := svc.Put(models.RateTable{Child: models.TariffPair{Day: -1}})
	assert.ErrorIs(t, err, ErrNegativeRate)

	err = svc.Put(models.RateTable{Adult: models.TariffPair{Night: -0.5}})
	assert.ErrorIs(t, err, ErrNegativeRate)

	// Zero is a legal price, not a negative one.
	assert.NoError(t, svc.Put(models.RateTable{}))
}
