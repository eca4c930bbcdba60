package catalog

import (
	"errors"
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAccommodationRepo struct {
	accs map[string]models.Accommodation
}

func (f *fakeAccommodationRepo) Create(acc *models.Accommodation) error { f.accs[acc.ID] = *acc; return nil }
func (f *fakeAccommodationRepo) Update(acc *models.Accommodation) error { f.accs[acc.ID] = *acc; return nil }
func (f *fakeAccommodationRepo) Delete(id string) error                 { delete(f.accs, id); return nil }
func (f *fakeAccommodationRepo) GetByID(id string) (*models.Accommodation, error) {
	acc, ok := f.accs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &acc, nil
}
func (f *fakeAccommodationRepo) List(status string) ([]models.Accommodation, error) {
	var out []models.Accommodation
	for _, acc := range f.accs {
		if status == "" || acc.Status == status {
			out = append(out, acc)
		}
	}
	return out, nil
}

type fakeAmenityRepo struct {
	amenities map[string]models.Amenity
}

func (f *fakeAmenityRepo) Create(a *models.Amenity) error { f.amenities[a.ID] = *a; return nil }
func (f *fakeAmenityRepo) Update(a *models.Amenity) error { f.amenities[a.ID] = *a; return nil }
func (f *fakeAmenityRepo) Delete(id string) error         { delete(f.amenities, id); return nil }
func (f *fakeAmenityRepo) GetByID(id string) (*models.Amenity, error) {
	a, ok := f.amenities[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &a, nil
}
func (f *fakeAmenityRepo) List(status string) ([]models.Amenity, error) {
	var out []models.Amenity
	for _, a := range f.amenities {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func newService() *DefaultCatalogService {
	return &DefaultCatalogService{
		AccommodationRepo: &fakeAccommodationRepo{accs: map[string]models.Accommodation{}},
		AmenityRepo:       &fakeAmenityRepo{amenities: map[string]models.Amenity{}},
	}
}

func TestCreateAccommodationDefaultsUnpublished(t *testing.T) {
	svc := newService()

	created, err := svc.CreateAccommodation(models.Accommodation{Name: "Kubo Hut", Capacity: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusUnpublished, created.Status, "new entries start hidden")
}

func TestCreateAccommodationRejectsUnknownStatus(t *testing.T) {
	svc := newService()
	_, err := svc.CreateAccommodation(models.Accommodation{Name: "Kubo Hut", Status: "Hovering"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListAccommodationsPublicFilter(t *testing.T) {
	svc := newService()

	posted, err := svc.CreateAccommodation(models.Accommodation{Name: "Cottage", Status: models.StatusPosted})
	require.NoError(t, err)
	_, err = svc.CreateAccommodation(models.Accommodation{Name: "Drafty Villa"})
	require.NoError(t, err)

	public, err := svc.ListAccommodations(true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, posted.ID, public[0].ID)

	all, err := svc.ListAccommodations(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAmenityLifecycle(t *testing.T) {
	svc := newService()

	created, err := svc.CreateAmenity(models.Amenity{Name: "Karaoke", Price: 500, HasPrice: true})
	require.NoError(t, err)
	require.Equal(t, models.StatusUnpublished, created.Status)

	created.Status = models.StatusPosted
	require.NoError(t, svc.UpdateAmenity(*created))

	public, err := svc.ListAmenities(true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Karaoke", public[0].Name)

	require.NoError(t, svc.DeleteAmenity(created.ID))
	public, err = svc.ListAmenities(true)
	require.NoError(t, err)
	assert.Empty(t, public)
}
