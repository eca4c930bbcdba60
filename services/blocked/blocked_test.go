package blocked

import (
	"errors"
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	ranges map[string]models.BlockedRange
}

func newFakeRepo() *fakeRepo { return &fakeRepo{ranges: map[string]models.BlockedRange{}} }

func (f *fakeRepo) Create(b *models.BlockedRange) error { f.ranges[b.BlockID] = *b; return nil }
func (f *fakeRepo) Update(b *models.BlockedRange) error { f.ranges[b.BlockID] = *b; return nil }
func (f *fakeRepo) Delete(id string) error              { delete(f.ranges, id); return nil }
func (f *fakeRepo) GetByID(id string) (*models.BlockedRange, error) {
	b, ok := f.ranges[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return &b, nil
}
func (f *fakeRepo) List() ([]models.BlockedRange, error) {
	var out []models.BlockedRange
	for _, b := range f.ranges {
		out = append(out, b)
	}
	return out, nil
}
func (f *fakeRepo) ListManual() ([]models.BlockedRange, error) {
	var out []models.BlockedRange
	for _, b := range f.ranges {
		if !b.FromReservation {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeRepo) ListForWindow(startDate, endDate, accommodationID string) ([]models.BlockedRange, error) {
	return f.List()
}
func (f *fakeRepo) DeleteByReservation(reservationID string) error { return nil }

func TestCreateStripsReservationFields(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultBlockedService{Repo: repo}

	created, err := svc.Create(models.BlockedRange{
		StartDate:       "2024-06-01",
		EndDate:         "2024-06-03",
		Reason:          "resort maintenance",
		FromReservation: true,
		ReservationID:   "spoofed",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.BlockID)
	assert.False(t, created.FromReservation, "manual ranges are never reservation-derived")
	assert.Empty(t, created.ReservationID)
}

func TestCreateRejectsInvalidWindow(t *testing.T) {
	svc := &DefaultBlockedService{Repo: newFakeRepo()}

	_, err := svc.Create(models.BlockedRange{StartDate: "2024-06-03", EndDate: "2024-06-01"})
	assert.ErrorIs(t, err, ErrInvalidDates)

	_, err = svc.Create(models.BlockedRange{StartDate: "soon", EndDate: "2024-06-01"})
	assert.ErrorIs(t, err, ErrInvalidDates)
}

func TestUpdateAndDeleteRejectDerivedRanges(t *testing.T) {
	repo := newFakeRepo()
	repo.ranges["derived"] = models.BlockedRange{
		BlockID: "derived", StartDate: "2024-06-01", EndDate: "2024-06-03",
		FromReservation: true, ReservationID: "res-1",
	}
	svc := &DefaultBlockedService{Repo: repo}

	err := svc.Update(models.BlockedRange{BlockID: "derived", StartDate: "2024-06-01", EndDate: "2024-06-05"})
	assert.ErrorIs(t, err, ErrSystemManaged)

	assert.ErrorIs(t, svc.Delete("derived"), ErrSystemManaged)
	_, ok := repo.ranges["derived"]
	assert.True(t, ok, "derived range untouched")
}

func TestListEditableExcludesDerived(t *testing.T) {
	repo := newFakeRepo()
	repo.ranges["manual"] = models.BlockedRange{BlockID: "manual", StartDate: "2024-06-01", EndDate: "2024-06-02"}
	repo.ranges["derived"] = models.BlockedRange{BlockID: "derived", FromReservation: true}
	svc := &DefaultBlockedService{Repo: repo}

	editable, err := svc.ListEditable()
	require.NoError(t, err)
	require.Len(t, editable, 1)
	assert.Equal(t, "manual", editable[0].BlockID)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCheckWindowReturnsConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.ranges["b1"] = models.BlockedRange{BlockID: "b1", StartDate: "2024-06-01", EndDate: "2024-06-05"}
	repo.ranges["b2"] = models.BlockedRange{BlockID: "b2", StartDate: "2024-07-01", EndDate: "2024-07-05"}
	svc := &DefaultBlockedService{Repo: repo}

	conflicts, err := svc.CheckWindow("2024-06-03", "2024-06-04", "cottage-a")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "b1", conflicts[0].BlockID)

	conflicts, err = svc.CheckWindow("2024-08-01", "2024-08-02", "cottage-a")
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
