package availability

import (
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
)

func TestIsBlocked_ResortWide(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "2024-05-10", EndDate: "2024-05-12", Reason: "maintenance"},
	}

	// Overlaps at 05-11.
	assert.True(t, IsBlocked("2024-05-11", "2024-05-13", "cottage-a", ranges))
	// Resort-wide blocks apply to every accommodation.
	assert.True(t, IsBlocked("2024-05-11", "2024-05-13", "hall-b", ranges))
}

func TestIsBlocked_PerAccommodation(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", AccommodationID: "cottage-a", StartDate: "2024-05-10", EndDate: "2024-05-12"},
	}

	assert.True(t, IsBlocked("2024-05-10", "2024-05-11", "cottage-a", ranges))
	assert.False(t, IsBlocked("2024-05-10", "2024-05-11", "hall-b", ranges))
}

func TestIsBlocked_HalfOpenBounds(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "2024-05-10", EndDate: "2024-05-12"},
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "ends exactly at block start", start: "2024-05-08", end: "2024-05-10", want: false},
		{name: "starts exactly at block end", start: "2024-05-12", end: "2024-05-14", want: false},
		{name: "touches first blocked day", start: "2024-05-09", end: "2024-05-11", want: true},
		{name: "fully inside block", start: "2024-05-10", end: "2024-05-11", want: true},
		{name: "fully covers block", start: "2024-05-01", end: "2024-05-20", want: true},
		{name: "well before block", start: "2024-04-01", end: "2024-04-05", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlocked(tt.start, tt.end, "cottage-a", ranges))
		})
	}
}

// Reservation-derived blocks feed the same predicate as manual ones.
func TestIsBlocked_ReservationDerivedHonored(t *testing.T) {
	ranges := []models.BlockedRange{
		{
			BlockID:         "b1",
			AccommodationID: "cottage-a",
			StartDate:       "2024-06-01",
			EndDate:         "2024-06-03",
			FromReservation: true,
			ReservationID:   "r1",
		},
	}

	assert.True(t, IsBlocked("2024-06-02", "2024-06-04", "cottage-a", ranges))
}

func TestConflicts_ReturnsMatches(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "2024-05-10", EndDate: "2024-05-12"},
		{BlockID: "b2", AccommodationID: "hall-b", StartDate: "2024-05-11", EndDate: "2024-05-13"},
		{BlockID: "b3", AccommodationID: "cottage-a", StartDate: "2024-05-01", EndDate: "2024-05-05"},
	}

	hits := Conflicts("2024-05-11", "2024-05-13", "cottage-a", ranges)
	assert.Len(t, hits, 1)
	assert.Equal(t, "b1", hits[0].BlockID)
}

func TestConflicts_MalformedRecordsSkipped(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "not-a-date", EndDate: "2024-05-12"},
		{BlockID: "b2", StartDate: "2024-05-10", EndDate: ""},
	}

	assert.Empty(t, Conflicts("2024-05-11", "2024-05-13", "cottage-a", ranges))
}

func TestConflicts_MalformedProposalFailsOpen(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "2024-05-10", EndDate: "2024-05-12"},
	}

	assert.Empty(t, Conflicts("garbage", "2024-05-13", "cottage-a", ranges))
}

func TestConflicts_MissingEndTreatedAsOneDay(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "2024-05-10", EndDate: "2024-05-12"},
	}

	assert.Len(t, Conflicts("2024-05-11", "", "cottage-a", ranges), 1)
	assert.Empty(t, Conflicts("2024-05-12", "", "cottage-a", ranges))
}

func TestIsDateBlocked(t *testing.T) {
	ranges := []models.BlockedRange{
		{BlockID: "b1", StartDate: "2024-05-10", EndDate: "2024-05-12"},
	}

	assert.True(t, IsDateBlocked("2024-05-10", "cottage-a", ranges))
	assert.True(t, IsDateBlocked("2024-05-11", "cottage-a", ranges))
	assert.False(t, IsDateBlocked("2024-05-12", "cottage-a", ranges), "end date is exclusive")
	assert.False(t, IsDateBlocked("bogus", "cottage-a", ranges))
}
