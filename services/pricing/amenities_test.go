package pricing

import (
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
)

func testCatalog() []models.Amenity {
	return []models.Amenity{
		{ID: "karaoke", Name: "Karaoke Machine", Price: 500, HasPrice: true, Status: models.StatusPosted},
		{ID: "grill", Name: "Extra Grill", Price: 200, HasPrice: true, Status: models.StatusPosted},
		{ID: "parking", Name: "Free Parking", Price: 0, HasPrice: false, Status: models.StatusPosted},
	}
}

func TestAmenitiesTotal(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		sel  models.AmenitySelection
		want float64
	}{
		{name: "empty selection", sel: models.AmenitySelection{}, want: 0},
		{name: "nil selection", sel: nil, want: 0},
		{name: "one priced amenity", sel: models.AmenitySelection{"karaoke": 1}, want: 500},
		{name: "two priced amenities", sel: models.AmenitySelection{"karaoke": 1, "grill": 1}, want: 700},
		{name: "free amenity contributes nothing", sel: models.AmenitySelection{"parking": 1}, want: 0},
		{name: "zero flag contributes nothing", sel: models.AmenitySelection{"karaoke": 0}, want: 0},
		{name: "unknown id ignored", sel: models.AmenitySelection{"jetski": 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmenitiesTotal(catalog, tt.sel))
		})
	}
}

func TestToggleAmenity_Clamping(t *testing.T) {
	sel := models.AmenitySelection{}

	sel = ToggleAmenity(sel, "karaoke", 5, DefaultClamp)
	assert.Equal(t, 1, sel["karaoke"], "values above 1 clamp to 1")

	sel = ToggleAmenity(sel, "grill", -3, DefaultClamp)
	assert.NotContains(t, sel, "grill", "values below 0 clamp to 0")
}

// Setting the same selection value twice yields the same total as
// setting it once.
func TestToggleAmenity_Idempotent(t *testing.T) {
	catalog := testCatalog()

	once := ToggleAmenity(models.AmenitySelection{}, "karaoke", 1, DefaultClamp)
	twice := ToggleAmenity(once, "karaoke", 1, DefaultClamp)

	assert.Equal(t, AmenitiesTotal(catalog, once), AmenitiesTotal(catalog, twice))
	assert.Equal(t, once, twice)
}

func TestToggleAmenity_DoesNotMutateInput(t *testing.T) {
	original := models.AmenitySelection{"karaoke": 1}
	_ = ToggleAmenity(original, "grill", 1, DefaultClamp)
	assert.Equal(t, models.AmenitySelection{"karaoke": 1}, original)
}

func TestClearAmenities(t *testing.T) {
	assert.Empty(t, ClearAmenities())
}
