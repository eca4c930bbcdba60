package pricing

import "palmera/models"

// AmenitiesTotal sums the prices of the selected amenities. Only catalog
// entries with HasPrice contribute; free amenities and unselected entries
// add nothing. Selection flags are binary, so a flag is worth at most one
// unit of the amenity's price.
func AmenitiesTotal(catalog []models.Amenity, sel models.AmenitySelection) float64 {
	if len(sel) == 0 {
		return 0
	}
	total := 0.0
	for _, a := range catalog {
		if !a.HasPrice {
			continue
		}
		if sel[a.ID] > 0 {
			total += a.Price
		}
	}
	return total
}

// ToggleAmenity writes an include flag for the given amenity, clamped
// into {0,1}. Writing the same value twice is a no-op. The input map is
// not mutated; the resulting selection is returned.
func ToggleAmenity(sel models.AmenitySelection, amenityID string, v int, policy ClampPolicy) models.AmenitySelection {
	out := make(models.AmenitySelection, len(sel)+1)
	for k, val := range sel {
		out[k] = val
	}
	flag := policy.Flag(v)
	if flag == 0 {
		delete(out, amenityID)
	} else {
		out[amenityID] = flag
	}
	return out
}

// ClearAmenities resets the selection to empty.
func ClearAmenities() models.AmenitySelection {
	return models.AmenitySelection{}
}
