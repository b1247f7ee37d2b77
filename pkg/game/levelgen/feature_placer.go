package levelgen

import (
	"mazegen/pkg/engine/rng"
	"mazegen/pkg/engine/world"
)

// PlaceFeatures fills requests in order by sampling tiles from the whole grid.
// A sampled tile that is already occupied costs an attempt and is skipped.
// Requests that run out of attempts come back as shortfalls rather than errors.
func PlaceFeatures(grid *world.Grid, requests []FeatureRequest, src rng.Source) ([]Placement, []Shortfall) {
	var placements []Placement
	var shortfalls []Shortfall

	for _, req := range requests {
		placed, attempts := placeFeature(grid, req, src, &placements)
		if req.Quota > 0 && placed < req.Quota {
			shortfalls = append(shortfalls, Shortfall{
				Kind:     req.Kind,
				Quota:    req.Quota,
				Placed:   placed,
				Attempts: attempts,
			})
		}
	}

	return placements, shortfalls
}

func placeFeature(grid *world.Grid, req FeatureRequest, src rng.Source, out *[]Placement) (placed, attempts int) {
	if grid == nil || grid.IsEmpty() {
		return 0, 0
	}

	maxAttempts := req.MaxAttempts()
	for placed < req.Quota && attempts < maxAttempts {
		attempts++

		tile := grid.At(src.Intn(grid.Len()))
		if !grid.ClaimTile(tile) {
			continue
		}

		*out = append(*out, newTilePlacement(req.Kind, tile, req.VerticalOffset))
		placed++
	}
	return placed, attempts
}
