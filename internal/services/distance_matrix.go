package services

import "fulfillment-routing-service/internal/domain"

// Matrix entries are great-circle kilometers scaled to meters, truncated to
// an integer. The routing solver requires integral arc costs; truncation
// (not rounding) keeps total route costs reproducible across implementations.
const matrixScale = 1000

// BuildDistanceMatrix constructs the (n+1)x(n+1) pairwise arc-cost matrix
// for one depot and n stops. Index 0 is the depot; index i in 1..n maps
// positionally to stops[i-1]. The diagonal is zero, and the matrix is
// symmetric because great-circle distance is.
func BuildDistanceMatrix(depot domain.Coordinates, stops []domain.Coordinates) [][]int64 {
	locations := make([]domain.Coordinates, 0, 1+len(stops))
	locations = append(locations, depot)
	locations = append(locations, stops...)

	n := len(locations)
	matrix := make([][]int64, n)
	for i := range matrix {
		matrix[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			matrix[i][j] = int64(domain.HaversineKm(locations[i], locations[j]) * matrixScale)
		}
	}

	return matrix
}
