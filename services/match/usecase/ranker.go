package usecase

import (
	"math"
	"sort"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// Rating and response-rate gaps at or below these are treated as ties
const (
	ratingTieBand   = 0.5
	responseTieBand = 0.1
)

// RankCandidates orders candidates best first: higher average rating, then
// higher response rate, then shorter distance. Name-matched candidates count
// as distance 0. Equal candidates keep their selection order.
func RankCandidates(candidates []*models.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return better(candidates[i], candidates[j])
	})
}

func better(a, b *models.Candidate) bool {
	ratingDiff := a.Volunteer.AverageRating - b.Volunteer.AverageRating
	if math.Abs(ratingDiff) > ratingTieBand {
		return ratingDiff > 0
	}

	responseDiff := a.Volunteer.ResponseRate - b.Volunteer.ResponseRate
	if math.Abs(responseDiff) > responseTieBand {
		return responseDiff > 0
	}

	return distanceOf(a) < distanceOf(b)
}

func distanceOf(c *models.Candidate) float64 {
	if !c.DistanceKnown {
		return 0
	}
	return c.Distance
}
