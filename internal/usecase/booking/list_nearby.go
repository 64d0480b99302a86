package booking

import (
	"context"
	"sort"

	domain "github.com/glowslot/salon-scheduler/internal/domain/booking"
	"github.com/glowslot/salon-scheduler/internal/geo"
)

type ListNearbySalons struct {
	repo domain.Repository
}

func NewListNearbySalons(repo domain.Repository) *ListNearbySalons {
	return &ListNearbySalons{repo: repo}
}

// Execute annotates every salon that has coordinates with its great-circle
// distance from the query point, nearest first. Salons without coordinates
// never appear.
func (uc *ListNearbySalons) Execute(
	ctx context.Context,
	lat float64,
	lon float64,
) ([]domain.NearbySalon, error) {

	salons, err := uc.repo.ListSalonsWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NearbySalon, 0, len(salons))
	for _, s := range salons {
		if !s.HasCoordinates() {
			continue
		}

		out = append(out, domain.NearbySalon{
			Salon:      s,
			DistanceKm: geo.DistanceKm(lat, lon, *s.Latitude, *s.Longitude),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out, nil
}
