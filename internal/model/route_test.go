package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/train-ticket-reservation/internal/model"
)

func sampleRoute() model.Route {
	return model.Route{
		{Station: "Beijing", Arrival: "08:00", Departure: "08:00", FareCents: 0, DistanceKM: 0},
		{Station: "Jinan", Arrival: "09:30", Departure: "09:35", FareCents: 15000, DistanceKM: 400},
		{Station: "Nanjing", Arrival: "11:30", Departure: "11:35", FareCents: 35000, DistanceKM: 1000},
		{Station: "Shanghai", Arrival: "13:00", Departure: "13:00", FareCents: 55300, DistanceKM: 1318},
	}
}

func TestRouteValidate(t *testing.T) {
	t.Run("accepts a well-formed route", func(t *testing.T) {
		require.NoError(t, sampleRoute().Validate())
	})

	t.Run("rejects a single stop", func(t *testing.T) {
		r := model.Route{{Station: "Beijing"}}
		assert.ErrorIs(t, r.Validate(), model.ErrBadRoute)
	})

	t.Run("rejects decreasing cumulative fares", func(t *testing.T) {
		r := sampleRoute()
		r[2].FareCents = 10000
		assert.ErrorIs(t, r.Validate(), model.ErrBadRoute)
	})
}

func TestRouteIndexOf(t *testing.T) {
	r := sampleRoute()

	assert.Equal(t, 0, r.IndexOf("Beijing"))
	assert.Equal(t, 3, r.IndexOf("Shanghai"))
	assert.Equal(t, -1, r.IndexOf("Wuhan"))
	assert.Equal(t, -1, r.IndexOf("beijing"), "matching is case-sensitive")

	t.Run("duplicate names resolve to the first match", func(t *testing.T) {
		dup := append(sampleRoute(), model.Stop{Station: "Jinan", FareCents: 60000, DistanceKM: 1500})
		assert.Equal(t, 1, dup.IndexOf("Jinan"))
	})
}

func TestRouteSegmentRange(t *testing.T) {
	r := sampleRoute()

	t.Run("covers boundary segments, excludes beyond end", func(t *testing.T) {
		from, to, err := r.SegmentRange("Jinan", "Shanghai")
		require.NoError(t, err)
		assert.Equal(t, 1, from)
		assert.Equal(t, 3, to)
	})

	t.Run("unknown station", func(t *testing.T) {
		_, _, err := r.SegmentRange("Beijing", "Wuhan")
		assert.ErrorIs(t, err, model.ErrStationNotFound)
	})

	t.Run("backward pair", func(t *testing.T) {
		_, _, err := r.SegmentRange("Shanghai", "Beijing")
		assert.ErrorIs(t, err, model.ErrInvalidRange)
	})

	t.Run("same station", func(t *testing.T) {
		_, _, err := r.SegmentRange("Jinan", "Jinan")
		assert.ErrorIs(t, err, model.ErrInvalidRange)
	})
}

func TestRouteFareAdditivity(t *testing.T) {
	r := sampleRoute()

	// Fare(A,C) == Fare(A,B) + Fare(B,C) for any forward triple.
	for i := 0; i < len(r); i++ {
		for j := i; j < len(r); j++ {
			for k := j; k < len(r); k++ {
				assert.Equal(t, r.FareBetween(i, k), r.FareBetween(i, j)+r.FareBetween(j, k))
			}
		}
	}
}

func TestRouteTimes(t *testing.T) {
	r := sampleRoute()

	assert.Equal(t, "09:35", r.DepartureAt("Jinan"))
	assert.Equal(t, "09:30", r.ArrivalAt("Jinan"))
	assert.Equal(t, "", r.DepartureAt("Wuhan"))
	assert.Equal(t, "", r.ArrivalAt("Wuhan"))
}
