package domain

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestEveryAngleBelow360FallsInsideItsSector(t *testing.T) {
	is := is.New(t)

	for a := 0.0; a < 360.0; a += 0.01 {
		s := FindCardinalSector(a)
		is.True(!s.IsZero())                          // every angle should resolve to a sector
		is.True(s.LowerBound <= a && a < s.UpperBound) // angle should lie in [lower, upper)
	}
}

func TestSectorBoundariesBelongToTheUpperSector(t *testing.T) {
	is := is.New(t)
	sectors := CardinalSectors()

	for i, s := range sectors {
		is.Equal(FindCardinalSector(s.LowerBound).Bearing, s.Bearing) // lower bound is inclusive
		if i > 0 {
			is.Equal(sectors[i-1].UpperBound, s.LowerBound) // sectors must be contiguous
		}
	}
}

func TestBoundaryValues(t *testing.T) {
	is := is.New(t)

	is.Equal(FindCardinalSector(0).Name, "North")
	is.Equal(FindCardinalSector(11.24).Bearing, "N")
	is.Equal(FindCardinalSector(11.25).Bearing, "NNE")
	is.Equal(FindCardinalSector(348.74).Bearing, "NNW")
	is.Equal(FindCardinalSector(348.75).Bearing, "N")
	is.Equal(FindCardinalSector(360).Name, "North")
	is.Equal(FindCardinalSector(360).Azimuth, 360.0)
	is.Equal(FindCardinalSector(90).Label(), "East (E)")
}

func TestAnglesOutsideTheCircleReturnTheEmptySector(t *testing.T) {
	is := is.New(t)

	is.Equal(FindCardinalSector(math.NaN()), CardinalSector{})
	is.Equal(FindCardinalSector(-0.5), CardinalSector{})
	is.Equal(FindCardinalSector(360.01), CardinalSector{})
	is.True(FindCardinalSector(math.Inf(1)).IsZero())
}

func TestTableHasSeventeenRows(t *testing.T) {
	is := is.New(t)
	sectors := CardinalSectors()

	is.Equal(len(sectors), 17)
	is.Equal(sectors[0].Name, sectors[16].Name)

	sectors[0].Name = "changed"
	is.Equal(CardinalSectors()[0].Name, "North") // callers get a copy
}
