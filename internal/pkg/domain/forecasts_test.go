package domain

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestPressureIsConvertedToHectoPascal(t *testing.T) {
	is := is.New(t)
	r := newResult(t, "PPPP", UnitPascal, NumberValue(101325.0), AbsentValue(), TextValue("x"))

	r.Normalize(NormalizeOptions{PressureToHectoPascal: true})

	c, _ := r.Data.Column("PPPP")
	is.Equal(c, []Value{NumberValue(1013.25), AbsentValue(), TextValue("x")})
	is.Equal(r.Parameters[0].UnitOfMeasurement, UnitHectoPascal)
}

func TestTemperatureIsConvertedToCelsius(t *testing.T) {
	is := is.New(t)
	r := newResult(t, "TTT", UnitKelvin, NumberValue(273.15), NumberValue(283.15), AbsentValue())

	r.Normalize(NormalizeOptions{KelvinToCelsius: true})

	c, _ := r.Data.Column("TTT")
	is.Equal(c[0], NumberValue(0.0))
	is.True(math.Abs(c[1].Num-10.0) < 1e-9)
	is.True(c[2].IsAbsent())
	is.Equal(r.Parameters[0].UnitOfMeasurement, UnitCelsius)
}

func TestExtremeValueTemperaturesAreNotConverted(t *testing.T) {
	is := is.New(t)
	r := newResult(t, "E_TTT", UnitKelvin, NumberValue(1.5), NumberValue(2), NumberValue(3))

	r.Normalize(NormalizeOptions{KelvinToCelsius: true, PressureToHectoPascal: true})

	c, _ := r.Data.Column("E_TTT")
	is.Equal(c[0], NumberValue(1.5))
	is.Equal(r.Parameters[0].UnitOfMeasurement, UnitKelvin)
}

func TestNormalizingTwiceDoesNotConvertTwice(t *testing.T) {
	is := is.New(t)
	r := newResult(t, "PPPP", UnitPascal, NumberValue(101325.0), NumberValue(100000), NumberValue(99000))
	opts := NormalizeOptions{PressureToHectoPascal: true, KelvinToCelsius: true}

	r.Normalize(opts)
	r.Normalize(opts)

	c, _ := r.Data.Column("PPPP")
	is.Equal(c[0], NumberValue(1013.25))
}

func TestDuplicateDescriptorsConvertTheColumnOnce(t *testing.T) {
	is := is.New(t)
	r := newResult(t, "TTT", UnitKelvin, NumberValue(273.15), NumberValue(273.15), NumberValue(273.15))
	r.Parameters = append(r.Parameters, r.Parameters[0])

	r.Normalize(NormalizeOptions{KelvinToCelsius: true})

	c, _ := r.Data.Column("TTT")
	is.Equal(c[0], NumberValue(0.0))
	is.Equal(r.Parameters[1].UnitOfMeasurement, UnitCelsius)
}

func TestNoOptionsLeavesTheResultUntouched(t *testing.T) {
	is := is.New(t)
	r := newResult(t, "PPPP", UnitPascal, NumberValue(101325.0), NumberValue(1), NumberValue(2))

	r.Normalize(NormalizeOptions{})

	c, _ := r.Data.Column("PPPP")
	is.Equal(c[0], NumberValue(101325.0))
	is.Equal(r.Parameters[0].UnitOfMeasurement, UnitPascal)
}

func TestUnknownParameter(t *testing.T) {
	is := is.New(t)

	p := UnknownParameter("__not_a_real_code__")
	is.Equal(p.ShortName, `"__not_a_real_code__"`)
	is.Equal(p.UnitOfMeasurement, "-")
	is.Equal(p.Description, "")
}

func newResult(t *testing.T, code, unit string, values ...Value) *ForecastResult {
	is := is.New(t)

	steps := make([]string, len(values))
	for i := range steps {
		steps[i] = "t"
	}

	table := NewForecastTable(steps)
	is.NoErr(table.Set(code, values))

	return &ForecastResult{
		Data:       table,
		Parameters: []ParameterDescriptor{{ShortName: code, UnitOfMeasurement: unit}},
	}
}
