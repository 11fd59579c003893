package domain

import "strings"

const (
	UnitPascal      string = "Pa"
	UnitHectoPascal string = "hPa"
	UnitKelvin      string = "K"
	UnitCelsius     string = "°C"

	// Extreme value parameters, e.g. E_TTT, are never converted to Celsius
	extremeValuePrefix string = "E_"

	absoluteZeroCelsius float64 = 273.15
)

// ParameterDescriptor describes a forecast parameter as published in the
// element definition document
type ParameterDescriptor struct {
	ShortName         string            `json:"ShortName"`
	UnitOfMeasurement string            `json:"UnitOfMeasurement"`
	Description       string            `json:"Description"`
	Fields            map[string]string `json:"fields,omitempty"`
}

// UnknownParameter is returned for codes that the element definitions do not know about
func UnknownParameter(code string) ParameterDescriptor {
	return ParameterDescriptor{
		ShortName:         `"` + code + `"`,
		UnitOfMeasurement: "-",
		Description:       "",
	}
}

type ForecastResult struct {
	Dataset         string                `json:"dataset"`
	IntervalMinutes int                   `json:"interval"`
	Issuer          map[string]string     `json:"issuer"`
	IssueTime       string                `json:"IssueTime,omitempty"`
	NextUpdate      string                `json:"next_update,omitempty"`
	ID              string                `json:"id"`
	Description     string                `json:"description,omitempty"`
	Count           int                   `json:"count"`
	DateFrom        string                `json:"date_from"`
	DateTo          string                `json:"date_to"`
	Data            *ForecastTable        `json:"data"`
	Parameters      []ParameterDescriptor `json:"parameter"`
}

type NormalizeOptions struct {
	PressureToHectoPascal bool
	KelvinToCelsius       bool
}

// Normalize converts pressure and temperature columns in place. The unit of each
// descriptor is checked before converting, so calling it again is a no-op.
func (r *ForecastResult) Normalize(opts NormalizeOptions) {
	if r.Data == nil || (!opts.PressureToHectoPascal && !opts.KelvinToCelsius) {
		return
	}

	converted := map[string]string{}

	for i := range r.Parameters {
		p := &r.Parameters[i]

		if opts.PressureToHectoPascal && p.UnitOfMeasurement == UnitPascal {
			if _, done := converted[p.ShortName]; !done {
				r.Data.Apply(p.ShortName, func(f float64) float64 { return f / 100.0 })
				converted[p.ShortName] = UnitHectoPascal
			}
			p.UnitOfMeasurement = UnitHectoPascal
		}

		if opts.KelvinToCelsius && p.UnitOfMeasurement == UnitKelvin && !strings.HasPrefix(p.ShortName, extremeValuePrefix) {
			if _, done := converted[p.ShortName]; !done {
				r.Data.Apply(p.ShortName, func(f float64) float64 { return f - absoluteZeroCelsius })
				converted[p.ShortName] = UnitCelsius
			}
			p.UnitOfMeasurement = UnitCelsius
		}
	}
}
