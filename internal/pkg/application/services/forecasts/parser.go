package forecasts

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/diwise/api-mosmix/internal/pkg/application/services/parameters"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/xmltree"
)

var ErrStationNotFound = errors.New("station not found")

const (
	issueTimeLayout  string = "2006-01-02T15:04:05.999999999Z"
	nextUpdateLayout string = "2006-01-02T15:04:05.000000Z"

	windDirectionParameter string = "DD"
)

type Parser struct {
	parameters parameters.ParameterService
}

func NewParser(params parameters.ParameterService) *Parser {
	return &Parser{parameters: params}
}

// Parse builds a ForecastResult for one station from an extracted forecast
// document. A missing product definition, time axis or station is an error,
// parameters without a known definition are not.
func (p *Parser) Parse(ctx context.Context, document []byte, ds Dataset, stationID string, opts domain.NormalizeOptions) (*domain.ForecastResult, error) {
	doc, err := xmltree.Parse(document)
	if err != nil {
		return nil, err
	}

	result := &domain.ForecastResult{
		Dataset:         ds.Name,
		IntervalMinutes: ds.IntervalMinutes,
		Issuer:          map[string]string{},
		Parameters:      []domain.ParameterDescriptor{},
	}

	if err = readProductDefinition(doc, result); err != nil {
		return nil, err
	}

	timeSteps, err := readTimeSteps(doc)
	if err != nil {
		return nil, err
	}

	result.Data = domain.NewForecastTable(timeSteps)

	station := findStation(doc, stationID)
	if station == nil {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, stationID)
	}

	result.ID = stationID

	for _, sibling := range xmltree.FollowingSiblings(station) {
		switch sibling.Tag {
		case "description":
			result.Description = sibling.Text()
		case "ExtendedData":
			if err = p.readForecasts(ctx, sibling, result); err != nil {
				return nil, err
			}
		}
	}

	if err = addWindDirections(result.Data); err != nil {
		return nil, err
	}

	result.Normalize(opts)

	result.Count = result.Data.Len()
	result.DateFrom, result.DateTo = timeRange(timeSteps)

	return result, nil
}

func readProductDefinition(doc *etree.Document, result *domain.ForecastResult) error {
	definition := xmltree.FindFirst(doc, "ProductDefinition")
	if definition == nil {
		return errors.New("document has no ProductDefinition")
	}

	for _, child := range definition.ChildElements() {
		text := xmltree.CollapsedText(child)
		result.Issuer[child.Tag] = text

		if child.Tag == "IssueTime" {
			issued, err := time.Parse(issueTimeLayout, text)
			if err != nil {
				return fmt.Errorf("failed to parse issue time %q: %w", text, err)
			}

			result.IssueTime = text
			result.NextUpdate = issued.Add(time.Duration(result.IntervalMinutes) * time.Minute).Format(nextUpdateLayout)
		}
	}

	return nil
}

func readTimeSteps(doc *etree.Document) ([]string, error) {
	steps := xmltree.FindFirst(doc, "ForecastTimeSteps")
	if steps == nil {
		return nil, errors.New("document has no ForecastTimeSteps")
	}

	timeSteps := []string{}
	for _, step := range steps.ChildElements() {
		timeSteps = append(timeSteps, step.Text())
	}

	return timeSteps, nil
}

func findStation(doc *etree.Document, stationID string) *etree.Element {
	for _, name := range xmltree.FindAll(doc, "name") {
		if name.Text() == stationID {
			return name
		}
	}
	return nil
}

// readForecasts adds one column per Forecast element. The parameter code is the
// value of the element's first attribute, whatever that attribute is called.
func (p *Parser) readForecasts(ctx context.Context, extendedData *etree.Element, result *domain.ForecastResult) error {
	for _, forecast := range extendedData.ChildElements() {
		if forecast.Tag != "Forecast" {
			continue
		}

		code, ok := xmltree.FirstAttribute(forecast)
		if !ok || code == "" {
			continue
		}

		for _, value := range forecast.ChildElements() {
			if value.Tag != "value" {
				continue
			}

			tokens := strings.Fields(value.Text())
			column := make([]domain.Value, 0, len(tokens))
			for _, token := range tokens {
				column = append(column, domain.ParseValue(token))
			}

			if err := result.Data.Set(code, column); err != nil {
				return fmt.Errorf("station %s: %w", result.ID, err)
			}

			result.Parameters = append(result.Parameters, p.parameters.Describe(ctx, code))
		}
	}

	return nil
}

func addWindDirections(table *domain.ForecastTable) error {
	directions := make([]domain.Value, table.Len())

	if angles, ok := table.Column(windDirectionParameter); ok {
		for i, v := range angles {
			angle, isNumber := v.Float()
			if !isNumber || math.IsNaN(angle) {
				continue
			}

			if sector := domain.FindCardinalSector(angle); !sector.IsZero() {
				directions[i] = domain.TextValue(sector.Label())
			}
		}
	}

	return table.Set(domain.WindDirectionColumn, directions)
}

func timeRange(timeSteps []string) (string, string) {
	if len(timeSteps) == 0 {
		return "", ""
	}

	from, to := timeSteps[0], timeSteps[0]
	for _, t := range timeSteps[1:] {
		if t < from {
			from = t
		}
		if t > to {
			to = t
		}
	}

	return from, to
}
