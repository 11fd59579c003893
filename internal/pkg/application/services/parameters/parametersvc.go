package parameters

import (
	"context"
	"sync"

	"github.com/beevik/etree"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/opendata"
	"github.com/diwise/api-mosmix/internal/pkg/infrastructure/xmltree"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("api-mosmix/svcs/parameters")

const DefaultDefinitionsURL string = "https://opendata.dwd.de/weather/lib/MetElementDefinition.xml"

//go:generate moq -rm -out parametersvc_mock.go . ParameterService
type ParameterService interface {
	Describe(ctx context.Context, code string) domain.ParameterDescriptor
}

func NewParameterService(log zerolog.Logger, client opendata.HTTPClient, definitionsURL string) ParameterService {
	return &catalog{
		definitions: &definitionCache{
			url:    definitionsURL,
			client: client,
		},
		log: log,
	}
}

type catalog struct {
	definitions *definitionCache
	log         zerolog.Logger
}

// Describe never fails. Codes that cannot be resolved, for whatever reason, are
// described by domain.UnknownParameter.
func (c *catalog) Describe(ctx context.Context, code string) domain.ParameterDescriptor {
	var err error
	ctx, span := tracer.Start(ctx, "describe-parameter")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, c.log, ctx)

	doc, err := c.definitions.get(ctx)
	if err != nil {
		logger.Error().Err(err).Str("parameter", code).Msg("failed to load element definitions")
		return domain.UnknownParameter(code)
	}

	p, ok := lookup(doc, code)
	if !ok {
		logger.Debug().Str("parameter", code).Msg("no element definition found")
		return domain.UnknownParameter(code)
	}

	return p
}

func lookup(doc *etree.Document, code string) (domain.ParameterDescriptor, bool) {
	for _, shortName := range xmltree.FindAll(doc, "ShortName") {
		if shortName.Text() != code {
			continue
		}

		fields := map[string]string{
			shortName.Tag: xmltree.CollapsedText(shortName),
		}

		for _, sibling := range xmltree.FollowingSiblings(shortName) {
			fields[sibling.Tag] = xmltree.CollapsedText(sibling)
		}

		return newDescriptor(fields), true
	}

	return domain.ParameterDescriptor{}, false
}

func newDescriptor(fields map[string]string) domain.ParameterDescriptor {
	p := domain.ParameterDescriptor{
		ShortName:         fields["ShortName"],
		UnitOfMeasurement: fields["UnitOfMeasurement"],
		Description:       fields["Description"],
	}

	for k, v := range fields {
		switch k {
		case "ShortName", "UnitOfMeasurement", "Description":
		default:
			if p.Fields == nil {
				p.Fields = map[string]string{}
			}
			p.Fields[k] = v
		}
	}

	return p
}

// definitionCache downloads the element definition document on first use and
// keeps it for the lifetime of the process. A failed download is not cached, the
// next caller tries again. Concurrent first callers share a single download.
type definitionCache struct {
	url    string
	client opendata.HTTPClient

	mu  sync.RWMutex
	doc *etree.Document

	group singleflight.Group
}

func (dc *definitionCache) get(ctx context.Context) (*etree.Document, error) {
	dc.mu.RLock()
	doc := dc.doc
	dc.mu.RUnlock()

	if doc != nil {
		return doc, nil
	}

	v, err, _ := dc.group.Do(dc.url, func() (any, error) {
		dc.mu.RLock()
		cached := dc.doc
		dc.mu.RUnlock()

		if cached != nil {
			return cached, nil
		}

		b, err := opendata.Get(ctx, dc.client, dc.url)
		if err != nil {
			return nil, err
		}

		parsed, err := xmltree.Parse(b)
		if err != nil {
			return nil, err
		}

		dc.mu.Lock()
		dc.doc = parsed
		dc.mu.Unlock()

		return parsed, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*etree.Document), nil
}
