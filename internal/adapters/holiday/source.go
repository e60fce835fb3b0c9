// Package holiday implements the remote holiday source.
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultSourceURL is the holiday-cn dataset; %d is replaced by the year.
	DefaultSourceURL = "https://raw.githubusercontent.com/NateScarlet/holiday-cn/master/%d.json"
	// DefaultFetchTimeout bounds each yearly fetch.
	DefaultFetchTimeout = 5 * time.Second
	// spanName is the span recorded for every fetch.
	spanName = "holiday.fetch"
	// maxPayloadBytes caps a yearly document; published years are a few KiB.
	maxPayloadBytes = 1 << 20
)

var _ ports.HolidaySource = (*Source)(nil)

// payload is the document published per year. Only days is consumed.
type payload struct {
	Year   int                     `json:"year"`
	Papers []string                `json:"papers"`
	Days   *[]domain.HolidayRecord `json:"days"`
}

// Source fetches holiday records over HTTP.
type Source struct {
	httpClient *http.Client
	urlPattern string
	timeout    time.Duration
	logger     ports.Logger
	tracer     ports.Tracer
}

// NewSource creates a Source for the URL pattern with the given per-call timeout.
func NewSource(urlPattern string, timeout time.Duration, logger ports.Logger, tracer ports.Tracer) *Source {
	return NewSourceWithClient(urlPattern, timeout, logger, tracer, &http.Client{Timeout: timeout})
}

// NewSourceWithClient creates a Source that sends its requests through client.
func NewSourceWithClient(
	urlPattern string,
	timeout time.Duration,
	logger ports.Logger,
	tracer ports.Tracer,
	client *http.Client,
) *Source {
	if urlPattern == "" {
		urlPattern = DefaultSourceURL
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &Source{
		httpClient: client,
		urlPattern: urlPattern,
		timeout:    timeout,
		logger:     logger,
		tracer:     tracer,
	}
}

// Fetch returns the holiday records of year. Every failure degrades to an
// empty result so a missing remote file falls back to the weekday policy.
func (s *Source) Fetch(ctx context.Context, year int) []domain.HolidayRecord {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()
	span.SetAttribute("year", year)

	records, err := s.query(ctx, year)
	if err != nil {
		span.RecordError(err)
		s.logger.Warn("holiday fetch failed, using weekday policy", "year", year, "error", err.Error())
		return []domain.HolidayRecord{}
	}

	span.SetAttribute("records", len(records))
	return records
}

func (s *Source) query(ctx context.Context, year int) ([]domain.HolidayRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	url := fmt.Sprintf(s.urlPattern, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHolidaySourceRequestFailed.Error())
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrHolidaySourceRequestFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrHolidaySourceStatus, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHolidaySourceRequestFailed.Error())
	}
	if len(body) > maxPayloadBytes {
		return nil, zerr.With(zerr.With(domain.ErrHolidaySourceTooLarge, "limit", maxPayloadBytes), "url", url)
	}

	var doc payload
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrHolidaySourceParseFailed.Error())
	}

	// A document without days is a valid, empty year.
	if doc.Days == nil {
		return []domain.HolidayRecord{}, nil
	}
	return *doc.Days, nil
}
