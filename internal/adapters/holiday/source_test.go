package holiday_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/karbobc/workday/internal/adapters/holiday"
	"github.com/karbobc/workday/internal/adapters/telemetry"
	"github.com/karbobc/workday/internal/core/domain"
	"github.com/karbobc/workday/internal/core/ports"
	"github.com/karbobc/workday/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPattern = "https://holidays.test/%d.json"

const sample2024 = `{
  "$schema": "https://raw.githubusercontent.com/NateScarlet/holiday-cn/master/schema.json",
  "year": 2024,
  "papers": ["https://www.gov.cn/zhengce/content/202310/content_6911527.htm"],
  "days": [
    {"name": "元旦", "date": "2024-01-01", "isOffDay": true},
    {"name": "春节", "date": "2024-02-04", "isOffDay": false},
    {"name": "春节", "date": "2024-02-10", "isOffDay": true}
  ]
}`

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func respond(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	}
}

func TestSource_Fetch_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var requested string
	client := newMockClient(func(req *http.Request) (*http.Response, error) {
		requested = req.URL.String()
		return respond(http.StatusOK, sample2024)(req)
	})
	source := holiday.NewSourceWithClient(testPattern, time.Second, mockLogger, telemetry.NewNoOpTracer(), client)

	records := source.Fetch(context.Background(), 2024)

	assert.Equal(t, "https://holidays.test/2024.json", requested)
	assert.Equal(t, []domain.HolidayRecord{
		{Name: "元旦", Date: "2024-01-01", IsOffDay: true},
		{Name: "春节", Date: "2024-02-04", IsOffDay: false},
		{Name: "春节", Date: "2024-02-10", IsOffDay: true},
	}, records)
}

func TestSource_Fetch_MissingDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	client := newMockClient(respond(http.StatusOK, `{"year": 2031, "papers": []}`))
	source := holiday.NewSourceWithClient(testPattern, time.Second, mockLogger, telemetry.NewNoOpTracer(), client)

	records := source.Fetch(context.Background(), 2031)

	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSource_Fetch_Degrades(t *testing.T) {
	tests := []struct {
		name        string
		handler     func(*http.Request) (*http.Response, error)
		errContains string
	}{
		{
			name:        "not found",
			handler:     respond(http.StatusNotFound, "404: Not Found"),
			errContains: domain.ErrHolidaySourceStatus.Error(),
		},
		{
			name:        "server error",
			handler:     respond(http.StatusInternalServerError, ""),
			errContains: domain.ErrHolidaySourceStatus.Error(),
		},
		{
			name:        "malformed body",
			handler:     respond(http.StatusOK, `{"days": [`),
			errContains: domain.ErrHolidaySourceParseFailed.Error(),
		},
		{
			name:        "wrong shape",
			handler:     respond(http.StatusOK, `{"days": {"date": "2024-01-01"}}`),
			errContains: domain.ErrHolidaySourceParseFailed.Error(),
		},
		{
			name:        "oversized body",
			handler:     respond(http.StatusOK, `{"year": 2024, "papers": ["`+strings.Repeat("x", 1<<20)+`"], "days": []}`),
			errContains: domain.ErrHolidaySourceTooLarge.Error(),
		},
		{
			name: "transport failure",
			handler: func(*http.Request) (*http.Response, error) {
				return nil, fmt.Errorf("connection refused")
			},
			errContains: domain.ErrHolidaySourceRequestFailed.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().
				Warn("holiday fetch failed, using weekday policy", "year", 2024, "error", gomock.Cond(func(x any) bool {
					msg, ok := x.(string)
					return ok && strings.Contains(msg, tt.errContains)
				}))

			source := holiday.NewSourceWithClient(
				testPattern, time.Second, mockLogger, telemetry.NewNoOpTracer(), newMockClient(tt.handler),
			)

			records := source.Fetch(context.Background(), 2024)

			require.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestSource_Fetch_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	client := newMockClient(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})
	source := holiday.NewSourceWithClient(
		testPattern, 20*time.Millisecond, mockLogger, telemetry.NewNoOpTracer(), client,
	)

	start := time.Now()
	records := source.Fetch(context.Background(), 2024)

	assert.Empty(t, records)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSource_Fetch_RecordsSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockTracer := mocks.NewMockTracer(ctrl)
	mockSpan := mocks.NewMockSpan(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "holiday.fetch").
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, mockSpan
		})
	mockSpan.EXPECT().SetAttribute("year", 2025)
	mockSpan.EXPECT().RecordError(gomock.Any())
	mockSpan.EXPECT().End()

	client := newMockClient(respond(http.StatusNotFound, ""))
	source := holiday.NewSourceWithClient(testPattern, time.Second, mockLogger, mockTracer, client)

	assert.Empty(t, source.Fetch(context.Background(), 2025))
}

func TestNewSource_Server(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2024.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sample2024)
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	source := holiday.NewSource(server.URL+"/%d.json", time.Second, mockLogger, telemetry.NewNoOpTracer())

	assert.Len(t, source.Fetch(context.Background(), 2024), 3)
	assert.Empty(t, source.Fetch(context.Background(), 2023))
}
