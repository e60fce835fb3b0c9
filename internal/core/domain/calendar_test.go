package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/karbobc/workday/internal/core/domain"
)

func TestCalendarYear_Lookup(t *testing.T) {
	cal := domain.NewCalendarYear(map[string]bool{
		"2024-02-10": true,
		"2024-02-12": false,
	})

	isWorkday, ok := cal.Lookup("2024-02-10")
	assert.True(t, ok)
	assert.True(t, isWorkday)

	isWorkday, ok = cal.Lookup("2024-02-12")
	assert.True(t, ok)
	assert.False(t, isWorkday)

	_, ok = cal.Lookup("2024-02-13")
	assert.False(t, ok)

	isWorkday, ok = cal.LookupTime(time.Date(2024, time.February, 10, 23, 59, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.True(t, isWorkday)
}

func TestCalendarYear_IsImmutable(t *testing.T) {
	source := map[string]bool{"2024-01-01": false}
	cal := domain.NewCalendarYear(source)

	source["2024-01-01"] = true
	source["2024-01-02"] = true

	isWorkday, _ := cal.Lookup("2024-01-01")
	assert.False(t, isWorkday)
	assert.Equal(t, 1, cal.Len())

	dates := cal.Dates()
	dates[0] = "mutated"
	assert.Equal(t, []string{"2024-01-01"}, cal.Dates())
}

func TestCalendarYear_OrderedIteration(t *testing.T) {
	cal := domain.NewCalendarYear(map[string]bool{
		"2024-03-01": true,
		"2024-01-01": false,
		"2024-02-01": true,
	})

	assert.Equal(t, []string{"2024-01-01", "2024-02-01", "2024-03-01"}, cal.Dates())

	var seen []string
	for date := range cal.All() {
		seen = append(seen, date)
	}
	assert.Equal(t, cal.Dates(), seen)

	var first []string
	for date := range cal.All() {
		first = append(first, date)
		break
	}
	assert.Equal(t, []string{"2024-01-01"}, first)
	assert.Equal(t, 2024, cal.Year())
}

func TestCalendarYear_MarshalJSON(t *testing.T) {
	cal := domain.NewCalendarYear(map[string]bool{
		"2024-01-02": true,
		"2024-01-01": false,
	})

	data, err := json.Marshal(cal)
	require.NoError(t, err)
	assert.Equal(t, `{"2024-01-01":false,"2024-01-02":true}`, string(data))
}

func TestParseCalendarYear(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr error
	}{
		{name: "valid", input: `{"2024-01-01":false,"2024-01-02":true}`, wantLen: 2},
		{name: "empty object", input: `{}`, wantLen: 0},
		{name: "null", input: `null`, wantLen: 0},
		{name: "invalid key", input: `{"2024-13-01":true}`, wantErr: domain.ErrInvalidCalendarDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := domain.ParseCalendarYear([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, cal.Len())
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		_, err := domain.ParseCalendarYear([]byte(`{"2024-01-01":`))
		require.Error(t, err)
	})

	t.Run("wrong value type", func(t *testing.T) {
		_, err := domain.ParseCalendarYear([]byte(`{"2024-01-01":"yes"}`))
		require.Error(t, err)
	})
}

func TestCalendarYear_EqualAndDigest(t *testing.T) {
	a := domain.NewCalendarYear(map[string]bool{"2024-01-01": false, "2024-01-02": true})
	b := domain.NewCalendarYear(map[string]bool{"2024-01-02": true, "2024-01-01": false})
	c := domain.NewCalendarYear(map[string]bool{"2024-01-01": true, "2024-01-02": true})

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Digest(), b.Digest())
	assert.Len(t, a.DigestString(), 16)

	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Digest(), c.Digest())

	assert.False(t, a.Equal(nil))
	var empty *domain.CalendarYear
	assert.True(t, empty.Equal(nil))
}

func TestCalendarYear_EmptyYear(t *testing.T) {
	cal := domain.NewCalendarYear(nil)
	assert.Equal(t, 0, cal.Len())
	assert.Equal(t, 0, cal.Year())

	data, err := json.Marshal(cal)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestHolidayRecord_IsWorkday(t *testing.T) {
	assert.False(t, domain.HolidayRecord{Date: "2024-10-01", IsOffDay: true}.IsWorkday())
	assert.True(t, domain.HolidayRecord{Date: "2024-10-12", IsOffDay: false}.IsWorkday())
}

func TestKafkaSettings_Enabled(t *testing.T) {
	assert.False(t, domain.KafkaSettings{}.Enabled())
	assert.True(t, domain.KafkaSettings{Brokers: []string{"localhost:9092"}}.Enabled())
}
