package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDate is returned when a date string is not in YYYY-MM-DD form.
	ErrInvalidDate = zerr.New("invalid date")

	// ErrInvalidCalendarDate is returned when a persisted calendar contains a key that is not a valid date.
	ErrInvalidCalendarDate = zerr.New("calendar contains an invalid date key")

	// ErrDateNotFound is returned when a date has no entry in the loaded calendar.
	ErrDateNotFound = zerr.New("incorrect date")

	// ErrSnapshotUnavailable is returned when no calendar has been loaded into memory yet.
	ErrSnapshotUnavailable = zerr.New("calendar snapshot is not loaded")

	// ErrSnapshotNotFound is returned when the persisted calendar file does not exist.
	ErrSnapshotNotFound = zerr.New("calendar file not found")

	// ErrLockTimeout is returned when the calendar lock could not be acquired in time.
	ErrLockTimeout = zerr.New("timed out acquiring calendar lock")

	// ErrLockAcquireFailed is returned when the calendar lock could not be acquired.
	ErrLockAcquireFailed = zerr.New("failed to acquire calendar lock")

	// ErrStoreCreateFailed is returned when the calendar directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create calendar directory")

	// ErrStoreReadFailed is returned when the calendar file cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read calendar file")

	// ErrStoreUnmarshalFailed is returned when the calendar file cannot be parsed.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal calendar file")

	// ErrStoreMarshalFailed is returned when the calendar cannot be serialized.
	ErrStoreMarshalFailed = zerr.New("failed to marshal calendar")

	// ErrStoreWriteFailed is returned when the calendar file cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write calendar file")

	// ErrRefreshInProgress is returned when a refresh cycle is triggered while another one is running.
	ErrRefreshInProgress = zerr.New("refresh already in progress")

	// ErrRefreshFailed is returned when a refresh cycle could not persist the computed calendar.
	ErrRefreshFailed = zerr.New("refresh cycle failed")

	// ErrHolidaySourceStatus is returned internally when the holiday source answers with a non-200 status.
	ErrHolidaySourceStatus = zerr.New("holiday source returned unexpected status")

	// ErrHolidaySourceRequestFailed is returned internally when the holiday source cannot be reached.
	ErrHolidaySourceRequestFailed = zerr.New("holiday source request failed")

	// ErrHolidaySourceParseFailed is returned internally when the holiday payload is malformed.
	ErrHolidaySourceParseFailed = zerr.New("failed to parse holiday payload")

	// ErrHolidaySourceTooLarge is returned internally when the holiday payload exceeds the size cap.
	ErrHolidaySourceTooLarge = zerr.New("holiday payload too large")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start calendar watcher")

	// ErrSchedulerStartFailed is returned when the refresh schedule cannot be registered.
	ErrSchedulerStartFailed = zerr.New("failed to start refresh scheduler")

	// ErrServerFailed is returned when the HTTP server stops unexpectedly.
	ErrServerFailed = zerr.New("http server failed")

	// ErrPublishFailed is returned when a refresh event cannot be published.
	ErrPublishFailed = zerr.New("failed to publish refresh event")
)
