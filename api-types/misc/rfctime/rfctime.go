package rfctime

import (
	"bytes"
	"encoding/json"
	"time"
)

// Format string for date-time in RFC3339 with a numeric time offset.
const RFC3339DateTimeFormat string = "2006-01-02T15:04:05.999-07:00"

// Format string for date-time in RFC3339, allowing Z as time-offset.
const RFC3339DateTimeFormatZ string = time.RFC3339Nano

// The platform serializes timestamps as zone-less local date-times.
// These formats cover what the server actually emits.
const (
	LocalDateTimeNano = "2006-01-02T15:04:05.999999999"
	LocalDateTimeSec  = "2006-01-02T15:04:05"
	LocalDateTimeMin  = "2006-01-02T15:04"
)

// LocalDateTime is a timestamp as the ordering platform sends it over JSON:
// usually a zone-less "2006-01-02T15:04:05[.fff]" local date-time, sometimes
// full RFC3339.
//
// This type is useful to interchange timestamps via network/file.
type LocalDateTime time.Time

func New(t time.Time) LocalDateTime {
	return LocalDateTime(t)
}

func (l LocalDateTime) Time() time.Time {
	return time.Time(l)
}

func (l LocalDateTime) Equal(other LocalDateTime) bool {
	return l.Time().Equal(other.Time())
}

// get string expression, formatted by LocalDateTimeSec.
func (l LocalDateTime) String() string {
	return time.Time(l).Format(LocalDateTimeSec)
}

// Parse a timestamp as the server emits one.
//
// Zone-less expressions are interpreted in the local timezone.
func Parse(s string) (LocalDateTime, error) {
	withZone := []string{
		RFC3339DateTimeFormatZ, RFC3339DateTimeFormat,
	}
	for _, format := range withZone {
		if t, err := time.Parse(format, s); err == nil {
			return LocalDateTime(t), nil
		}
	}

	zoneless := []string{
		LocalDateTimeNano, LocalDateTimeSec, LocalDateTimeMin,
	}
	var lastErr error
	for _, format := range zoneless {
		t, err := time.ParseInLocation(format, s, time.Local)
		if err == nil {
			return LocalDateTime(t), nil
		}
		lastErr = err
	}
	return LocalDateTime{}, lastErr
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Time().Format(LocalDateTimeNano))
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var expr string
	if err := json.Unmarshal(data, &expr); err != nil {
		return err
	}
	parsed, err := Parse(expr)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l LocalDateTime) MarshalYAML() (interface{}, error) {
	return l.Time().Format(LocalDateTimeNano), nil
}

func (l *LocalDateTime) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var expr string
	if err := unmarshal(&expr); err != nil {
		return err
	}
	parsed, err := Parse(expr)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
