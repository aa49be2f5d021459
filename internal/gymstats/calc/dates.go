package calc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

const isoDateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var dateLocation atomic.Pointer[time.Location]

// SetLocation sets the zone in which instants are turned into calendar
// dates. A nil loc resets it to time.Local.
func SetLocation(loc *time.Location) {
	dateLocation.Store(loc)
}

// Location returns the zone set by SetLocation, time.Local by default.
func Location() *time.Location {
	if loc := dateLocation.Load(); loc != nil {
		return loc
	}
	return time.Local
}

// TimeConverter is implemented by document-store timestamp wrappers
// which know how to turn themselves into a time.Time.
type TimeConverter interface {
	AsTime() time.Time
}

// Timestamp is the {seconds, nanoseconds} timestamp shape produced by
// document stores and legacy clients.
type Timestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

func (ts Timestamp) AsTime() time.Time {
	return time.Unix(ts.Seconds, ts.Nanoseconds)
}

// StartOfDay returns midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MondayOf returns local midnight of the Monday starting the ISO week which contains t.
func MondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// WeekKey is the ISO calendar date of MondayOf(t), used as a grouping key.
// The date is taken in t's own location, not in UTC.
func WeekKey(t time.Time) string {
	return ToISODate(MondayOf(t))
}

func ToISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// ParseISODate parses a YYYY-MM-DD date at midnight in loc.
func ParseISODate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(isoDateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ToCalendarDate normalizes every date representation a record may carry
// into a calendar date (midnight, time stripped) in Location(). Supported
// inputs are time.Time, *time.Time, Date, TimeConverter implementations,
// ISO/RFC3339 strings and epoch milliseconds.
func ToCalendarDate(value any) (Date, error) {
	return ToCalendarDateIn(value, Location())
}

// ToCalendarDateIn is ToCalendarDate with an explicit zone. Instants are
// moved into loc before the time is stripped; bare YYYY-MM-DD strings are
// wall dates and keep their day.
func ToCalendarDateIn(value any, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.Local
	}
	switch v := value.(type) {
	case Date:
		return v, nil
	case *Date:
		if v == nil {
			return Date{}, ErrInvalidDate
		}
		return *v, nil
	case time.Time:
		if v.IsZero() {
			return Date{}, ErrInvalidDate
		}
		return DateOf(v.In(loc)), nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return Date{}, ErrInvalidDate
		}
		return DateOf(v.In(loc)), nil
	case TimeConverter:
		return DateOf(v.AsTime().In(loc)), nil
	case string:
		return parseDateString(v, loc)
	case json.Number:
		millis, err := v.Int64()
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, v.String())
		}
		return DateOf(time.UnixMilli(millis).In(loc)), nil
	case int64:
		return DateOf(time.UnixMilli(v).In(loc)), nil
	case int:
		return DateOf(time.UnixMilli(int64(v)).In(loc)), nil
	case float64:
		return DateOf(time.UnixMilli(int64(v)).In(loc)), nil
	case map[string]any:
		seconds, ok := v["seconds"].(float64)
		if !ok {
			return Date{}, ErrInvalidDate
		}
		nanos, _ := v["nanoseconds"].(float64)
		ts := Timestamp{Seconds: int64(seconds), Nanoseconds: int64(nanos)}
		return DateOf(ts.AsTime().In(loc)), nil
	default:
		return Date{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, value)
	}
}

func parseDateString(s string, loc *time.Location) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrInvalidDate
	}
	if t, err := time.ParseInLocation(isoDateLayout, s, loc); err == nil {
		return DateOf(t), nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t.In(loc)), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// Date is a calendar date. It marshals as YYYY-MM-DD and unmarshals from
// anything ToCalendarDate accepts, in Location().
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	return Date{Time: StartOfDay(t)}
}

func (d Date) String() string {
	return ToISODate(d.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if raw == nil {
		*d = Date{}
		return nil
	}
	if obj, ok := raw.(map[string]any); ok {
		raw = timestampFromNumbers(obj)
	}
	parsed, err := ToCalendarDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// with UseNumber the object values arrive as json.Number
func timestampFromNumbers(obj map[string]any) any {
	ts := Timestamp{}
	seconds, ok := obj["seconds"].(json.Number)
	if !ok {
		return obj
	}
	s, err := seconds.Int64()
	if err != nil {
		return obj
	}
	ts.Seconds = s
	if nanos, ok := obj["nanoseconds"].(json.Number); ok {
		if n, err := nanos.Int64(); err == nil {
			ts.Nanoseconds = n
		}
	}
	return ts
}
