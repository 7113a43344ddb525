// Package civil implements calendar arithmetic in the tracker's fixed civil
// timezone (IST, UTC+5:30). Date-only client inputs and report buckets are
// always interpreted in this zone, never in the host timezone.
package civil

import "time"

// Zone is the fixed civil timezone, UTC+5:30.
var Zone = time.FixedZone("IST", int(Offset/time.Second))

// Offset is Zone's offset from UTC.
const Offset = 5*time.Hour + 30*time.Minute

const dateLayout = "2006-01-02"

var monthLabels = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Month identifies one civil calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Label returns the fixed three-letter abbreviation for m's month.
func (m Month) Label() string {
	return monthLabels[m.Month-1]
}

// Date parses a YYYY-MM-DD string as local midnight in the fixed zone and
// returns the corresponding UTC instant.
func Date(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, Zone)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// EndOfDay parses a YYYY-MM-DD string as 23:59:59.999 local in the fixed
// zone, the inclusive end of a date-range filter.
func EndOfDay(s string) (time.Time, error) {
	t, err := Date(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(24*time.Hour - time.Millisecond), nil
}

// MonthWindow returns the UTC instants bounding the civil month monthsBack
// months before now's month in the fixed zone. monthsBack 0 means the
// current month. The window runs from the first day 00:00:00.000 to the
// last day 23:59:59.999, both local wall-clock times converted back to UTC.
func MonthWindow(now time.Time, monthsBack int) (start, end time.Time) {
	local := now.In(Zone)
	first := time.Date(local.Year(), local.Month()-time.Month(monthsBack), 1, 0, 0, 0, 0, Zone)
	last := first.AddDate(0, 1, 0).Add(-time.Millisecond)
	return first.UTC(), last.UTC()
}

// TrailingMonths returns the n civil months ending at now's month in the
// fixed zone, oldest first.
func TrailingMonths(now time.Time, n int) []Month {
	local := now.In(Zone)
	months := make([]Month, 0, n)
	for i := n - 1; i >= 0; i-- {
		t := time.Date(local.Year(), local.Month()-time.Month(i), 1, 0, 0, 0, 0, Zone)
		months = append(months, Month{Year: t.Year(), Month: t.Month()})
	}
	return months
}
