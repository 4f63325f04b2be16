package datefmt

import (
	"fmt"
	"github.com/goodsign/monday"
	"time"
)

// Locale is fixed, the output only ever comes in one language
const Locale = monday.LocaleEsES

type Formatter struct {
	location *time.Location
}

// NewFormatter renders times in loc. A nil loc means time.Local.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{location: loc}
}

func (f *Formatter) Location() *time.Location {
	return f.location
}

// Format writes t as a full date plus a long time, e.g.
// "jueves, 4 de noviembre de 2010, 1:43:01 UTC"
func (f *Formatter) Format(t time.Time) string {
	return f.FormatDate(t) + ", " + f.FormatTime(t)
}

// FormatDate is the full date style: weekday, day, month name and year
func (f *Formatter) FormatDate(t time.Time) string {
	t = t.In(f.location)
	weekday := monday.Format(t, "Monday", Locale)
	month := monday.Format(t, "January", Locale)
	return fmt.Sprintf("%s, %d de %s de %d", weekday, t.Day(), month, t.Year())
}

// FormatTime is the long time style. Hours are not zero padded, which
// time.Format has no verb for.
func (f *Formatter) FormatTime(t time.Time) string {
	t = t.In(f.location)
	zone, _ := t.Zone()
	return fmt.Sprintf("%d:%02d:%02d %s", t.Hour(), t.Minute(), t.Second(), zone)
}
