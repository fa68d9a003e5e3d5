package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/insightdump/pkg/markup"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	diffUnit        = "days"
)

func (s *state) temporal(v reflect.Value, indentLevel int) string {
	t, ok := v.Interface().(time.Time)
	if !ok {
		return ""
	}

	indent := s.indent(indentLevel)
	inner := s.indent(indentLevel + 1)

	_, week := t.ISOWeek()
	leap := strconv.FormatBool(isLeapYear(t.Year()))

	fields := []struct {
		name  string
		value string
	}{
		{"datetime", t.Format(timestampLayout)},
		{"timezone", s.text(t.Location().String())},
		{"timestamp", strconv.FormatInt(t.Unix(), 10)},
		{"dayOfWeek", t.Weekday().String()},
		{"dayOfYear", strconv.Itoa(t.YearDay())},
		{"weekOfYear", fmt.Sprintf("%02d", week)},
		{"isLeapYear", markup.Wrap(booleanClass(leap), leap)},
		{"diffWithNow", diffWithNow(t, s.engine.now())},
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("%s%s: %s,", inner, f.name, f.value))
	}
	lines[len(lines)-1] = strings.TrimSuffix(lines[len(lines)-1], ",")

	var b strings.Builder
	b.WriteString(markup.Wrap(ClassDateTime, v.Type().String()))
	b.WriteString(" {\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("}")

	return markup.Wrap(ClassDateTimeContent, b.String())
}

// diffWithNow is the signed number of whole days between t and now:
// positive when t is in the past
func diffWithNow(t, now time.Time) string {
	d := now.Sub(t)
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	days := int64(d / (24 * time.Hour))
	return fmt.Sprintf("%s%d %s", sign, days, diffUnit)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
