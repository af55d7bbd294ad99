// File: services/agenda/calendar.go
package agenda

import "time"

// NavigationPolicy decides what happens to the day selection when the view
// moves to another month. Both behaviors shipped at different times, so the
// choice is explicit configuration rather than a hardcoded default.
type NavigationPolicy int

const (
	// ClearSelectionOnNavigate drops the selection on every month change.
	ClearSelectionOnNavigate NavigationPolicy = iota
	// KeepTodayInCurrentMonth re-selects today when the view lands on the
	// real current month, and clears the selection otherwise.
	KeepTodayInCurrentMonth
)

// MonthNamesPT are the displayed month names, January first.
var MonthNamesPT = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// WeekDaysPT are the grid column headers, Sunday first.
var WeekDaysPT = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// MonthView computes a 7-column month grid and tracks the selected day.
// It holds no server state and is deterministic under an injected clock.
type MonthView struct {
	year        int
	month       time.Month
	selectedDay int // 0 = no selection
	policy      NavigationPolicy
	now         func() time.Time
}

// Option configures a MonthView.
type Option func(*MonthView)

// WithNow injects the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(v *MonthView) { v.now = now }
}

// WithPolicy sets the month-navigation selection policy.
func WithPolicy(p NavigationPolicy) Option {
	return func(v *MonthView) { v.policy = p }
}

// NewMonthView opens the view on the current month with today selected.
func NewMonthView(opts ...Option) *MonthView {
	v := &MonthView{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	today := v.now()
	v.year = today.Year()
	v.month = today.Month()
	v.selectedDay = today.Day()
	return v
}

// NewMonthViewAt opens the view on an arbitrary month with no selection.
func NewMonthViewAt(year int, month time.Month, opts ...Option) *MonthView {
	v := &MonthView{now: time.Now, year: year, month: month}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Year returns the displayed year.
func (v *MonthView) Year() int { return v.year }

// Month returns the displayed month.
func (v *MonthView) Month() time.Month { return v.month }

// MonthNamePT returns the displayed month's pt-BR name.
func (v *MonthView) MonthNamePT() string { return MonthNamesPT[int(v.month)-1] }

// DaysInMonth computes the month length via day zero of the following month.
func (v *MonthView) DaysInMonth() int {
	return time.Date(v.year, v.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the number of placeholder cells before day 1, equal to the
// weekday index of the first of the month (Sunday = 0).
func (v *MonthView) LeadingBlanks() int {
	return int(time.Date(v.year, v.month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Days returns 1..DaysInMonth, recomputed on every call.
func (v *MonthView) Days() []int {
	days := make([]int, v.DaysInMonth())
	for i := range days {
		days[i] = i + 1
	}
	return days
}

// DayCell is one grid cell for rendering.
type DayCell struct {
	Day      int
	Blank    bool
	Today    bool
	Past     bool
	Selected bool
}

// Cells returns the full grid: leading blanks followed by the month's days.
func (v *MonthView) Cells() []DayCell {
	cells := make([]DayCell, 0, v.LeadingBlanks()+v.DaysInMonth())
	for i := 0; i < v.LeadingBlanks(); i++ {
		cells = append(cells, DayCell{Blank: true})
	}
	for d := 1; d <= v.DaysInMonth(); d++ {
		cells = append(cells, DayCell{
			Day:      d,
			Today:    v.IsToday(d),
			Past:     v.IsPastDay(d),
			Selected: d == v.selectedDay,
		})
	}
	return cells
}

// SelectedDay returns the selected day of month, or 0 when none is selected.
func (v *MonthView) SelectedDay() int { return v.selectedDay }

// SelectedDate returns the selected date and whether a day is selected.
func (v *MonthView) SelectedDate() (time.Time, bool) {
	if v.selectedDay == 0 {
		return time.Time{}, false
	}
	return time.Date(v.year, v.month, v.selectedDay, 0, 0, 0, 0, time.UTC), true
}

// SelectDay sets the selection and returns the selected date, the value the
// widget emits upward. No other side effects.
func (v *MonthView) SelectDay(day int) time.Time {
	v.selectedDay = day
	return time.Date(v.year, v.month, day, 0, 0, 0, 0, time.UTC)
}

// NextMonth advances one month, normalizing the year rollover.
func (v *MonthView) NextMonth() { v.navigate(1) }

// PrevMonth retreats one month, normalizing the year rollover.
func (v *MonthView) PrevMonth() { v.navigate(-1) }

func (v *MonthView) navigate(delta int) {
	t := time.Date(v.year, v.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	v.year, v.month = t.Year(), t.Month()

	switch v.policy {
	case KeepTodayInCurrentMonth:
		today := v.now()
		if today.Year() == v.year && today.Month() == v.month {
			v.selectedDay = today.Day()
		} else {
			v.selectedDay = 0
		}
	default:
		v.selectedDay = 0
	}
}

// IsToday reports whether the given day of the displayed month is today.
func (v *MonthView) IsToday(day int) bool {
	today := v.now()
	return day == today.Day() && v.month == today.Month() && v.year == today.Year()
}

// IsPastDay reports whether the day lies strictly before today. Today itself
// is not past; both sides are truncated to midnight.
func (v *MonthView) IsPastDay(day int) bool {
	today := v.now()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	date := time.Date(v.year, v.month, day, 0, 0, 0, 0, time.UTC)
	return date.Before(midnight)
}
