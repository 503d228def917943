package calendar

import "time"

// Day is one cell of the month grid.
type Day struct {
	Number    int  `json:"number"`
	WorkedOut bool `json:"worked_out"`
	Today     bool `json:"today"`
}

// View is everything a client needs to draw the month.
type View struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	MonthName     string `json:"month_name"`
	DaysInMonth   int    `json:"days_in_month"`
	LeadingBlanks int    `json:"leading_blanks"`
	Days          []Day  `json:"days"`
	WorkoutDays   []int  `json:"workout_days"`
	WorkoutCount  int    `json:"workout_count"`
	Previous      Ref    `json:"previous"`
	Next          Ref    `json:"next"`
}

// Ref points at a neighbouring month.
type Ref struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func refOf(m Month) Ref { return Ref{Year: m.Year, Month: int(m.Month)} }

// Build renders m against the history. now marks today's cell when it falls
// inside m.
func Build(history []time.Time, m Month, now time.Time, loc *time.Location) View {
	if loc == nil {
		loc = time.Local
	}
	worked := DaysWithWorkout(history, m, loc)
	isWorkout := make(map[int]bool, len(worked))
	for _, d := range worked {
		isWorkout[d] = true
	}

	today := 0
	if m.contains(now, loc) {
		today = now.In(loc).Day()
	}

	n := m.Days()
	days := make([]Day, n)
	for i := range days {
		num := i + 1
		days[i] = Day{Number: num, WorkedOut: isWorkout[num], Today: num == today}
	}

	return View{
		Year:          m.Year,
		Month:         int(m.Month),
		MonthName:     m.Name(),
		DaysInMonth:   n,
		LeadingBlanks: int(m.FirstWeekday()),
		Days:          days,
		WorkoutDays:   worked,
		WorkoutCount:  WorkoutCountInMonth(history, m, loc),
		Previous:      refOf(m.Previous()),
		Next:          refOf(m.Next()),
	}
}
