package summary

import (
	"sort"
	"time"

	"github.com/Flyrell/burnbite/internal/tracker"
)

// Day holds every record logged under one date string.
type Day struct {
	Date     string
	Workouts []tracker.Workout
	Meals    []tracker.Meal
	Burned   int
	Consumed int
}

// BadgeLine is an earned badge and its count.
type BadgeLine struct {
	Badge tracker.Badge
	Count int
}

// Data is the printable summary of a session.
type Data struct {
	GeneratedAt   time.Time
	Days          []Day
	TotalBurned   int
	TotalConsumed int
	TotalMinutes  int
	Badges        []BadgeLine
}

// Net returns calories consumed minus calories burned.
func (d Data) Net() int {
	return d.TotalConsumed - d.TotalBurned
}

// Build groups workouts and meals by their date string. Days are sorted by
// date; records within a day keep their logged order. Badges are listed in
// the given order and only when earned.
func Build(
	workouts []tracker.Workout,
	meals []tracker.Meal,
	badges map[tracker.Badge]int,
	order []tracker.Badge,
	now time.Time,
) Data {
	days := make(map[string]*Day)
	getDay := func(date string) *Day {
		d := days[date]
		if d == nil {
			d = &Day{Date: date}
			days[date] = d
		}
		return d
	}

	data := Data{GeneratedAt: now}

	for _, w := range workouts {
		d := getDay(w.Date)
		d.Workouts = append(d.Workouts, w)
		d.Burned += w.Calories
		data.TotalBurned += w.Calories
		data.TotalMinutes += w.Duration
	}
	for _, m := range meals {
		d := getDay(m.Date)
		d.Meals = append(d.Meals, m)
		d.Consumed += m.Calories
		data.TotalConsumed += m.Calories
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		data.Days = append(data.Days, *days[k])
	}

	for _, b := range order {
		if n := badges[b]; n > 0 {
			data.Badges = append(data.Badges, BadgeLine{Badge: b, Count: n})
		}
	}

	return data
}

// FromTracker builds a summary of the tracker's current state.
func FromTracker(t *tracker.Tracker, now time.Time) Data {
	return Build(t.Workouts(), t.Meals(), t.Badges(), tracker.BadgeOrder(), now)
}
