package tracker

import (
	"github.com/rs/zerolog"
)

// Workout represents a single logged exercise session.
type Workout struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Duration int    `json:"duration"` // minutes
	Calories int    `json:"calories"`
}

// Meal represents a single logged food intake.
type Meal struct {
	Date     string `json:"date"`
	Name     string `json:"meal"`
	Calories int    `json:"calories"`
}

// Tracker holds the workouts, meals and badge counters of one session.
// Records are append-only and kept in insertion order.
type Tracker struct {
	workouts []Workout
	meals    []Meal
	badges   map[Badge]int
	log      zerolog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for tracker events.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) {
		t.log = l.With().Str("component", "tracker").Logger()
	}
}

// New creates an empty Tracker.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		badges: make(map[Badge]int),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddWorkout appends a workout and re-evaluates badge thresholds against the
// full history. Returns the badges whose counters were incremented.
func (t *Tracker) AddWorkout(w Workout) []Badge {
	t.workouts = append(t.workouts, w)
	awarded := t.checkBadges()

	t.log.Debug().
		Str("exercise", w.Exercise).
		Int("duration", w.Duration).
		Int("calories", w.Calories).
		Int("workouts", len(t.workouts)).
		Int("total_calories", t.TotalCalories()).
		Msg("workout added")
	for _, b := range awarded {
		t.log.Info().Str("badge", string(b)).Int("count", t.badges[b]).Msg("badge awarded")
	}

	return awarded
}

// AddMeal appends a meal. Meals never affect badges.
func (t *Tracker) AddMeal(m Meal) {
	t.meals = append(t.meals, m)

	t.log.Debug().
		Str("meal", m.Name).
		Int("calories", m.Calories).
		Int("meals", len(t.meals)).
		Msg("meal added")
}

// TotalCalories returns the calories burned across all workouts.
// Meal calories are not included.
func (t *Tracker) TotalCalories() int {
	total := 0
	for _, w := range t.workouts {
		total += w.Calories
	}
	return total
}

// Workouts returns a copy of the workout history in insertion order.
func (t *Tracker) Workouts() []Workout {
	out := make([]Workout, len(t.workouts))
	copy(out, t.workouts)
	return out
}

// Meals returns a copy of the meal history in insertion order.
func (t *Tracker) Meals() []Meal {
	out := make([]Meal, len(t.meals))
	copy(out, t.meals)
	return out
}

// Badges returns the earned badges and their counts. Badges with a zero
// count are omitted.
func (t *Tracker) Badges() map[Badge]int {
	out := make(map[Badge]int, len(t.badges))
	for b, n := range t.badges {
		if n > 0 {
			out[b] = n
		}
	}
	return out
}
