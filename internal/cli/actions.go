package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Flyrell/burnbite/internal/form"
	"github.com/Flyrell/burnbite/internal/summary"
	"github.com/Flyrell/burnbite/internal/tracker"
)

const (
	promptDate         = "Date (YYYY-MM-DD)"
	promptExercise     = "Exercise"
	promptDuration     = "Duration (mins)"
	promptCalories     = "Calories"
	promptMeal         = "Meal"
	promptMealCalories = "Meal Calories"
	promptExportPath   = "Output file"
)

type field struct {
	prompt string
	dst    *string
}

// ask fills each field in order and stops at the first prompt error.
func (s *session) ask(fields ...field) error {
	for _, f := range fields {
		v, err := s.pk.Prompt(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (s *session) addWorkout() (Dialog, error) {
	var in form.WorkoutInput
	err := s.ask(
		field{promptDate, &in.Date},
		field{promptExercise, &in.Exercise},
		field{promptDuration, &in.Duration},
		field{promptCalories, &in.Calories},
	)
	if err != nil {
		return Dialog{}, err
	}

	w, err := in.Parse()
	if errors.Is(err, form.ErrInvalidNumber) {
		s.log.Warn().Err(err).Msg("workout rejected")
		return errorDialog("Please enter valid numbers for duration and calories."), nil
	}
	if err != nil {
		return Dialog{}, err
	}

	awarded := s.tracker.AddWorkout(w)

	lines := []string{"Workout added!"}
	if len(awarded) > 0 {
		counts := s.tracker.Badges()
		for _, b := range awarded {
			lines = append(lines, fmt.Sprintf("Badge earned: %s (%d)", b, counts[b]))
		}
	}
	return successDialog(strings.Join(lines, "\n")), nil
}

func (s *session) addMeal() (Dialog, error) {
	var in form.MealInput
	err := s.ask(
		field{promptDate, &in.Date},
		field{promptMeal, &in.Meal},
		field{promptMealCalories, &in.Calories},
	)
	if err != nil {
		return Dialog{}, err
	}

	m, err := in.Parse()
	if errors.Is(err, form.ErrInvalidNumber) {
		s.log.Warn().Err(err).Msg("meal rejected")
		return errorDialog("Please enter valid numbers for meal calories."), nil
	}
	if err != nil {
		return Dialog{}, err
	}

	s.tracker.AddMeal(m)
	return successDialog("Meal added!"), nil
}

func (s *session) viewWorkouts() Dialog {
	workouts := s.tracker.Workouts()
	if len(workouts) == 0 {
		return infoDialog("Workouts", "No workouts logged yet.")
	}
	return infoDialog("Workout History", formatWorkouts(workouts))
}

func (s *session) viewMeals() Dialog {
	meals := s.tracker.Meals()
	if len(meals) == 0 {
		return infoDialog("Meals", "No meals logged yet.")
	}
	return infoDialog("Meal History", formatMeals(meals))
}

func (s *session) totalCalories() Dialog {
	return infoDialog("Total Calories", fmt.Sprintf("Total calories burned: %d", s.tracker.TotalCalories()))
}

func (s *session) viewBadges() Dialog {
	badges := s.tracker.Badges()
	if len(badges) == 0 {
		return infoDialog("Badges", "No badges earned yet.")
	}
	return infoDialog("Earned Badges", formatBadges(badges, tracker.BadgeOrder()))
}

func (s *session) exportSummary() (Dialog, error) {
	now := s.now()
	def := defaultExportPath(s.exportDir, now)

	path, err := s.pk.Prompt(fmt.Sprintf("%s (default: %s)", promptExportPath, def))
	if err != nil {
		return Dialog{}, err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = def
	}

	data := summary.FromTracker(s.tracker, now)
	if err := renderSummaryPDF(data, path); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("export failed")
		return errorDialog(fmt.Sprintf("Could not export summary: %v", err)), nil
	}

	s.log.Info().Str("path", path).Int("days", len(data.Days)).Msg("summary exported")
	return successDialog(fmt.Sprintf("Summary saved to %s", path)), nil
}

func defaultExportPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("burnbite-summary-%s.pdf", now.Format("20060102")))
}

func formatWorkouts(workouts []tracker.Workout) string {
	lines := make([]string, len(workouts))
	for i, w := range workouts {
		lines[i] = fmt.Sprintf("Date: %s, Exercise: %s, Duration: %d mins, Calories: %d",
			w.Date, w.Exercise, w.Duration, w.Calories)
	}
	return strings.Join(lines, "\n")
}

func formatMeals(meals []tracker.Meal) string {
	lines := make([]string, len(meals))
	for i, m := range meals {
		lines[i] = fmt.Sprintf("Date: %s, Meal: %s, Calories: %d", m.Date, m.Name, m.Calories)
	}
	return strings.Join(lines, "\n")
}

// formatBadges lists earned badges in the given order.
func formatBadges(badges map[tracker.Badge]int, order []tracker.Badge) string {
	var lines []string
	for _, b := range order {
		if n := badges[b]; n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", b, n))
		}
	}
	return strings.Join(lines, "\n")
}
