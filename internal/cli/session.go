package cli

import (
	"fmt"
	"time"

	"github.com/Flyrell/burnbite/internal/tracker"
	"github.com/rs/zerolog"
)

const (
	actionAddWorkout = iota
	actionAddMeal
	actionViewWorkouts
	actionViewMeals
	actionTotalCalories
	actionViewBadges
	actionExport
	actionQuit
)

var sessionActions = []string{
	actionAddWorkout:    "Add Workout",
	actionAddMeal:       "Add Meal",
	actionViewWorkouts:  "View Workouts",
	actionViewMeals:     "View Meals",
	actionTotalCalories: "Total Calories Burned",
	actionViewBadges:    "View Badges",
	actionExport:        "Export Summary (PDF)",
	actionQuit:          "Quit",
}

const menuTitle = "What would you like to do?"

// session is one interactive run. Everything logged lives in its tracker and
// is gone when the session ends.
type session struct {
	tracker   *tracker.Tracker
	pk        PromptKit
	show      DialogFunc
	log       zerolog.Logger
	exportDir string
	now       func() time.Time
}

func runSession(s *session) error {
	s.log.Debug().Msg("session started")

	for {
		idx, err := s.pk.Select(menuTitle, sessionActions)
		if isAbort(err) {
			break
		}
		if err != nil {
			return err
		}
		if idx == actionQuit {
			break
		}

		d, err := s.dispatch(idx)
		if isAbort(err) {
			s.log.Debug().Str("action", sessionActions[idx]).Msg("action cancelled")
			continue
		}
		if err != nil {
			return err
		}
		if err := s.show(d); err != nil {
			return err
		}
	}

	s.log.Debug().
		Int("workouts", len(s.tracker.Workouts())).
		Int("meals", len(s.tracker.Meals())).
		Msg("session ended")
	return nil
}

func (s *session) dispatch(action int) (Dialog, error) {
	switch action {
	case actionAddWorkout:
		return s.addWorkout()
	case actionAddMeal:
		return s.addMeal()
	case actionViewWorkouts:
		return s.viewWorkouts(), nil
	case actionViewMeals:
		return s.viewMeals(), nil
	case actionTotalCalories:
		return s.totalCalories(), nil
	case actionViewBadges:
		return s.viewBadges(), nil
	case actionExport:
		return s.exportSummary()
	}
	return Dialog{}, fmt.Errorf("unknown action %d", action)
}
