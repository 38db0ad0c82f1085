package form

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Flyrell/burnbite/internal/tracker"
)

// ErrInvalidNumber is matched by every NumberError.
var ErrInvalidNumber = errors.New("invalid number")

// NumberError reports a form field that could not be read as an integer.
type NumberError struct {
	Field string
	Value string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected a whole number", e.Field, e.Value)
}

func (e *NumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

var numberRe = regexp.MustCompile(`^[+-]?\d+(?:_\d+)*$`)

// ParseNumber reads a whole number from a form field. Surrounding whitespace
// is ignored, a leading sign is allowed and digits may be grouped with single
// underscores ("1_000").
func ParseNumber(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if !numberRe.MatchString(s) {
		return 0, &NumberError{Field: field, Value: raw}
	}

	n, err := strconv.Atoi(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return 0, &NumberError{Field: field, Value: raw}
	}
	return n, nil
}

// WorkoutInput is the raw text of a workout submission.
type WorkoutInput struct {
	Date     string
	Exercise string
	Duration string
	Calories string
}

// Parse converts the submission into a workout. Date and exercise are taken
// as entered.
func (in WorkoutInput) Parse() (tracker.Workout, error) {
	duration, err := ParseNumber("duration", in.Duration)
	if err != nil {
		return tracker.Workout{}, err
	}
	calories, err := ParseNumber("calories", in.Calories)
	if err != nil {
		return tracker.Workout{}, err
	}
	return tracker.Workout{
		Date:     in.Date,
		Exercise: in.Exercise,
		Duration: duration,
		Calories: calories,
	}, nil
}

// MealInput is the raw text of a meal submission.
type MealInput struct {
	Date     string
	Meal     string
	Calories string
}

// Parse converts the submission into a meal.
func (in MealInput) Parse() (tracker.Meal, error) {
	calories, err := ParseNumber("meal calories", in.Calories)
	if err != nil {
		return tracker.Meal{}, err
	}
	return tracker.Meal{
		Date:     in.Date,
		Name:     in.Meal,
		Calories: calories,
	}, nil
}
