package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Flyrell/burnbite/internal/tracker"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 1, 5, 18, 30, 0, 0, time.UTC)
}

// script feeds menu choices and prompt answers to a session in order.
// Running out of either aborts like Ctrl+C would.
type script struct {
	choices []int
	answers []string
	prompts []string
}

func (s *script) kit() PromptKit {
	return PromptKit{
		Select: func(title string, options []string) (int, error) {
			if len(s.choices) == 0 {
				return 0, huh.ErrUserAborted
			}
			c := s.choices[0]
			s.choices = s.choices[1:]
			return c, nil
		},
		Prompt: func(prompt string) (string, error) {
			s.prompts = append(s.prompts, prompt)
			if len(s.answers) == 0 {
				return "", huh.ErrUserAborted
			}
			a := s.answers[0]
			s.answers = s.answers[1:]
			return a, nil
		},
		Confirm: AlwaysYes(),
	}
}

func newTestSession(sc *script, exportDir string) (*session, *[]Dialog) {
	var shown []Dialog
	s := &session{
		tracker: tracker.New(),
		pk:      sc.kit(),
		show: func(d Dialog) error {
			shown = append(shown, d)
			return nil
		},
		log:       zerolog.Nop(),
		exportDir: exportDir,
		now:       fixedNow,
	}
	return s, &shown
}

func workoutAnswers(date, exercise, duration, calories string) []string {
	return []string{date, exercise, duration, calories}
}

func TestSessionQuit(t *testing.T) {
	sc := &script{choices: []int{actionQuit}}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))
	assert.Empty(t, *shown)
}

func TestSessionMenuAbortEndsSession(t *testing.T) {
	sc := &script{}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))
	assert.Empty(t, *shown)
}

func TestSessionMenuErrorPropagates(t *testing.T) {
	s, _ := newTestSession(&script{}, "")
	s.pk.Select = func(string, []string) (int, error) { return 0, errors.New("terminal gone") }

	err := runSession(s)

	assert.EqualError(t, err, "terminal gone")
}

func TestSessionAddWorkout(t *testing.T) {
	sc := &script{
		choices: []int{actionAddWorkout, actionQuit},
		answers: workoutAnswers("2024-01-01", "Run", "30", "200"),
	}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 1)
	assert.Equal(t, successDialog("Workout added!"), (*shown)[0])
	assert.Equal(t, []string{promptDate, promptExercise, promptDuration, promptCalories}, sc.prompts)
	assert.Equal(t, []tracker.Workout{{Date: "2024-01-01", Exercise: "Run", Duration: 30, Calories: 200}}, s.tracker.Workouts())
}

func TestSessionAddWorkoutInvalidNumbers(t *testing.T) {
	for _, tc := range []struct {
		name, duration, calories string
	}{
		{"duration", "thirty", "200"},
		{"calories", "30", "2.5"},
		{"empty", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sc := &script{
				choices: []int{actionAddWorkout, actionQuit},
				answers: workoutAnswers("2024-01-01", "Run", tc.duration, tc.calories),
			}
			s, shown := newTestSession(sc, "")

			require.NoError(t, runSession(s))

			require.Len(t, *shown, 1)
			assert.Equal(t, errorDialog("Please enter valid numbers for duration and calories."), (*shown)[0])
			assert.Empty(t, s.tracker.Workouts())
			assert.Empty(t, s.tracker.Badges())
		})
	}
}

func TestSessionAddWorkoutAnnouncesBadges(t *testing.T) {
	var answers []string
	choices := []int{}
	for i := 0; i < 5; i++ {
		answers = append(answers, workoutAnswers("2024-01-01", "Run", "30", "200")...)
		choices = append(choices, actionAddWorkout)
	}
	sc := &script{choices: append(choices, actionQuit), answers: answers}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 5)
	assert.Equal(t, "Workout added!", (*shown)[0].Body)
	assert.Equal(t, "Workout added!", (*shown)[1].Body)
	assert.Equal(t, "Workout added!\nBadge earned: Calorie Crusher (1)", (*shown)[2].Body)
	assert.Equal(t, "Workout added!\nBadge earned: Calorie Crusher (2)", (*shown)[3].Body)
	assert.Equal(t, "Workout added!\nBadge earned: Workout Warrior (1)\nBadge earned: Calorie Crusher (3)", (*shown)[4].Body)
}

func TestSessionAddWorkoutCancelled(t *testing.T) {
	sc := &script{choices: []int{actionAddWorkout, actionViewWorkouts, actionQuit}}
	s, shown := newTestSession(sc, "")
	s.pk.Prompt = func(prompt string) (string, error) {
		sc.prompts = append(sc.prompts, prompt)
		if prompt == promptDuration {
			return "", huh.ErrUserAborted
		}
		return "x", nil
	}

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 1)
	assert.Equal(t, infoDialog("Workouts", "No workouts logged yet."), (*shown)[0])
	assert.Equal(t, []string{promptDate, promptExercise, promptDuration}, sc.prompts)
	assert.Empty(t, s.tracker.Workouts())
}

func TestSessionAddMeal(t *testing.T) {
	sc := &script{
		choices: []int{actionAddMeal, actionTotalCalories, actionQuit},
		answers: []string{"2024-01-01", "Lunch", "400"},
	}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 2)
	assert.Equal(t, successDialog("Meal added!"), (*shown)[0])
	assert.Equal(t, infoDialog("Total Calories", "Total calories burned: 0"), (*shown)[1])
	assert.Equal(t, []string{promptDate, promptMeal, promptMealCalories}, sc.prompts)
	assert.Equal(t, []tracker.Meal{{Date: "2024-01-01", Name: "Lunch", Calories: 400}}, s.tracker.Meals())
}

func TestSessionAddMealInvalidCalories(t *testing.T) {
	sc := &script{
		choices: []int{actionAddMeal, actionQuit},
		answers: []string{"2024-01-01", "Lunch", "a lot"},
	}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 1)
	assert.Equal(t, errorDialog("Please enter valid numbers for meal calories."), (*shown)[0])
	assert.Empty(t, s.tracker.Meals())
}

func TestSessionEmptyViews(t *testing.T) {
	sc := &script{choices: []int{actionViewWorkouts, actionViewMeals, actionTotalCalories, actionViewBadges, actionQuit}}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	assert.Equal(t, []Dialog{
		infoDialog("Workouts", "No workouts logged yet."),
		infoDialog("Meals", "No meals logged yet."),
		infoDialog("Total Calories", "Total calories burned: 0"),
		infoDialog("Badges", "No badges earned yet."),
	}, *shown)
}

func TestSessionHistoryViews(t *testing.T) {
	s, _ := newTestSession(&script{}, "")
	s.tracker.AddWorkout(tracker.Workout{Date: "2024-01-01", Exercise: "Run", Duration: 30, Calories: 200})
	s.tracker.AddWorkout(tracker.Workout{Date: "2024-01-02", Exercise: "Swim", Duration: 45, Calories: 350})
	s.tracker.AddMeal(tracker.Meal{Date: "2024-01-01", Name: "Lunch", Calories: 400})

	assert.Equal(t, infoDialog("Workout History",
		"Date: 2024-01-01, Exercise: Run, Duration: 30 mins, Calories: 200\n"+
			"Date: 2024-01-02, Exercise: Swim, Duration: 45 mins, Calories: 350"), s.viewWorkouts())
	assert.Equal(t, infoDialog("Meal History", "Date: 2024-01-01, Meal: Lunch, Calories: 400"), s.viewMeals())
	assert.Equal(t, infoDialog("Total Calories", "Total calories burned: 550"), s.totalCalories())
	assert.Equal(t, infoDialog("Earned Badges", "Calorie Crusher: 1"), s.viewBadges())
}

func TestFormatBadgesUsesOrder(t *testing.T) {
	badges := map[tracker.Badge]int{tracker.CalorieCrusher: 3, tracker.WorkoutWarrior: 1}

	assert.Equal(t, "Workout Warrior: 1\nCalorie Crusher: 3", formatBadges(badges, tracker.BadgeOrder()))
}

func TestSessionExportDefaultPath(t *testing.T) {
	dir := t.TempDir()
	sc := &script{
		choices: []int{actionAddWorkout, actionExport, actionQuit},
		answers: append(workoutAnswers("2024-01-01", "Run", "30", "200"), ""),
	}
	s, shown := newTestSession(sc, dir)

	require.NoError(t, runSession(s))

	want := filepath.Join(dir, "burnbite-summary-20240105.pdf")
	require.Len(t, *shown, 2)
	assert.Equal(t, successDialog("Summary saved to "+want), (*shown)[1])
	assert.Contains(t, sc.prompts[len(sc.prompts)-1], want)

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestSessionExportCustomPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "mine.pdf")
	sc := &script{
		choices: []int{actionExport, actionQuit},
		answers: []string{"  " + out + "  "},
	}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 1)
	assert.Equal(t, successDialog("Summary saved to "+out), (*shown)[0])
	assert.FileExists(t, out)
}

func TestSessionExportFailureShowsError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	sc := &script{
		choices: []int{actionExport, actionQuit},
		answers: []string{filepath.Join(blocker, "out.pdf")},
	}
	s, shown := newTestSession(sc, "")

	require.NoError(t, runSession(s))

	require.Len(t, *shown, 1)
	assert.Equal(t, "Error", (*shown)[0].Title)
	assert.Contains(t, (*shown)[0].Body, "Could not export summary")
}

func TestDefaultExportPath(t *testing.T) {
	assert.Equal(t, "burnbite-summary-20240105.pdf", defaultExportPath("", fixedNow()))
	assert.Equal(t, filepath.Join("/tmp", "burnbite-summary-20240105.pdf"), defaultExportPath("/tmp", fixedNow()))
}

func TestSessionScriptedThroughLinePrompts(t *testing.T) {
	input := strings.Join([]string{
		"1", "2024-01-01", "Run", "30", "200",
		"Add Meal", "2024-01-01", "Lunch", "400",
		"1", "2024-01-02", "Row", "twenty", "150",
		"3",
		"5",
		"6",
		"8",
	}, "\n") + "\n"

	out := new(bytes.Buffer)
	s := &session{
		tracker: tracker.New(),
		pk:      NewLinePromptKit(strings.NewReader(input), out),
		show:    NewDialogFunc(out),
		log:     zerolog.Nop(),
		now:     fixedNow,
	}

	require.NoError(t, runSession(s))

	got := out.String()
	assert.Contains(t, got, menuTitle)
	assert.Contains(t, got, "Workout added!")
	assert.Contains(t, got, "Meal added!")
	assert.Contains(t, got, "Please enter valid numbers for duration and calories.")
	assert.Contains(t, got, "Date: 2024-01-01, Exercise: Run, Duration: 30 mins, Calories: 200")
	assert.Contains(t, got, "Total calories burned: 200")
	assert.Contains(t, got, "No badges earned yet.")
	assert.Len(t, s.tracker.Workouts(), 1)
	assert.Len(t, s.tracker.Meals(), 1)
}

func TestSessionLinePromptsEndOfInput(t *testing.T) {
	s := &session{
		tracker: tracker.New(),
		pk:      NewLinePromptKit(strings.NewReader("1\n2024-01-01\n"), new(bytes.Buffer)),
		show:    NewDialogFunc(new(bytes.Buffer)),
		log:     zerolog.Nop(),
		now:     fixedNow,
	}

	require.NoError(t, runSession(s))
	assert.Empty(t, s.tracker.Workouts())
}
