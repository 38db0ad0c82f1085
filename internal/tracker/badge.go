package tracker

// Badge is the name of a milestone counter.
type Badge string

const (
	WorkoutWarrior Badge = "Workout Warrior"
	CalorieCrusher Badge = "Calorie Crusher"
)

const (
	WorkoutWarriorMinWorkouts = 5
	CalorieCrusherMinCalories = 500
)

type badgeRule struct {
	badge Badge
	holds func(t *Tracker) bool
}

var badgeRules = []badgeRule{
	{
		badge: WorkoutWarrior,
		holds: func(t *Tracker) bool { return len(t.workouts) >= WorkoutWarriorMinWorkouts },
	},
	{
		badge: CalorieCrusher,
		holds: func(t *Tracker) bool { return t.TotalCalories() >= CalorieCrusherMinCalories },
	},
}

// BadgeOrder returns every badge kind in display order.
func BadgeOrder() []Badge {
	order := make([]Badge, len(badgeRules))
	for i, r := range badgeRules {
		order[i] = r.badge
	}
	return order
}

// checkBadges increments every badge whose threshold currently holds.
//
// NOTE: a threshold that stays satisfied re-awards its badge on every later
// workout, so counts keep growing after the first unlock. This matches the
// established behaviour and is kept until the intended semantics are settled.
func (t *Tracker) checkBadges() []Badge {
	var awarded []Badge
	for _, r := range badgeRules {
		if r.holds(t) {
			t.badges[r.badge]++
			awarded = append(awarded, r.badge)
		}
	}
	return awarded
}
