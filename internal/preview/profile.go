// Package preview resolves an intake profile into the plan preview shown
// before the payment gate. Resolution is a pure lookup into a static
// editorial table and never fails: unknown or malformed input resolves
// to the general fitness defaults.
package preview

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Goal is the training goal selected on the intake form.
type Goal string

const (
	GoalFatLoss        Goal = "fat_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalStrength       Goal = "strength"
	GoalGeneralFitness Goal = "general_fitness"
)

// Experience is the self-reported training age.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Equipment is the equipment access selected on the intake form.
type Equipment string

const (
	EquipmentFullGym    Equipment = "full_gym"
	EquipmentHomeGym    Equipment = "home_gym"
	EquipmentDumbbells  Equipment = "dumbbells"
	EquipmentBodyweight Equipment = "bodyweight"
)

// goalTitles is built once at init. A cases.Caser keeps per-call state
// and cannot be shared between goroutines.
var goalTitles = func() map[Goal]string {
	titles := make(map[Goal]string, 4)
	for _, g := range []Goal{GoalFatLoss, GoalMuscleGain, GoalStrength, GoalGeneralFitness} {
		titles[g] = cases.Title(language.English).String(label(string(g)))
	}
	return titles
}()

var separators = strings.NewReplacer("-", " ", "_", " ")

// normalizeKey lowercases and trims a form value and folds runs of
// spaces, hyphens and underscores into one underscore so "Fat Loss",
// "fat--loss" and "fat_loss" match.
func normalizeKey(value string) string {
	key := separators.Replace(strings.ToLower(value))
	return strings.Join(strings.Fields(key), "_")
}

// ParseGoal maps a raw form value onto a known goal. Anything unknown,
// including the empty string, is general fitness.
func ParseGoal(value string) Goal {
	switch g := Goal(normalizeKey(value)); g {
	case GoalFatLoss, GoalMuscleGain, GoalStrength, GoalGeneralFitness:
		return g
	default:
		return GoalGeneralFitness
	}
}

// Valid reports whether g is one of the four supported goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalFatLoss, GoalMuscleGain, GoalStrength, GoalGeneralFitness:
		return true
	}
	return false
}

// Title renders the goal for display, e.g. "Muscle Gain".
func (g Goal) Title() string {
	if t, ok := goalTitles[g]; ok {
		return t
	}
	return cases.Title(language.English).String(label(string(g)))
}

// ParseExperience maps a raw form value onto a known experience level,
// defaulting to intermediate.
func ParseExperience(value string) Experience {
	switch e := Experience(normalizeKey(value)); e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return e
	default:
		return ExperienceIntermediate
	}
}

// Label renders the experience level in lower case.
func (e Experience) Label() string {
	return label(string(e))
}

// ParseEquipment maps a raw form value onto a known equipment option,
// defaulting to full gym.
func ParseEquipment(value string) Equipment {
	switch e := Equipment(normalizeKey(value)); e {
	case EquipmentFullGym, EquipmentHomeGym, EquipmentDumbbells, EquipmentBodyweight:
		return e
	default:
		return EquipmentFullGym
	}
}

// Label renders the equipment option in lower case, e.g. "full gym".
func (e Equipment) Label() string {
	return label(string(e))
}

func label(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
