package preview

import "fmt"

// DaySplit is one row of the weekly split. The JSON names match the
// plan-generation webhook's response so both sources render the same way.
type DaySplit struct {
	Day   string `json:"day"`
	Focus string `json:"focus"`
}

// PlanPreview is the summary sentence and weekly split shown to the user.
type PlanPreview struct {
	Summary  string     `json:"goal_summary"`
	Schedule []DaySplit `json:"weekly_split"`
}

// Input is the part of an intake submission the resolver reads. Fields
// are raw form values; Resolve normalizes them.
type Input struct {
	Goal       string
	Days       Days
	Experience string
	Equipment  string
}

// Profile is a normalized Input.
type Profile struct {
	Goal       Goal
	Days       int
	Experience Experience
	Equipment  Equipment
}

// Normalize folds raw form values into a Profile using the resolver's
// defaults: general fitness, 4 days, intermediate, full gym.
func Normalize(in Input) Profile {
	return Profile{
		Goal:       ParseGoal(in.Goal),
		Days:       in.Days.Normalize(),
		Experience: ParseExperience(in.Experience),
		Equipment:  ParseEquipment(in.Equipment),
	}
}

// Resolve builds the local plan preview for in. It has no side effects
// and returns a fresh schedule slice on every call.
func Resolve(in Input) PlanPreview {
	p := Normalize(in)
	return PlanPreview{
		Summary:  Summary(p),
		Schedule: Schedule(p.Goal, p.Days),
	}
}

// Schedule returns the labelled weekly split for goal and days.
func Schedule(goal Goal, days int) []DaySplit {
	focus := goal.splits().forDays(days)
	out := make([]DaySplit, len(focus))
	for i, f := range focus {
		out[i] = DaySplit{Day: fmt.Sprintf("Day %d", i+1), Focus: f}
	}
	return out
}

// Summary renders the goal summary sentence for p.
func Summary(p Profile) string {
	exp := p.Experience.Label()
	return fmt.Sprintf(
		"Your personalized %s program is designed for %s %s trainee training %d days per week with %s access. "+
			"This plan is optimized to maximize your results based on your profile.",
		p.Goal.Title(), article(exp), exp, p.Days, p.Equipment.Label(),
	)
}

func article(word string) string {
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
