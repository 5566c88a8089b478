package preview

// splitTable holds one goal's editorial splits, indexed by day count
// minus MinDays. Each entry lists the focus text for Day 1..Day N.
type splitTable [MaxDays - MinDays + 1][]string

// forDays returns the focus list for days, falling back to the 4-day
// entry when days is unsupported or the slot is empty.
func (t *splitTable) forDays(days int) []string {
	if days >= MinDays && days <= MaxDays {
		if focus := t[days-MinDays]; len(focus) > 0 {
			return focus
		}
	}
	return t[DefaultDays-MinDays]
}

// splits returns the table for g. Unknown goals get general fitness.
func (g Goal) splits() *splitTable {
	switch g {
	case GoalFatLoss:
		return &fatLossSplits
	case GoalMuscleGain:
		return &muscleGainSplits
	case GoalStrength:
		return &strengthSplits
	default:
		return &generalFitnessSplits
	}
}

var fatLossSplits = splitTable{
	{
		"Full Body HIIT + Strength",
		"Full Body Metabolic Circuit",
	},
	{
		"Upper Body + HIIT Finisher",
		"Lower Body + Core",
		"Full Body Metabolic Circuit",
	},
	{
		"Upper Body Push + HIIT",
		"Lower Body Strength",
		"Upper Body Pull + Core",
		"Lower Body + Conditioning",
	},
	{
		"Push + HIIT",
		"Legs – Quads & Glutes",
		"Pull + Core",
		"Legs – Hamstrings & Calves",
		"Full Body Conditioning",
	},
	{
		"Push Strength",
		"Legs – Power",
		"Pull + HIIT",
		"Upper Body Hypertrophy",
		"Legs – Endurance",
		"Full Body Circuit",
	},
}

var muscleGainSplits = splitTable{
	{
		"Upper Body Hypertrophy",
		"Lower Body Hypertrophy",
	},
	{
		"Push (Chest, Shoulders, Triceps)",
		"Pull (Back, Biceps)",
		"Legs (Quads, Hams, Glutes)",
	},
	{
		"Upper Body – Strength",
		"Lower Body – Strength",
		"Upper Body – Hypertrophy",
		"Lower Body – Hypertrophy",
	},
	{
		"Chest & Triceps",
		"Back & Biceps",
		"Legs – Quads Focus",
		"Shoulders & Arms",
		"Legs – Posterior Chain",
	},
	{
		"Chest",
		"Back",
		"Legs – Quads",
		"Shoulders",
		"Arms (Biceps & Triceps)",
		"Legs – Hamstrings & Glutes",
	},
}

var strengthSplits = splitTable{
	{
		"Squat & Bench Focus",
		"Deadlift & OHP Focus",
	},
	{
		"Squat + Accessories",
		"Bench Press + Accessories",
		"Deadlift + OHP + Accessories",
	},
	{
		"Heavy Squat Day",
		"Heavy Bench Day",
		"Heavy Deadlift Day",
		"Volume Overhead Press",
	},
	{
		"Heavy Squat",
		"Heavy Bench",
		"Heavy Deadlift",
		"Volume Squat + Bench",
		"Volume Deadlift + OHP",
	},
	{
		"Heavy Squat",
		"Heavy Bench",
		"Heavy Deadlift",
		"Speed Squat + Accessories",
		"Speed Bench + Accessories",
		"Speed Pulls + Conditioning",
	},
}

var generalFitnessSplits = splitTable{
	{
		"Full Body Strength",
		"Full Body + Cardio",
	},
	{
		"Upper Body + Core",
		"Lower Body + Mobility",
		"Full Body + Conditioning",
	},
	{
		"Upper Body Strength",
		"Lower Body Strength",
		"Cardio + Core",
		"Full Body Functional",
	},
	{
		"Push + Core",
		"Pull + Cardio",
		"Legs",
		"Upper Body Endurance",
		"Full Body + Mobility",
	},
	{
		"Push Strength",
		"Pull Strength",
		"Legs",
		"HIIT + Core",
		"Upper Body Volume",
		"Active Recovery + Mobility",
	},
}
