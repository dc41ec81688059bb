package plan

import "github.com/asheeshsahu/MyHybridWorkoutPlan/internal/model"

// Ids of the reminders that represent the training block itself. When all
// of today's block is undone past the cutoff, the schedule auto-switches
// to the evening variant.
const (
	IDWorkout         = "workout"
	IDWorkoutEvening  = "workout_eve"
	IDRecoveryWalk    = "recovery_walk"
	IDRecoveryStretch = "recovery_stretch"
)

// DailyMacroGoals are the fixed daily targets shown in the summary.
var DailyMacroGoals = model.MacroInfo{Calories: 2700, Protein: 150, Carbs: 330, Fats: 75}

var trainingMorning = []model.Reminder{
	{
		ID: "preworkout", Title: "Pre-Workout Fuel", Time: "05:30", Icon: "🍌", Color: "#f59e0b",
		Body: "1 Banana + Black Coffee + 5 Soaked Almonds ☕",
		Detail: model.MealDetail{
			Heading: "Pre-Workout Fuel",
			Items:   []string{"1 Banana", "1 Cup Black Coffee", "5 Soaked Almonds"},
			Tip:     "Light & fast-digesting to fuel your training without feeling heavy.",
		},
		Options: []model.MealOption{
			{Label: "Banana + Coffee + 5 Almonds", Macros: model.MacroInfo{Calories: 149, Protein: 3, Carbs: 29, Fats: 4}},
			{Label: "Banana + Coffee only", Macros: model.MacroInfo{Calories: 107, Protein: 1, Carbs: 27, Fats: 0}},
		},
	},
	{
		ID: IDWorkout, Title: "Training Window", Time: "06:00", Icon: "🏋️", Color: "#7c3aed",
		Body: "Time to train! Hydrate with 500ml-1L water during session 💪",
		Detail: model.MealDetail{
			Heading: "Training Window",
			Tip:     "Prioritize form over heavy weight. Stay consistent.",
		},
		Options: []model.MealOption{
			{Label: "Workout completed"},
		},
	},
	{
		ID: "postworkout", Title: "Post-Workout: Egg Whites", Time: "07:30", Icon: "🥚", Color: "#22c55e",
		Body: "4-5 Boiled Egg Whites - immediate protein hit! 🥚",
		Detail: model.MealDetail{
			Heading: "Post-Workout (Phase 1)",
			Items:   []string{"4–5 Boiled Egg Whites"},
			Tip:     "Immediate protein hit for muscle recovery. Eat within 15 mins of finishing.",
		},
		Options: []model.MealOption{
			{Label: "5 Boiled Egg Whites", Macros: model.MacroInfo{Calories: 85, Protein: 18, Carbs: 1, Fats: 0}},
			{Label: "4 Boiled Egg Whites", Macros: model.MacroInfo{Calories: 68, Protein: 14, Carbs: 1, Fats: 0}},
			{Label: "3 Whole Boiled Eggs", Macros: model.MacroInfo{Calories: 210, Protein: 18, Carbs: 2, Fats: 14}},
		},
	},
	{
		ID: "shake", Title: "The Big Breakfast: Muscle Shake", Time: "08:15", Icon: "🥤", Color: "#06b6d4",
		Body: "Muscle Shake: Milk, Muesli, PB, Honey, Banana! 🥤",
		Detail: model.MealDetail{
			Heading: "The Big Breakfast – Muscle Shake",
			Items:   []string{"300ml Milk", "½ Cup Muesli", "1–2 tbsp Peanut Butter", "1 Large Banana", "1 tbsp Honey"},
			Tip:     "Mass builder. High calorie focus. Consume right after egg whites.",
		},
		Options: []model.MealOption{
			{Label: "Full Muscle Shake (Milk, Muesli, PB, Banana, Honey)", Macros: model.MacroInfo{Calories: 706, Protein: 21, Carbs: 104, Fats: 25}},
			{Label: "Light Shake (Milk, Banana, Honey)", Macros: model.MacroInfo{Calories: 355, Protein: 11, Carbs: 59, Fats: 10}},
		},
	},
	{
		ID: "lunch", Title: "Lunch: Chicken Curry + Dal", Time: "13:30", Icon: "🍗", Color: "#f97316",
		Body: "150g Chicken Breast Curry + 2 Rotis + Dal + Dahi + Salad 🍗",
		Detail: model.MealDetail{
			Heading: "Lunch (Foundation Meal)",
			Items:   []string{"150g Chicken Breast Curry", "2 Rotis", "1 Bowl Thick Dal", "1 Bowl Dahi", "Salad on the side"},
			Tip:     "Biggest meal of the day. Don't skip the dahi — great for gut health.",
			VegAlternatives: []string{
				"100g Soya Chunk Curry + Dal (~55g Protein)",
				"150g Paneer Bhurji + Dal + Dahi (~45g Protein)",
				"1 Bowl Chole + Greek Yogurt (~35g Protein)",
				"2 Moong Dal Chillas + 50g Paneer (~30g Protein)",
			},
		},
		Options: []model.MealOption{
			{Label: "150g Chicken Curry + 2 Roti + Dal + Dahi + Salad", Macros: model.MacroInfo{Calories: 836, Protein: 72, Carbs: 87, Fats: 20}},
			{Label: "100g Soya Chunk Curry + Dal + 2 Roti", Macros: model.MacroInfo{Calories: 620, Protein: 55, Carbs: 72, Fats: 10}},
			{Label: "150g Paneer Bhurji + Dal + Dahi + 2 Roti", Macros: model.MacroInfo{Calories: 740, Protein: 45, Carbs: 68, Fats: 30}},
			{Label: "1 Bowl Chole + Greek Yogurt + 2 Roti", Macros: model.MacroInfo{Calories: 530, Protein: 35, Carbs: 70, Fats: 12}},
			{Label: "2 Moong Dal Chillas + 50g Paneer", Macros: model.MacroInfo{Calories: 460, Protein: 30, Carbs: 42, Fats: 18}},
		},
	},
	{
		ID: "snack", Title: "Snack: Paneer / Roasted Chana", Time: "16:30", Icon: "🧀", Color: "#eab308",
		Body: "100g Paneer cubes (sautéed) or Roasted Chana! 🧀",
		Detail: model.MealDetail{
			Heading: "Evening Snack",
			Items:   []string{"100g Paneer cubes (sautéed)", "OR Handful of Roasted Chana"},
			Tip:     "Quick protein to bridge lunch and dinner. Keep it simple.",
		},
		Options: []model.MealOption{
			{Label: "100g Paneer cubes (sautéed)", Macros: model.MacroInfo{Calories: 321, Protein: 21, Carbs: 3, Fats: 25}},
			{Label: "Handful of Roasted Chana (~50g)", Macros: model.MacroInfo{Calories: 185, Protein: 10, Carbs: 30, Fats: 3}},
			{Label: "100g Paneer + Roasted Chana", Macros: model.MacroInfo{Calories: 506, Protein: 31, Carbs: 33, Fats: 28}},
		},
	},
	{
		ID: "dinner", Title: "Dinner: Fish/Chicken + Sabzi", Time: "20:30", Icon: "🐟", Color: "#ef4444",
		Body: "150g Grilled Fish or Chicken + 1 Roti + Sabzi (Broccoli, Beans) 🐟",
		Detail: model.MealDetail{
			Heading: "Dinner (Muscle Repair)",
			Items:   []string{"150g Grilled Fish or Chicken", "1 Roti", "Mixed Sabzi (Broccoli, Beans)"},
			Tip:     "Lighter than lunch. Focus on lean protein and fiber-rich veggies.",
			VegAlternatives: []string{
				"200g Firm Tofu Stir-Fry + Broccoli/Peppers (~36g Protein)",
				"150g Paneer Tikka (Grilled) + Salad (~30g Protein)",
				"80g Soya Chunks sautéed with Garlic/Onion (~40g Protein)",
				"2 Besan Chillas + Paneer on the side (~28g Protein)",
			},
		},
		Options: []model.MealOption{
			{Label: "150g Grilled Fish + 1 Roti + Sabzi", Macros: model.MacroInfo{Calories: 359, Protein: 46, Carbs: 31, Fats: 5}},
			{Label: "150g Grilled Chicken + 1 Roti + Sabzi", Macros: model.MacroInfo{Calories: 412, Protein: 52, Carbs: 31, Fats: 7}},
			{Label: "200g Tofu Stir-Fry + Broccoli/Peppers", Macros: model.MacroInfo{Calories: 350, Protein: 36, Carbs: 15, Fats: 18}},
			{Label: "150g Paneer Tikka (Grilled) + Salad", Macros: model.MacroInfo{Calories: 380, Protein: 30, Carbs: 8, Fats: 26}},
			{Label: "80g Soya Chunks sautéed + Sabzi", Macros: model.MacroInfo{Calories: 320, Protein: 40, Carbs: 22, Fats: 6}},
			{Label: "2 Besan Chillas + Paneer", Macros: model.MacroInfo{Calories: 400, Protein: 28, Carbs: 30, Fats: 20}},
		},
	},
	{
		ID: "sleep", Title: "Bedtime", Time: "22:30", Icon: "🌙", Color: "#6366f1",
		Body: "Wind down for quality sleep - in bed by 10:30 PM! 😴",
		Detail: model.MealDetail{
			Heading: "Bedtime Routine",
			Items:   []string{"In bed by 10:30 PM", "No screens 30 mins before sleep", "Muscles grow during rest!"},
			Tip:     "Quality sleep is when the repair work happens.",
		},
	},
}

var trainingEvening = []model.Reminder{
	{
		ID: "breakfast", Title: "Breakfast (Foundation)", Time: "08:30", Icon: "🍳", Color: "#f59e0b",
		Body: "3 Eggs (Bhurji/Omelet) + 2 Brown Bread + Nuts 🍳",
		Detail: model.MealDetail{
			Heading: "Breakfast (Foundation)",
			Items:   []string{"3 Whole Eggs (Bhurji/Omelet)", "2 Brown Bread slices", "Handful of nuts"},
			Tip:     "Solid foundation for the day. Keeps you fueled until lunch.",
		},
		Options: []model.MealOption{
			{Label: "3 Eggs Bhurji + 2 Brown Bread + Nuts", Macros: model.MacroInfo{Calories: 420, Protein: 24, Carbs: 35, Fats: 20}},
			{Label: "3 Eggs Omelet + 2 Brown Bread + Nuts", Macros: model.MacroInfo{Calories: 410, Protein: 23, Carbs: 34, Fats: 19}},
		},
	},
	{
		ID: "lunch", Title: "Lunch (Pre-Fuel)", Time: "13:30", Icon: "🍗", Color: "#f97316",
		Body: "150g Chicken Breast Curry + 2 Rotis + Dal + Dahi + Salad 🍗",
		Detail: model.MealDetail{
			Heading: "Lunch (Pre-Fuel)",
			Items:   []string{"150g Chicken Breast Curry", "2 Rotis", "1 Bowl Thick Dal", "1 Bowl Dahi", "Salad"},
			Tip:     "Pre-fuel for evening training. Don't skip the dahi — great for gut health.",
			VegAlternatives: []string{
				"100g Soya Chunk Curry + Dal (~55g Protein)",
				"150g Paneer Bhurji + Dal + Dahi (~40g Protein)",
				"2 Large Moong Dal Chillas + 50g Paneer (~30g Protein)",
				"1.5 Bowls Kala Chana Curry + Salad (~25g Protein)",
			},
		},
		Options: []model.MealOption{
			{Label: "150g Chicken Curry + 2 Roti + Dal + Dahi + Salad", Macros: model.MacroInfo{Calories: 836, Protein: 72, Carbs: 87, Fats: 20}},
			{Label: "100g Soya Chunk Curry + Dal + 2 Roti", Macros: model.MacroInfo{Calories: 620, Protein: 55, Carbs: 72, Fats: 10}},
			{Label: "150g Paneer Bhurji + Dal + Dahi + 2 Roti", Macros: model.MacroInfo{Calories: 740, Protein: 45, Carbs: 68, Fats: 30}},
			{Label: "2 Moong Dal Chillas + 50g Paneer", Macros: model.MacroInfo{Calories: 460, Protein: 30, Carbs: 42, Fats: 18}},
		},
	},
	{
		ID: "preworkout_eve", Title: "Pre-Workout Snack", Time: "17:30", Icon: "🍌", Color: "#f59e0b",
		Body: "1 Banana + Black Coffee + 2-3 Dates ☕",
		Detail: model.MealDetail{
			Heading: "Pre-Workout Snack",
			Items:   []string{"1 Banana", "1 Cup Black Coffee", "2-3 Dates"},
			Tip:     "Light & fast-digesting to fuel evening training without feeling heavy.",
		},
		Options: []model.MealOption{
			{Label: "Banana + Coffee + 2-3 Dates", Macros: model.MacroInfo{Calories: 180, Protein: 2, Carbs: 42, Fats: 1}},
			{Label: "Banana + Coffee only", Macros: model.MacroInfo{Calories: 107, Protein: 1, Carbs: 27, Fats: 0}},
		},
	},
	{
		ID: IDWorkoutEvening, Title: "Evening Training Window", Time: "18:00", Icon: "🏋️", Color: "#7c3aed",
		Body: "Evening training! Hydrate with 1L water during session 💪",
		Detail: model.MealDetail{
			Heading: "Evening Training Window",
			Tip:     "Intensity priority. Hydrate with 1L water.",
		},
		Options: []model.MealOption{
			{Label: "Workout completed"},
		},
	},
	{
		ID: "postworkout_eve", Title: "Post-Workout: Egg Whites", Time: "19:45", Icon: "🥚", Color: "#22c55e",
		Body: "4-5 Boiled Egg Whites - rapid protein! 🥚",
		Detail: model.MealDetail{
			Heading: "Immediate Recovery",
			Items:   []string{"4-5 Boiled Egg Whites"},
			Tip:     "Rapid protein hit for muscle recovery. Eat within 15 mins of finishing.",
		},
		Options: []model.MealOption{
			{Label: "5 Boiled Egg Whites", Macros: model.MacroInfo{Calories: 85, Protein: 18, Carbs: 1, Fats: 0}},
			{Label: "4 Boiled Egg Whites", Macros: model.MacroInfo{Calories: 68, Protein: 14, Carbs: 1, Fats: 0}},
		},
	},
	{
		ID: "dinner_eve", Title: "Recovery Feast (Meal + Shake)", Time: "20:45", Icon: "🍽️", Color: "#ef4444",
		Body: "Recovery Feast: Fish/Chicken + Veggies + Muscle Shake! 🍽️",
		Detail: model.MealDetail{
			Heading: "The Recovery Feast",
			Items:   []string{"150g Grilled Fish/Chicken", "1 Roti", "Mixed Veggies", "The Muscle Shake: Milk, Muesli, PB, Honey, Banana"},
			Tip:     "Meal + shake together. Your primary mass builder — take with dinner.",
			VegAlternatives: []string{
				"80g Soya Keema + Mixed Veggies (~42g Protein)",
				"200g Grilled Tofu + Broccoli & Peppers (~36g Protein)",
				"250g Greek Yogurt Bowl + Walnuts/Seeds (~28g Protein)",
				"2 Besan Chillas + 50g Paneer (~26g Protein)",
			},
		},
		Options: []model.MealOption{
			{Label: "150g Fish/Chicken + 1 Roti + Veggies + Muscle Shake", Macros: model.MacroInfo{Calories: 850, Protein: 67, Carbs: 95, Fats: 30}},
			{Label: "150g Fish/Chicken + Veggies + Muscle Shake (No Roti)", Macros: model.MacroInfo{Calories: 720, Protein: 62, Carbs: 64, Fats: 28}},
			{Label: "80g Soya Keema + Veggies + Shake", Macros: model.MacroInfo{Calories: 680, Protein: 58, Carbs: 75, Fats: 22}},
			{Label: "200g Tofu + Veggies + Shake", Macros: model.MacroInfo{Calories: 750, Protein: 57, Carbs: 79, Fats: 28}},
		},
	},
	{
		ID: "sleep_eve", Title: "Bedtime", Time: "23:00", Icon: "🌙", Color: "#6366f1",
		Body: "Wind down - in bed by 11:00 PM! 😴",
		Detail: model.MealDetail{
			Heading: "Bedtime Routine",
			Items:   []string{"In bed by 11:00 PM", "No screens 30 mins before sleep", "Muscles grow during rest!"},
			Tip:     "Evening shift: sleep by 11 PM to keep recovery hours intact.",
		},
	},
}

var restMorning = []model.Reminder{
	restWalk("07:30"),
	restStretch("08:15"),
	restBreakfast("09:00"),
	restLunch("13:30"),
	restSnack("16:30"),
	restDinner("20:00"),
	restSleep("22:30"),
}

var restEvening = []model.Reminder{
	restBreakfast("09:00"),
	restLunch("13:30"),
	restSnack("16:30"),
	restWalk("18:00"),
	restStretch("18:30"),
	restDinner("20:00"),
	restSleep("23:00"),
}

// The rest-day variants share entries and differ only in ordering and
// times, so each entry is built by a constructor taking its nominal time.

func restWalk(clock string) model.Reminder {
	return model.Reminder{
		ID: IDRecoveryWalk, Title: "Casual Walk (20 min)", Time: clock, Icon: "🚶", Color: "#64748b",
		Body: "20 minutes at an easy pace - light movement speeds up recovery 🚶",
		Detail: model.MealDetail{
			Heading: "Casual Walk",
			Items:   []string{"20 minutes at easy pace", "Outdoor walk preferred", "Aids active recovery & digestion"},
			Tip:     "Light movement helps blood flow and reduces soreness. No intense effort needed.",
		},
		Options: []model.MealOption{
			{Label: "20 min walk completed"},
		},
	}
}

func restStretch(clock string) model.Reminder {
	return model.Reminder{
		ID: IDRecoveryStretch, Title: "Stretching / Foam Rolling", Time: clock, Icon: "🧘", Color: "#8b5cf6",
		Body: "10 minutes of stretching + foam rolling - hips, hamstrings, back 🧘",
		Detail: model.MealDetail{
			Heading: "Static Stretching / Foam Rolling",
			Items:   []string{"10 minutes of full body stretching", "Focus on tight areas (hips, hamstrings, shoulders)", "Foam roll quads, IT band, and upper back"},
			Tip:     "Improves flexibility and speeds up recovery between training days.",
		},
		Options: []model.MealOption{
			{Label: "Stretching / Foam rolling done"},
		},
	}
}

func restBreakfast(clock string) model.Reminder {
	return model.Reminder{
		ID: "breakfast_rest", Title: "Breakfast: 4 Egg Omelet + Veggies", Time: clock, Icon: "🍳", Color: "#f59e0b",
		Body: "4 Egg Omelet + Veggies (No Bread) 🍳",
		Detail: model.MealDetail{
			Heading: "Breakfast (Rest Day)",
			Items:   []string{"4 Egg Omelet + Veggies", "No Bread"},
			Tip:     "High protein, low carb. No shake on rest day — keep total Rotis to max 1 for the day.",
		},
		Options: []model.MealOption{
			{Label: "4 Egg Omelet + Veggies (No Bread)", Macros: model.MacroInfo{Calories: 280, Protein: 24, Carbs: 6, Fats: 18}},
			{Label: "4 Egg Bhurji + Veggies (No Bread)", Macros: model.MacroInfo{Calories: 290, Protein: 25, Carbs: 7, Fats: 19}},
		},
	}
}

func restLunch(clock string) model.Reminder {
	return model.Reminder{
		ID: "lunch", Title: "Lunch: Chicken/Paneer + Dal + 1 Roti", Time: clock, Icon: "🍗", Color: "#f97316",
		Body: "150g Chicken/Paneer + Dal + 1 Roti + Salad 🍗",
		Detail: model.MealDetail{
			Heading: "Lunch (Rest Day)",
			Items:   []string{"150g Chicken or Paneer", "1 Bowl Thick Dal", "1 Roti", "Salad"},
			Tip:     "Max 1 Roti for the day. Focus on high protein and fiber.",
			VegAlternatives: []string{
				"150g Paneer + Dal + 1 Roti + Salad (~45g Protein)",
				"100g Soya Chunk Curry + Dal + 1 Roti (~55g Protein)",
				"1 Bowl Chole + Greek Yogurt + 1 Roti (~35g Protein)",
			},
		},
		Options: []model.MealOption{
			{Label: "150g Chicken/Paneer + Dal + 1 Roti + Salad", Macros: model.MacroInfo{Calories: 550, Protein: 55, Carbs: 42, Fats: 16}},
			{Label: "100g Soya Chunk Curry + Dal (No Roti)", Macros: model.MacroInfo{Calories: 420, Protein: 50, Carbs: 30, Fats: 8}},
			{Label: "150g Paneer Bhurji + Dal + Salad (No Roti)", Macros: model.MacroInfo{Calories: 530, Protein: 40, Carbs: 25, Fats: 28}},
			{Label: "1 Bowl Chole + Greek Yogurt (No Roti)", Macros: model.MacroInfo{Calories: 350, Protein: 30, Carbs: 35, Fats: 10}},
		},
	}
}

func restSnack(clock string) model.Reminder {
	return model.Reminder{
		ID: "snack", Title: "Snack: Sprouted Chana or 50g Paneer", Time: clock, Icon: "🧀", Color: "#eab308",
		Body: "Sprouted Chana or 50g Paneer - light protein bridge 🧀",
		Detail: model.MealDetail{
			Heading: "Afternoon Snack",
			Items:   []string{"Handful of Sprouted Chana", "OR 50g Paneer"},
			Tip:     "Light protein to bridge lunch and dinner. Low carb.",
		},
		Options: []model.MealOption{
			{Label: "100g Paneer cubes (sautéed)", Macros: model.MacroInfo{Calories: 321, Protein: 21, Carbs: 3, Fats: 25}},
			{Label: "Handful of Roasted Chana (~50g)", Macros: model.MacroInfo{Calories: 185, Protein: 10, Carbs: 30, Fats: 3}},
		},
	}
}

func restDinner(clock string) model.Reminder {
	return model.Reminder{
		ID: "dinner", Title: "Dinner: Fish/Chicken + Double Salad (No Roti)", Time: clock, Icon: "🐟", Color: "#ef4444",
		Body: "150g Grilled Fish or Chicken + Double Salad (No Roti) 🐟",
		Detail: model.MealDetail{
			Heading: "Dinner (Rest Day)",
			Items:   []string{"150g Grilled Fish or Chicken", "Double Salad (No Roti)"},
			Tip:     "No Roti at dinner. Load up on veggies and lean protein. Max 1 Roti total for the day.",
			VegAlternatives: []string{
				"200g Tofu Stir-Fry + Broccoli/Peppers (~36g Protein)",
				"150g Paneer Tikka (Grilled) + Large Salad (~30g Protein)",
				"80g Soya Chunks sautéed with Veggies (~40g Protein)",
			},
		},
		Options: []model.MealOption{
			{Label: "150g Grilled Fish + Sabzi Only (No Roti)", Macros: model.MacroInfo{Calories: 255, Protein: 43, Carbs: 10, Fats: 4}},
			{Label: "150g Grilled Chicken + Sabzi Only (No Roti)", Macros: model.MacroInfo{Calories: 308, Protein: 49, Carbs: 10, Fats: 6}},
			{Label: "200g Tofu Stir-Fry + Veggies", Macros: model.MacroInfo{Calories: 350, Protein: 36, Carbs: 15, Fats: 18}},
			{Label: "150g Paneer Tikka + Large Salad", Macros: model.MacroInfo{Calories: 380, Protein: 30, Carbs: 8, Fats: 26}},
		},
	}
}

func restSleep(clock string) model.Reminder {
	return model.Reminder{
		ID: "sleep", Title: "Bedtime", Time: clock, Icon: "🌙", Color: "#6366f1",
		Body: "Wind down for quality sleep - muscles grow during rest! 😴",
		Detail: model.MealDetail{
			Heading: "Bedtime Routine",
			Items:   []string{"In bed early", "No screens 30 mins before sleep", "Muscles grow during rest!"},
			Tip:     "Quality sleep is even more important on rest days — this is when muscles rebuild.",
		},
	}
}

// SelectCatalog returns the ordered reminder list for a (rest/training ×
// shift) combination. The returned slice is shared static data; callers
// must not mutate it.
func SelectCatalog(isRestDay bool, shift model.Shift) []model.Reminder {
	switch {
	case isRestDay && shift == model.ShiftEvening:
		return restEvening
	case isRestDay:
		return restMorning
	case shift == model.ShiftEvening:
		return trainingEvening
	default:
		return trainingMorning
	}
}

// Find returns the catalog entry with the given id.
func Find(catalog []model.Reminder, id string) (model.Reminder, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reminder{}, false
}
