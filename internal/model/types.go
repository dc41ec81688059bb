package model

// SchemaVersion is embedded in every persisted ledger so a future shape
// change can detect and replace stale values instead of merging them.
const SchemaVersion = 1

type WorkoutType string

const (
	WorkoutGym      WorkoutType = "gym"
	WorkoutAthletic WorkoutType = "athletic"
	WorkoutRest     WorkoutType = "rest"
)

type WorkoutDay struct {
	Type      WorkoutType `json:"type"`
	Name      string      `json:"name"`
	Exercises []string    `json:"exercises"`
}

func (w WorkoutDay) IsRest() bool { return w.Type == WorkoutRest }

// Shift selects which daily plan variant is active: training and main
// meals in the morning block, or pushed to the evening block.
type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

func (s Shift) IsValid() bool { return s == ShiftMorning || s == ShiftEvening }

type MacroInfo struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

func (m MacroInfo) Add(o MacroInfo) MacroInfo {
	return MacroInfo{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fats:     m.Fats + o.Fats,
	}
}

type MealOption struct {
	Label  string    `json:"label"`
	Macros MacroInfo `json:"macros"`
}

// MealDetail is the explanatory content shown when a reminder is opened.
type MealDetail struct {
	Heading         string   `json:"heading"`
	Items           []string `json:"items"`
	Tip             string   `json:"tip,omitempty"`
	VegAlternatives []string `json:"vegAlternatives,omitempty"`
}

// Reminder is one entry of a catalog. Everything keyed by reminder id
// (icon, accent color, notification body, detail content, meal options)
// lives on the record itself.
type Reminder struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Time    string       `json:"time"` // nominal "HH:MM"
	Icon    string       `json:"icon"`
	Color   string       `json:"color"`
	Body    string       `json:"body"` // notification body text
	Detail  MealDetail   `json:"detail"`
	Options []MealOption `json:"options,omitempty"`
}

// CompletionData is the per-date completion ledger for the active catalog.
// A reminder id present in Completions is done (value = completion clock
// time). AdjustedTimes holds shifted display times for not-yet-completed
// reminders only; Completions takes precedence once a reminder is done.
type CompletionData struct {
	SchemaVersion int               `json:"schemaVersion"`
	Date          string            `json:"date"`
	Completions   map[string]string `json:"completions"`
	AdjustedTimes map[string]string `json:"adjustedTimes"`
}

func NewCompletionData(date string) CompletionData {
	return CompletionData{
		SchemaVersion: SchemaVersion,
		Date:          date,
		Completions:   map[string]string{},
		AdjustedTimes: map[string]string{},
	}
}

// ExtraMealID tags meals logged outside the catalog; only these may be
// removed from the day's log.
const ExtraMealID = "extra"

type MealEntry struct {
	ReminderID string    `json:"reminderId"`
	Option     string    `json:"option"`
	Macros     MacroInfo `json:"macros"`
	Time       string    `json:"time"` // "HH:MM" when logged
}

// DailyMacros is the per-date meal log. Consumed is a derived cache,
// recomputed as the element-wise sum over Meals on every mutation.
type DailyMacros struct {
	SchemaVersion int         `json:"schemaVersion"`
	Date          string      `json:"date"`
	Consumed      MacroInfo   `json:"consumed"`
	Meals         []MealEntry `json:"meals"`
}

func NewDailyMacros(date string) DailyMacros {
	return DailyMacros{SchemaVersion: SchemaVersion, Date: date}
}

type HydrationData struct {
	SchemaVersion int    `json:"schemaVersion"`
	Date          string `json:"date"`
	Glasses       int    `json:"glasses"`
}

func NewHydrationData(date string) HydrationData {
	return HydrationData{SchemaVersion: SchemaVersion, Date: date}
}

// WeekDay is one cell of the calendar week grid.
type WeekDay struct {
	Name        string
	Num         int
	DateKey     string
	Workout     WorkoutDay
	IsToday     bool
	IsCompleted bool
	IsRecorded  bool
	IsRest      bool
}

type Stats struct {
	Completed  int
	Rate       int
	Streak     int
	WeekStreak int
}
