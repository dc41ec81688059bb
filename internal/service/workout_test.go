package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
)

func TestToggleWorkoutDay(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	now := at(2026, time.August, 31, 20, 0)

	completed, err := service.ToggleWorkoutDay(sqldb, "2026-08-31", now)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !completed {
		t.Error("first toggle should record completed")
	}

	completed, err = service.ToggleWorkoutDay(sqldb, "2026-08-31", now)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if completed {
		t.Error("second toggle should record missed")
	}

	days, err := service.CompletedDays(sqldb)
	if err != nil {
		t.Fatalf("CompletedDays: %v", err)
	}
	if v, ok := days["2026-08-31"]; !ok || v {
		t.Errorf("days[2026-08-31] = %v, %v; want false, true", v, ok)
	}
}

func TestToggleWorkoutDayRejectsFuture(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	now := at(2026, time.August, 31, 20, 0)

	if _, err := service.ToggleWorkoutDay(sqldb, "2026-09-01", now); !errors.Is(err, service.ErrFutureDate) {
		t.Fatalf("err = %v, want ErrFutureDate", err)
	}
	if _, err := service.ToggleWorkoutDay(sqldb, "31-08-2026", now); err == nil {
		t.Fatal("malformed date accepted")
	}
	if _, err := service.ToggleWorkoutDay(sqldb, "2026-08-30", now); err != nil {
		t.Fatalf("yesterday rejected: %v", err)
	}
}

func TestRescheduleToTomorrow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)
	now := at(2026, time.August, 31, 21, 0)

	if err := service.RescheduleToTomorrow(sqldb, now); err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	offset, err := service.ScheduleOffset(sqldb)
	if err != nil {
		t.Fatalf("ScheduleOffset: %v", err)
	}
	if offset != 1 {
		t.Errorf("offset = %d, want 1", offset)
	}

	// Tomorrow (Tuesday) now carries Monday's workout.
	day, err := service.LoadDay(sqldb, at(2026, time.September, 1, 7, 0))
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	if day.Workout.Name != "Upper Focus" {
		t.Errorf("tuesday workout = %q, want Upper Focus", day.Workout.Name)
	}

	// The prompt will not fire again today.
	asked, err := service.WorkoutAsked(sqldb, "2026-08-31")
	if err != nil {
		t.Fatalf("WorkoutAsked: %v", err)
	}
	if !asked {
		t.Error("reschedule did not mark the check as asked")
	}
}

func TestShouldAskWorkoutCheck(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// Early morning, workout time not reached.
	day, err := service.LoadDay(sqldb, at(2026, time.August, 31, 5, 45))
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	ask, err := service.ShouldAskWorkoutCheck(sqldb, day)
	if err != nil {
		t.Fatalf("ShouldAskWorkoutCheck: %v", err)
	}
	if ask {
		t.Error("prompt fired before the workout window")
	}

	// Late evening, workout never completed. The schedule has switched to
	// the evening variant by now and its window has passed too.
	day, err = service.LoadDay(sqldb, at(2026, time.August, 31, 21, 0))
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	ask, err = service.ShouldAskWorkoutCheck(sqldb, day)
	if err != nil {
		t.Fatalf("ShouldAskWorkoutCheck: %v", err)
	}
	if !ask {
		t.Error("prompt did not fire for a missed workout")
	}

	if err := service.MarkWorkoutAsked(sqldb, day.DateKey); err != nil {
		t.Fatalf("MarkWorkoutAsked: %v", err)
	}
	ask, err = service.ShouldAskWorkoutCheck(sqldb, day)
	if err != nil {
		t.Fatalf("ShouldAskWorkoutCheck: %v", err)
	}
	if ask {
		t.Error("prompt fired twice")
	}
}

func TestShouldAskPreviousDayCheck(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// Tuesday morning; Monday was a training day with no recorded outcome.
	tuesday := at(2026, time.September, 1, 8, 0)
	key, ask, err := service.ShouldAskPreviousDayCheck(sqldb, tuesday)
	if err != nil {
		t.Fatalf("ShouldAskPreviousDayCheck: %v", err)
	}
	if key != "2026-08-31" {
		t.Errorf("key = %s, want 2026-08-31", key)
	}
	if !ask {
		t.Fatal("prompt did not fire for yesterday's unrecorded training day")
	}

	// Asking is one-shot.
	if err := service.MarkWorkoutAsked(sqldb, key); err != nil {
		t.Fatalf("MarkWorkoutAsked: %v", err)
	}
	if _, ask, err = service.ShouldAskPreviousDayCheck(sqldb, tuesday); err != nil || ask {
		t.Errorf("prompt fired twice: ask=%v err=%v", ask, err)
	}
}

func TestShouldAskPreviousDayCheckRecordedOrRest(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// A recorded outcome suppresses the prompt, even "missed" (false).
	tuesday := at(2026, time.September, 1, 8, 0)
	if _, err := service.ToggleWorkoutDay(sqldb, "2026-08-31", tuesday); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := service.ToggleWorkoutDay(sqldb, "2026-08-31", tuesday); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if _, ask, err := service.ShouldAskPreviousDayCheck(sqldb, tuesday); err != nil || ask {
		t.Errorf("prompt fired for a recorded day: ask=%v err=%v", ask, err)
	}

	// Monday after a rest Sunday: nothing to ask.
	monday := at(2026, time.August, 31, 8, 0)
	if _, ask, err := service.ShouldAskPreviousDayCheck(sqldb, monday); err != nil || ask {
		t.Errorf("prompt fired after a rest day: ask=%v err=%v", ask, err)
	}
}

func TestShouldAskWorkoutCheckRestDay(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	// 2026-08-30 is a Sunday: rest day.
	day, err := service.LoadDay(sqldb, at(2026, time.August, 30, 21, 0))
	if err != nil {
		t.Fatalf("LoadDay: %v", err)
	}
	ask, err := service.ShouldAskWorkoutCheck(sqldb, day)
	if err != nil {
		t.Fatalf("ShouldAskWorkoutCheck: %v", err)
	}
	if ask {
		t.Error("prompt fired on a rest day")
	}
}
