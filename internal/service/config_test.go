package service_test

import (
	"testing"

	"github.com/asheeshsahu/MyHybridWorkoutPlan/internal/service"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := service.SetConfig(sqldb, service.ConfigGroqAPIKey, " gsk_test "); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	value, found, err := service.GetConfig(sqldb, service.ConfigGroqAPIKey)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if !found || value != "gsk_test" {
		t.Errorf("got %q found=%v, want trimmed value", value, found)
	}

	if err := service.SetConfig(sqldb, service.ConfigGroqAPIKey, "gsk_new"); err != nil {
		t.Fatalf("SetConfig update: %v", err)
	}
	all, err := service.ListConfig(sqldb)
	if err != nil {
		t.Fatalf("ListConfig: %v", err)
	}
	if all[service.ConfigGroqAPIKey] != "gsk_new" {
		t.Errorf("list returned %q", all[service.ConfigGroqAPIKey])
	}

	_, found, err = service.GetConfig(sqldb, "missing_key")
	if err != nil || found {
		t.Errorf("missing key: found=%v err=%v", found, err)
	}
	if err := service.SetConfig(sqldb, "  ", "x"); err == nil {
		t.Error("blank key accepted")
	}
}

func TestNotificationRefresh(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	entries, err := service.RefreshNotifications(sqldb, trainingMonday)
	if err != nil {
		t.Fatalf("RefreshNotifications: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("empty notification plan")
	}
	var sawWorkout bool
	for _, e := range entries {
		if e.ReminderID == "workout" {
			sawWorkout = true
		}
	}
	if !sawWorkout {
		t.Error("plan missing the workout reminder")
	}
}
