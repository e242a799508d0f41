package cmd

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/notifyme/notifyme/internal/event"
	"github.com/notifyme/notifyme/internal/store"
)

// resetFlags clears the package-level flag destinations that persist
// between Execute calls within one test binary.
func resetFlags() {
	configPath, dbPath = "", ""
	tickSeconds, leadMinutes, metricsListen = 0, 0, ""
	eventName, eventMessage, eventDate, eventRecurrence = "", "", "", ""
	eventID = 0
	forceDelete = false
}

func execute(t *testing.T, args ...string) {
	t.Helper()
	resetFlags()
	full := append([]string{"notifyme"}, args...)
	if err := Execute(full, BuildArgs{Version: "1", BuildType: "test"}); err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
}

func TestParseEventDate(t *testing.T) {
	got, err := parseEventDate("31/01/2024 09:05")
	if err != nil {
		t.Fatalf("parseEventDate: %v", err)
	}
	want := time.Date(2024, time.January, 31, 9, 5, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := parseEventDate("2024-01-31 09:05"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
	if _, err := parseEventDate(""); err == nil {
		t.Fatal("expected error for empty date")
	}
}

func TestExecute_Version(t *testing.T) {
	execute(t, "version")
}

func TestExecute_CreateListDelete(t *testing.T) {
	db := filepath.Join(t.TempDir(), "events.db")

	execute(t, "create",
		"--db", db,
		"-n", "pay rent",
		"-m", "transfer before noon",
		"-d", "31/01/2030 09:00",
		"-r", "monthly",
	)

	s, err := store.Open(db)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	events, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %v", events)
	}
	ev := events[0]
	if ev.Name != "pay rent" || ev.Recurrence != event.Monthly {
		t.Fatalf("unexpected event: %+v", ev)
	}
	want := time.Date(2030, time.January, 31, 9, 0, 0, 0, time.Local)
	if !ev.OccurrenceDate.Equal(want) {
		t.Fatalf("date = %v, want %v", ev.OccurrenceDate, want)
	}

	execute(t, "delete", "--db", db, "-i", "1", "-f")

	events, err = s.List(context.Background())
	if err != nil {
		t.Fatalf("List after delete: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("soft-deleted event still listed: %v", events)
	}
}

func TestExecute_CreateRejectsUnknownRecurrence(t *testing.T) {
	db := filepath.Join(t.TempDir(), "events.db")

	// The action reports the error and shows command help instead of
	// failing Execute; the store must stay empty.
	execute(t, "create",
		"--db", db,
		"-n", "x",
		"-d", "01/06/2030 08:00",
		"-r", "hourly",
	)

	s, err := store.Open(db)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	events, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("event created despite bad recurrence: %v", events)
	}
}

func TestExecute_UpdateRewritesDate(t *testing.T) {
	db := filepath.Join(t.TempDir(), "events.db")

	execute(t, "create",
		"--db", db,
		"-n", "standup",
		"-d", "02/06/2030 09:30",
	)
	execute(t, "update",
		"--db", db,
		"-i", "1",
		"-d", "03/06/2030 10:00",
		"-r", "daily",
	)

	s, err := store.Open(db)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	ev, err := s.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := time.Date(2030, time.June, 3, 10, 0, 0, 0, time.Local)
	if !ev.OccurrenceDate.Equal(want) || ev.Recurrence != event.Daily {
		t.Fatalf("update not applied: %+v", ev)
	}
	if ev.Name != "standup" {
		t.Fatalf("name should be unchanged: %q", ev.Name)
	}
}
