package crm

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestIsDue_NeverContacted(t *testing.T) {
	now := date("2023-10-25")
	c := Contact{ID: "1", Status: StatusNew, FollowUpFrequencyDays: 90}

	if !IsDue(&c, now) {
		t.Error("never-contacted contact should be due")
	}
}

func TestIsDue_Frequency(t *testing.T) {
	now := date("2023-10-25")

	tests := []struct {
		name          string
		lastContacted string
		frequency     int
		want          bool
	}{
		{"10 days ago, 30 day cadence", "2023-10-15", 30, false},
		{"10 days ago, 7 day cadence", "2023-10-15", 7, true},
		{"exactly on the due date", "2023-10-15", 10, true},
		{"one day short", "2023-10-15", 11, false},
		{"zero frequency is due immediately", "2023-10-25", 0, true},
	}

	for _, tt := range tests {
		c := Contact{
			ID:                    "1",
			Status:                StatusContacted,
			LastContacted:         datePtr(tt.lastContacted),
			FollowUpFrequencyDays: tt.frequency,
		}
		if got := IsDue(&c, now); got != tt.want {
			t.Errorf("%s: IsDue = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsDue_TerminalStatusExcluded(t *testing.T) {
	now := date("2023-10-25")

	// Satisfies the date predicate (never contacted) but status blocks it.
	for _, status := range []LeadStatus{StatusClosed, StatusArchived} {
		c := Contact{ID: "1", Status: status, FollowUpFrequencyDays: 30}
		if IsDue(&c, now) {
			t.Errorf("status %s should be excluded from due set", status)
		}
	}
}

func TestDueContacts_Ordering(t *testing.T) {
	now := date("2023-10-25")
	contacts := []Contact{
		{ID: "recent", Status: StatusContacted, LastContacted: datePtr("2023-10-01"), FollowUpFrequencyDays: 7},
		{ID: "never-a", Status: StatusNew, FollowUpFrequencyDays: 30},
		{ID: "oldest", Status: StatusNurturing, LastContacted: datePtr("2023-08-01"), FollowUpFrequencyDays: 14},
		{ID: "never-b", Status: StatusNew, FollowUpFrequencyDays: 60},
		{ID: "closed", Status: StatusClosed, FollowUpFrequencyDays: 7},
	}

	due := DueContacts(contacts, now)

	want := []string{"never-a", "never-b", "oldest", "recent"}
	if len(due) != len(want) {
		t.Fatalf("got %d due contacts, want %d", len(due), len(want))
	}
	for i, id := range want {
		if due[i].ID != id {
			t.Errorf("due[%d] = %s, want %s", i, due[i].ID, id)
		}
	}
}

func TestDueContacts_StableForEqualKeys(t *testing.T) {
	now := date("2023-10-25")
	same := datePtr("2023-09-01")
	contacts := []Contact{
		{ID: "first", Status: StatusContacted, LastContacted: same, FollowUpFrequencyDays: 7},
		{ID: "second", Status: StatusContacted, LastContacted: same, FollowUpFrequencyDays: 7},
		{ID: "third", Status: StatusContacted, LastContacted: same, FollowUpFrequencyDays: 7},
	}

	due := DueContacts(contacts, now)
	if len(due) != 3 {
		t.Fatalf("got %d due contacts, want 3", len(due))
	}
	for i, id := range []string{"first", "second", "third"} {
		if due[i].ID != id {
			t.Errorf("due[%d] = %s, want %s (input order must be preserved for ties)", i, due[i].ID, id)
		}
	}
}

func TestDueContacts_NotDueExcluded(t *testing.T) {
	now := date("2023-10-25")
	contacts := []Contact{
		{ID: "fresh", Status: StatusContacted, LastContacted: datePtr("2023-10-24"), FollowUpFrequencyDays: 30},
	}

	if due := DueContacts(contacts, now); len(due) != 0 {
		t.Errorf("got %d due contacts, want 0", len(due))
	}
}

func TestDueContacts_Idempotent(t *testing.T) {
	now := date("2023-10-25")
	contacts := []Contact{
		{ID: "a", Status: StatusNew, FollowUpFrequencyDays: 30},
		{ID: "b", Status: StatusContacted, LastContacted: datePtr("2023-09-01"), FollowUpFrequencyDays: 7},
		{ID: "c", Status: StatusContacted, LastContacted: datePtr("2023-08-01"), FollowUpFrequencyDays: 7},
	}

	first := DueContacts(contacts, now)
	second := DueContacts(contacts, now)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	// Input order must survive both calls.
	if contacts[0].ID != "a" || contacts[1].ID != "b" || contacts[2].ID != "c" {
		t.Error("DueContacts reordered its input")
	}
}

func TestNextDue(t *testing.T) {
	c := Contact{LastContacted: datePtr("2023-10-01"), FollowUpFrequencyDays: 30}
	if got, want := NextDue(&c), date("2023-10-31"); !got.Equal(want) {
		t.Errorf("NextDue = %v, want %v", got, want)
	}

	never := Contact{FollowUpFrequencyDays: 30}
	if !NextDue(&never).IsZero() {
		t.Error("NextDue for never-contacted should be zero time")
	}
}
