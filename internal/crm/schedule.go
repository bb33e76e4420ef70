package crm

import (
	"sort"
	"time"
)

// NextDue returns the instant at which a contact becomes due for follow-up,
// or the zero time when the contact has never been contacted (always due).
func NextDue(c *Contact) time.Time {
	if c.LastContacted == nil {
		return time.Time{}
	}
	return c.LastContacted.AddDate(0, 0, c.FollowUpFrequencyDays)
}

// IsDue reports whether a contact is due for outreach at the given instant.
// Closed and Archived contacts are never due. Comparison is instant-based:
// a frequency of zero means due immediately after the last contact.
func IsDue(c *Contact, now time.Time) bool {
	if c.Status.Terminal() {
		return false
	}
	if c.LastContacted == nil {
		return true
	}
	return !NextDue(c).After(now)
}

// DueContacts returns the contacts due for outreach at now, most urgent
// first: never-contacted contacts come before all dated ones, dated ones
// order by ascending lastContacted. The sort is stable, so equal keys keep
// input order. The result is a fresh slice; the input is never reordered.
func DueContacts(contacts []Contact, now time.Time) []Contact {
	var due []Contact
	for _, c := range contacts {
		if IsDue(&c, now) {
			due = append(due, c)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i].LastContacted, due[j].LastContacted
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return true
		case b == nil:
			return false
		default:
			return a.Before(*b)
		}
	})

	return due
}
