package store

import (
	"time"

	"github.com/lazypower/nexus/internal/crm"
)

func seedDate(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("bad seed date: " + s)
	}
	return &t
}

// SeedContacts returns the starter contact set used when the store is empty
// or unreadable. A fresh slice every call — callers mutate their copy.
func SeedContacts() []crm.Contact {
	return []crm.Contact{
		{
			ID: "1", FirstName: "Sarah", LastName: "Miller", Email: "sarah.m@techcorp.com",
			Title: "VP of Sales", Status: crm.StatusContacted,
			Tags: []string{"VIP", "Decision Maker"}, LastContacted: seedDate("2023-10-01"),
			FollowUpFrequencyDays: 30, CompanyID: "TechCorp",
			LinkedInURL: "https://linkedin.com", Location: "San Francisco, CA",
		},
		{
			ID: "2", FirstName: "David", LastName: "Chen", Email: "dchen@startup.io",
			Title: "Founder", Status: crm.StatusNurturing,
			Tags: []string{"Startup", "High Potential"}, LastContacted: seedDate("2023-09-15"),
			FollowUpFrequencyDays: 14, CompanyID: "StartupIO", Location: "New York, NY",
		},
		{
			ID: "3", FirstName: "Jessica", LastName: "Alba", Email: "jess@design.co",
			Title: "Creative Director", Status: crm.StatusNew,
			Tags:                  []string{"Creative"},
			FollowUpFrequencyDays: 60, CompanyID: "DesignCo", Location: "Remote",
		},
		{
			ID: "4", FirstName: "Michael", LastName: "Ross", Email: "mike@pearson.com",
			Title: "Attorney", Status: crm.StatusMeetingBooked,
			Tags: []string{"Legal"}, LastContacted: seedDate("2023-10-20"),
			FollowUpFrequencyDays: 90, Location: "Chicago, IL",
		},
	}
}

// SeedInteractions returns the starter interaction history.
func SeedInteractions() []crm.Interaction {
	return []crm.Interaction{
		{
			ID: "101", ContactID: "1", Date: *seedDate("2023-10-01"), Type: crm.TypeCall,
			Notes: "Discussed Q4 roadmap. She is interested in the premium plan.",
		},
		{
			ID: "102", ContactID: "2", Date: *seedDate("2023-09-15"), Type: crm.TypeEmail,
			Notes: "Sent intro deck. Requested follow up in 2 weeks.",
		},
		{
			ID: "103", ContactID: "1", Date: *seedDate("2023-08-20"), Type: crm.TypeMeeting,
			Notes: "Lunch meeting at Blue Bottle. Personal connection established.",
		},
	}
}
