package crm

import "time"

// DashboardStats summarizes relationship health for the dashboard view.
type DashboardStats struct {
	TotalContacts       int `json:"totalContacts"`
	InteractionsLast30d int `json:"interactionsLast30Days"`
	DueFollowUps        int `json:"dueFollowUps"`
	PipelineValue       int `json:"pipelineValue"`
}

// pipelineValueEstimate is a static placeholder, matching the dashboard's
// mock figure. Deal values are not modeled.
const pipelineValueEstimate = 42500

// Stats computes dashboard numbers at the given instant.
func (s *State) Stats(now time.Time) DashboardStats {
	contacts := s.Contacts()
	interactions := s.Interactions()

	cutoff := now.AddDate(0, 0, -30)
	recent := 0
	for _, in := range interactions {
		if in.Date.After(cutoff) && !in.Date.After(now) {
			recent++
		}
	}

	return DashboardStats{
		TotalContacts:       len(contacts),
		InteractionsLast30d: recent,
		DueFollowUps:        len(DueContacts(contacts, now)),
		PipelineValue:       pipelineValueEstimate,
	}
}

// PipelineColumns is the kanban column order. Archived contacts have no
// column — they drop out of the pipeline view entirely.
var PipelineColumns = []LeadStatus{
	StatusNew,
	StatusContacted,
	StatusNurturing,
	StatusMeetingBooked,
	StatusClosed,
}

// PipelineColumn is one kanban column with its contacts in input order.
type PipelineColumn struct {
	Status   LeadStatus `json:"status"`
	Contacts []Contact  `json:"contacts"`
}

// Pipeline groups contacts by status in kanban column order.
func (s *State) Pipeline() []PipelineColumn {
	contacts := s.Contacts()

	cols := make([]PipelineColumn, len(PipelineColumns))
	for i, status := range PipelineColumns {
		cols[i] = PipelineColumn{Status: status, Contacts: []Contact{}}
		for _, c := range contacts {
			if c.Status == status {
				cols[i].Contacts = append(cols[i].Contacts, c)
			}
		}
	}
	return cols
}
