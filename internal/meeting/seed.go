package meeting

import "github.com/google/uuid"

// Seed builds the demo meetings the dashboard ships with. Every run gets
// fresh ids; nothing here survives the process.
func Seed() []*Meeting {
	participants := []Participant{
		{ID: uuid.NewString(), Name: "John Doe", Avatar: "JD"},
		{ID: uuid.NewString(), Name: "Jane Smith", Avatar: "JS"},
		{ID: uuid.NewString(), Name: "Mike Johnson", Avatar: "MJ"},
		{ID: uuid.NewString(), Name: "Emily Brown", Avatar: "EB"},
		{ID: uuid.NewString(), Name: "Alex Lee", Avatar: "AL"},
	}

	return []*Meeting{
		{
			ID:          uuid.NewString(),
			Title:       "Sprint Planning",
			Description: "Plan the upcoming two-week sprint and assign tasks",
			Agenda: []AgendaItem{
				{ID: uuid.NewString(), Title: "Sprint Goal Discussion", Duration: 15, Status: ItemNotStarted},
				{ID: uuid.NewString(), Title: "Backlog Refinement", Duration: 30, Status: ItemNotStarted},
				{ID: uuid.NewString(), Title: "Task Estimation", Duration: 30, Status: ItemNotStarted},
				{ID: uuid.NewString(), Title: "Capacity Planning", Duration: 15, Status: ItemNotStarted},
			},
			Participants: participants,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Product Roadmap Review",
			Description: "Quarterly review of the product roadmap and upcoming features",
			Agenda: []AgendaItem{
				{ID: uuid.NewString(), Title: "Q1 Recap", Duration: 20, Status: ItemNotStarted},
				{ID: uuid.NewString(), Title: "Q2 Goals and OKRs", Duration: 25, Status: ItemNotStarted},
				{ID: uuid.NewString(), Title: "Feature Prioritization", Duration: 30, Status: ItemNotStarted},
				{ID: uuid.NewString(), Title: "Resource Allocation", Duration: 15, Status: ItemNotStarted},
			},
			Participants: participants,
		},
	}
}
