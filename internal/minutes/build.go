package minutes

import (
	"time"

	"github.com/csheth/boardroom/internal/meeting"
)

// Build flattens a meeting into an archive entry, one section per agenda
// item in agenda order.
func Build(m *meeting.Meeting) Minutes {
	record := Minutes{
		MeetingID:   m.ID,
		Title:       m.Title,
		Description: m.Description,
		StartedAt:   m.StartedAt,
		EndedAt:     m.EndedAt,
		ExportedAt:  time.Now(),
	}
	for _, p := range m.Participants {
		record.Participants = append(record.Participants, p.Name)
	}

	for _, item := range m.Agenda {
		section := Section{
			Topic:   item.Title,
			Planned: item.Duration,
			Status:  string(item.Status),
		}
		for _, entry := range m.Transcript {
			if entry.AgendaItemID != item.ID {
				continue
			}
			section.Lines = append(section.Lines, Line{
				Speaker:  entry.Speaker,
				Content:  entry.Content,
				SpokenAt: entry.SpokenAt,
			})
		}
		for _, in := range m.Insights {
			if in.AgendaItemID == item.ID {
				section.Insights = append(section.Insights, in.Content)
			}
		}
		record.Sections = append(record.Sections, section)
	}
	return record
}
