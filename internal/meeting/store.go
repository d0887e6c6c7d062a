package meeting

import "time"

// Store owns every meeting record for the lifetime of the process. All
// mutations go through its named operations; callers on the update loop are
// the only writers, so the store carries no locking.
type Store struct {
	order    []string
	meetings map[string]*Meeting
}

// NewStore builds a store over the given records, preserving their order.
func NewStore(records ...*Meeting) *Store {
	s := &Store{meetings: make(map[string]*Meeting, len(records))}
	for _, m := range records {
		s.Add(m)
	}
	return s
}

// Add registers a meeting. A duplicate id replaces the old record in place.
func (s *Store) Add(m *Meeting) {
	if _, ok := s.meetings[m.ID]; !ok {
		s.order = append(s.order, m.ID)
	}
	s.meetings[m.ID] = m
}

// Get looks up a meeting by id.
func (s *Store) Get(id string) (*Meeting, bool) {
	m, ok := s.meetings[id]
	return m, ok
}

// List returns all meetings in seed order.
func (s *Store) List() []*Meeting {
	result := make([]*Meeting, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.meetings[id])
	}
	return result
}

// Upcoming returns meetings that have not ended yet.
func (s *Store) Upcoming() []*Meeting {
	var result []*Meeting
	for _, m := range s.List() {
		if m.EndedAt == nil {
			result = append(result, m)
		}
	}
	return result
}

// Previous returns meetings that already ended.
func (s *Store) Previous() []*Meeting {
	var result []*Meeting
	for _, m := range s.List() {
		if m.EndedAt != nil {
			result = append(result, m)
		}
	}
	return result
}

// Begin stamps the start time and moves the first agenda item in progress.
func (s *Store) Begin(meetingID string, at time.Time) error {
	m, ok := s.meetings[meetingID]
	if !ok {
		return ErrMeetingNotFound
	}
	started := at
	m.StartedAt = &started
	if len(m.Agenda) > 0 {
		m.Agenda[0].Status = ItemInProgress
	}
	return nil
}

// Finish stamps the end time. Agenda statuses are left as they were so the
// record shows how far the meeting got.
func (s *Store) Finish(meetingID string, at time.Time) error {
	m, ok := s.meetings[meetingID]
	if !ok {
		return ErrMeetingNotFound
	}
	ended := at
	m.EndedAt = &ended
	return nil
}

// AdvanceAgenda completes the in-progress item and opens the next one. When
// the cursor already sits on the last item the call is a no-op. The returned
// index is the cursor after the operation.
func (s *Store) AdvanceAgenda(meetingID string) (int, error) {
	m, ok := s.meetings[meetingID]
	if !ok {
		return 0, ErrMeetingNotFound
	}
	cursor := m.Cursor()
	if cursor < 0 {
		return 0, ErrNotStarted
	}
	next := cursor + 1
	if next >= len(m.Agenda) {
		return cursor, nil
	}
	m.Agenda[cursor].Status = ItemCompleted
	m.Agenda[next].Status = ItemInProgress
	return next, nil
}

// AppendTranscript appends one transcript item to the meeting log.
func (s *Store) AppendTranscript(meetingID string, item TranscriptItem) error {
	m, ok := s.meetings[meetingID]
	if !ok {
		return ErrMeetingNotFound
	}
	m.Transcript = append(m.Transcript, item)
	return nil
}

// AppendInsight appends one insight to the meeting log.
func (s *Store) AppendInsight(meetingID string, in *Insight) error {
	m, ok := s.meetings[meetingID]
	if !ok {
		return ErrMeetingNotFound
	}
	m.Insights = append(m.Insights, in)
	return nil
}

// AppendChatMessage grows the chat thread of the insight with the given id,
// searching across every meeting.
func (s *Store) AppendChatMessage(insightID string, msg ChatMessage) error {
	in, ok := s.FindInsight(insightID)
	if !ok {
		return ErrInsightNotFound
	}
	in.Chat = append(in.Chat, msg)
	return nil
}

// FindInsight locates an insight by id across all meetings.
func (s *Store) FindInsight(insightID string) (*Insight, bool) {
	for _, id := range s.order {
		for _, in := range s.meetings[id].Insights {
			if in.ID == insightID {
				return in, true
			}
		}
	}
	return nil, false
}

// CurrentTranscript projects the transcript entries owned by the agenda item
// at the cursor, preserving append order. An out-of-range cursor yields an
// empty slice.
func (s *Store) CurrentTranscript(meetingID string, cursor int) []TranscriptItem {
	m, ok := s.meetings[meetingID]
	if !ok {
		return nil
	}
	item, ok := m.AgendaItemAt(cursor)
	if !ok {
		return nil
	}
	var result []TranscriptItem
	for _, entry := range m.Transcript {
		if entry.AgendaItemID == item.ID {
			result = append(result, entry)
		}
	}
	return result
}

// CurrentInsights projects the insights owned by the agenda item at the
// cursor, preserving append order.
func (s *Store) CurrentInsights(meetingID string, cursor int) []*Insight {
	m, ok := s.meetings[meetingID]
	if !ok {
		return nil
	}
	item, ok := m.AgendaItemAt(cursor)
	if !ok {
		return nil
	}
	var result []*Insight
	for _, in := range m.Insights {
		if in.AgendaItemID == item.ID {
			result = append(result, in)
		}
	}
	return result
}

// TranscriptFor projects the transcript entries owned by a specific agenda
// item id, used as context when opening an insight.
func (s *Store) TranscriptFor(meetingID, agendaItemID string) []TranscriptItem {
	m, ok := s.meetings[meetingID]
	if !ok {
		return nil
	}
	var result []TranscriptItem
	for _, entry := range m.Transcript {
		if entry.AgendaItemID == agendaItemID {
			result = append(result, entry)
		}
	}
	return result
}
