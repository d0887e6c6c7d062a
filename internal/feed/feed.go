// Package feed synthesizes the mock live stream: one transcript entry per
// tick for whichever agenda item is in progress, with a probabilistic linked
// insight. The tick cadence is owned by the caller; this package only knows
// how to produce a single step.
package feed

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/csheth/boardroom/internal/commentary"
	"github.com/csheth/boardroom/internal/meeting"
)

// DefaultInsightProbability mirrors the demo tuning of the dashboard.
const DefaultInsightProbability = 0.3

// Simulator appends synthesized content to a meeting record.
type Simulator struct {
	store       *meeting.Store
	gen         *commentary.Generator
	rng         *rand.Rand
	probability float64
	now         func() time.Time
}

// New builds a simulator. A nil source falls back to a time-seeded one; a
// probability outside [0,1] is clamped.
func New(store *meeting.Store, gen *commentary.Generator, src rand.Source, probability float64) *Simulator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	return &Simulator{
		store:       store,
		gen:         gen,
		rng:         rand.New(src),
		probability: probability,
		now:         time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (s *Simulator) WithClock(now func() time.Time) *Simulator {
	s.now = now
	return s
}

// Tick synthesizes exactly one transcript item for the meeting's in-progress
// agenda item and, with the configured probability, one linked insight. It
// returns the produced item, or nil when the meeting has no open agenda item
// (a silent no-op, matching the stream going quiet between meetings).
func (s *Simulator) Tick(meetingID string) (*meeting.TranscriptItem, error) {
	m, ok := s.store.Get(meetingID)
	if !ok {
		return nil, meeting.ErrMeetingNotFound
	}
	current, ok := m.CurrentAgendaItem()
	if !ok || len(m.Participants) == 0 {
		return nil, nil
	}

	speaker := m.Participants[s.rng.Intn(len(m.Participants))]
	item := meeting.TranscriptItem{
		ID:           uuid.NewString(),
		Speaker:      speaker.Name,
		Content:      s.gen.Discussion(current.Title),
		SpokenAt:     s.now(),
		AgendaItemID: current.ID,
	}

	if s.rng.Float64() < s.probability {
		in := &meeting.Insight{
			ID:           uuid.NewString(),
			Content:      s.gen.Insight(current.Title),
			Type:         s.gen.InsightType(),
			CreatedAt:    item.SpokenAt,
			AgendaItemID: current.ID,
			Agent:        "AI",
		}
		item.Insight = in
		if err := s.store.AppendInsight(meetingID, in); err != nil {
			return nil, err
		}
	}

	if err := s.store.AppendTranscript(meetingID, item); err != nil {
		return nil, err
	}
	return &item, nil
}
