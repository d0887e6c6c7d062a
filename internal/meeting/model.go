package meeting

import "time"

// ItemStatus tracks where an agenda item sits in the meeting flow.
type ItemStatus string

const (
	ItemNotStarted ItemStatus = "not_started"
	ItemInProgress ItemStatus = "in_progress"
	ItemCompleted  ItemStatus = "completed"
)

// InsightType labels the flavor of a synthesized insight.
type InsightType string

const (
	InsightThink   InsightType = "think"
	InsightReflect InsightType = "reflect"
	InsightPlan    InsightType = "plan"
)

// InsightTypes lists every valid insight flavor, in a stable order.
var InsightTypes = []InsightType{InsightThink, InsightReflect, InsightPlan}

// Participant is an attendee seeded with the meeting. Immutable after seeding.
type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// AgendaItem is one scheduled discussion topic.
type AgendaItem struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Duration int        `json:"duration"` // planned minutes
	Status   ItemStatus `json:"status"`
}

// ChatMessage is one entry in an insight's discussion thread.
type ChatMessage struct {
	ID      string    `json:"id"`
	Sender  string    `json:"sender"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

// Insight is a synthesized commentary entry scoped to an agenda item. The
// record itself is append-only; only its chat thread grows afterwards.
type Insight struct {
	ID           string        `json:"id"`
	Content      string        `json:"content"`
	Type         InsightType   `json:"type"`
	CreatedAt    time.Time     `json:"createdAt"`
	AgendaItemID string        `json:"agendaItemId"`
	Agent        string        `json:"agent"`
	Chat         []ChatMessage `json:"chat"`
}

// TranscriptItem is one simulated utterance. An insight attached at creation
// time is shared with the meeting's insight log.
type TranscriptItem struct {
	ID           string    `json:"id"`
	Speaker      string    `json:"speaker"`
	Content      string    `json:"content"`
	SpokenAt     time.Time `json:"spokenAt"`
	AgendaItemID string    `json:"agendaItemId"`
	Insight      *Insight  `json:"insight,omitempty"`
}

// Meeting is the root record the store owns for the process lifetime.
type Meeting struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	StartedAt    *time.Time       `json:"startedAt,omitempty"`
	EndedAt      *time.Time       `json:"endedAt,omitempty"`
	Agenda       []AgendaItem     `json:"agenda"`
	Transcript   []TranscriptItem `json:"transcript"`
	Insights     []*Insight       `json:"insights"`
	Participants []Participant    `json:"participants"`
}

// CurrentAgendaItem returns the item currently in progress.
func (m *Meeting) CurrentAgendaItem() (AgendaItem, bool) {
	for _, item := range m.Agenda {
		if item.Status == ItemInProgress {
			return item, true
		}
	}
	return AgendaItem{}, false
}

// Cursor reports the index of the in-progress agenda item, or -1 when the
// meeting has not begun.
func (m *Meeting) Cursor() int {
	for idx, item := range m.Agenda {
		if item.Status == ItemInProgress {
			return idx
		}
	}
	return -1
}

// AgendaItemAt returns the agenda item at the given index, tolerating
// out-of-range cursors.
func (m *Meeting) AgendaItemAt(cursor int) (AgendaItem, bool) {
	if cursor < 0 || cursor >= len(m.Agenda) {
		return AgendaItem{}, false
	}
	return m.Agenda[cursor], true
}
