package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/csheth/boardroom/internal/commentary"
	"github.com/csheth/boardroom/internal/feed"
	"github.com/csheth/boardroom/internal/kanban"
	"github.com/csheth/boardroom/internal/meeting"
	"github.com/csheth/boardroom/internal/session"
)

func newTestModel(t *testing.T) (*model, *meeting.Meeting) {
	t.Helper()
	records := meeting.Seed()
	store := meeting.NewStore(records...)
	gen := commentary.New(rand.NewSource(1))
	sim := feed.New(store, gen, rand.NewSource(2), 1)
	m := New(Config{
		Store:          store,
		Feed:           sim,
		Gen:            gen,
		Board:          kanban.NewBoard(),
		UpdateInterval: 10 * time.Millisecond,
		PreviewLength:  100,
		MinutesPath:    filepath.Join(t.TempDir(), "minutes.json"),
		OpLatency:      time.Millisecond,
		Logger:         zerolog.Nop(),
	}).(*model)
	m.selectMeeting(records[0].ID)
	return m, records[0]
}

func beginMeeting(t *testing.T, m *model, record *meeting.Meeting) {
	t.Helper()
	m.Update(startResultMsg{meetingID: record.ID, startedAt: time.Now()})
	if m.state.Status != session.StatusInProgress {
		t.Fatalf("meeting did not start: %v", m.state.Status)
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStartKeyLaunchesJob(t *testing.T) {
	m, record := newTestModel(t)

	_, cmd := m.handleDashboardKey(keyRune('s'))
	if cmd == nil {
		t.Fatal("start should launch a job")
	}
	if !m.state.Loading {
		t.Fatal("start should set the loading flag before the job resolves")
	}
	if m.state.Status != session.StatusNotStarted {
		t.Fatalf("status must stay not_started until the job resolves, got %v", m.state.Status)
	}
	if record.StartedAt != nil {
		t.Fatal("start time must not be stamped before the job resolves")
	}
}

func TestStartKeyGuardWhileLoading(t *testing.T) {
	m, record := newTestModel(t)
	m.state = session.Reduce(m.state, session.SetLoading(true))

	_, cmd := m.handleDashboardKey(keyRune('s'))
	if cmd != nil {
		t.Fatalf("second start while loading must not launch a job, got %T", cmd)
	}
	if record.StartedAt != nil {
		t.Fatal("guarded start must not touch the record")
	}
}

func TestStartResultBeginsMeeting(t *testing.T) {
	m, record := newTestModel(t)

	_, cmd := m.Update(startResultMsg{meetingID: record.ID, startedAt: time.Now()})
	if cmd == nil {
		t.Fatal("start result should arm the stopwatch and the feed tick")
	}
	if m.state.Status != session.StatusInProgress {
		t.Fatalf("status = %v, want in_progress", m.state.Status)
	}
	if m.state.Loading {
		t.Fatal("loading flag must clear when the meeting starts")
	}
	if record.StartedAt == nil {
		t.Fatal("start time not stamped")
	}
	if record.Agenda[0].Status != meeting.ItemInProgress {
		t.Fatalf("first agenda item = %v, want in_progress", record.Agenda[0].Status)
	}
}

func TestStartResultErrorKeepsStatus(t *testing.T) {
	m, record := newTestModel(t)
	m.state = session.Reduce(m.state, session.SetLoading(true))

	m.Update(startResultMsg{meetingID: record.ID, err: errFixture("backend down")})
	if m.state.Status != session.StatusNotStarted {
		t.Fatalf("a failed start must not change status, got %v", m.state.Status)
	}
	if m.state.Loading {
		t.Fatal("error must clear the loading flag")
	}
	if m.state.Err == "" {
		t.Fatal("error must be surfaced in the session state")
	}
	if record.StartedAt != nil {
		t.Fatal("failed start must not touch the record")
	}
}

func TestStartGuardOnEndedMeeting(t *testing.T) {
	m, record := newTestModel(t)
	now := time.Now()
	if err := m.config.Store.Finish(record.ID, now); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	m.selectMeeting(record.ID)

	_, cmd := m.handleDashboardKey(keyRune('s'))
	if cmd != nil {
		t.Fatal("an ended meeting must not restart")
	}
	if record.StartedAt != nil {
		t.Fatal("ended meeting record must stay untouched")
	}
}

func TestFeedTickAppendsAndReschedules(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)
	before := len(record.Transcript)

	_, cmd := m.Update(feedTickMsg{meetingID: record.ID, generation: m.feedGeneration})
	if len(record.Transcript) != before+1 {
		t.Fatalf("transcript length = %d, want %d", len(record.Transcript), before+1)
	}
	if cmd == nil {
		t.Fatal("a live tick must reschedule the next one")
	}
}

func TestFeedTickStaleGenerationDropped(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)
	stale := m.feedGeneration
	m.feedGeneration++
	before := len(record.Transcript)

	_, cmd := m.Update(feedTickMsg{meetingID: record.ID, generation: stale})
	if len(record.Transcript) != before {
		t.Fatalf("stale tick appended content: %d -> %d", before, len(record.Transcript))
	}
	if cmd != nil {
		t.Fatal("stale tick must not reschedule")
	}
}

func TestEndResultStopsFeed(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)
	liveGeneration := m.feedGeneration

	m.Update(endResultMsg{meetingID: record.ID, endedAt: time.Now()})
	if m.state.Status != session.StatusEnded {
		t.Fatalf("status = %v, want ended", m.state.Status)
	}
	if record.EndedAt == nil {
		t.Fatal("end time not stamped")
	}

	before := len(record.Transcript)
	_, cmd := m.Update(feedTickMsg{meetingID: record.ID, generation: liveGeneration})
	if len(record.Transcript) != before {
		t.Fatal("tick from the ended session appended content")
	}
	if cmd != nil {
		t.Fatal("tick from the ended session must not reschedule")
	}
}

func TestNextAgendaItemStopsAtLast(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)

	last := len(record.Agenda) - 1
	for i := 0; i < last; i++ {
		m.handleDashboardKey(keyRune('n'))
	}
	if m.state.Cursor != last {
		t.Fatalf("cursor = %d, want %d", m.state.Cursor, last)
	}

	m.handleDashboardKey(keyRune('n'))
	if m.state.Cursor != last {
		t.Fatalf("advancing past the last item moved the cursor to %d", m.state.Cursor)
	}
	open := 0
	for _, item := range record.Agenda {
		if item.Status == meeting.ItemInProgress {
			open++
		}
	}
	if open != 1 {
		t.Fatalf("want exactly one in-progress item, got %d", open)
	}
}

func TestNextAgendaGuardBeforeStart(t *testing.T) {
	m, record := newTestModel(t)

	m.handleDashboardKey(keyRune('n'))
	if m.state.Cursor != 0 {
		t.Fatalf("cursor moved before the meeting started: %d", m.state.Cursor)
	}
	if record.Agenda[0].Status != meeting.ItemNotStarted {
		t.Fatalf("agenda touched before start: %v", record.Agenda[0].Status)
	}
}

func TestAskComposerCreatesInsightWithQuestionInThread(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)
	before := len(m.currentInsights())

	m.handleDashboardKey(keyRune('a'))
	if m.composerMode != composerAsk {
		t.Fatalf("composer mode = %v, want ask", m.composerMode)
	}
	if !m.composer.Focused() {
		t.Fatal("composer should focus when asking")
	}

	m.composer.SetValue("What is the main risk here?")
	m.handleComposerKey(tea.KeyMsg{Type: tea.KeyEnter})

	insights := m.currentInsights()
	if len(insights) != before+1 {
		t.Fatalf("insights = %d, want %d", len(insights), before+1)
	}
	in := insights[len(insights)-1]
	if in.AgendaItemID != record.Agenda[0].ID {
		t.Fatalf("insight scoped to %q, want current item %q", in.AgendaItemID, record.Agenda[0].ID)
	}
	if in.Content == "" {
		t.Fatal("insight content empty")
	}
	if len(in.Chat) != 1 || in.Chat[0].Content != "What is the main risk here?" {
		t.Fatalf("question not recorded in the thread: %#v", in.Chat)
	}
	if m.composerMode != composerIdle {
		t.Fatal("composer should close after submitting a question")
	}
}

func TestInsightThreadReply(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)

	m.handleDashboardKey(keyRune('a'))
	m.composer.SetValue("Any blockers?")
	m.handleComposerKey(tea.KeyMsg{Type: tea.KeyEnter})

	m.handleDashboardKey(tea.KeyMsg{Type: tea.KeyEnter})
	if m.openInsightID == "" {
		t.Fatal("enter should open the insight at the cursor")
	}
	if m.composerMode != composerReply {
		t.Fatalf("composer mode = %v, want reply", m.composerMode)
	}

	m.composer.SetValue("Yes, the schema migration.")
	m.handleComposerKey(tea.KeyMsg{Type: tea.KeyEnter})

	in, ok := m.config.Store.FindInsight(m.openInsightID)
	if !ok {
		t.Fatal("open insight vanished")
	}
	if len(in.Chat) != 2 {
		t.Fatalf("thread length = %d, want 2", len(in.Chat))
	}
	if in.Chat[1].Content != "Yes, the schema migration." {
		t.Fatalf("reply content = %q", in.Chat[1].Content)
	}
	_ = record
}

func TestEscapeLeavesDashboardAndKillsFeed(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)
	liveGeneration := m.feedGeneration

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.stage != stageList {
		t.Fatalf("stage = %v, want list", m.stage)
	}

	before := len(record.Transcript)
	_, cmd := m.Update(feedTickMsg{meetingID: record.ID, generation: liveGeneration})
	if len(record.Transcript) != before || cmd != nil {
		t.Fatal("feed survived leaving the dashboard")
	}
}

func TestListViewShowsTabsAndMeetings(t *testing.T) {
	m, _ := newTestModel(t)
	m.leaveDashboard()

	view := m.View()
	for _, want := range []string{"Upcoming", "Previous", "Action Board", "Sprint Planning"} {
		if !strings.Contains(view, want) {
			t.Fatalf("list view missing %q:\n%s", want, view)
		}
	}
}

func TestDashboardViewShowsLiveBadgeAndClock(t *testing.T) {
	m, record := newTestModel(t)
	beginMeeting(t, m, record)
	m.state.Elapsed = 65

	view := m.View()
	if !strings.Contains(view, record.Title) {
		t.Fatalf("dashboard view missing meeting title:\n%s", view)
	}
	if !strings.Contains(view, "LIVE") {
		t.Fatal("dashboard view missing live badge")
	}
	if !strings.Contains(view, "01:05") {
		t.Fatal("dashboard view missing formatted clock")
	}
}

func TestKanbanTabAddsCard(t *testing.T) {
	m, _ := newTestModel(t)
	m.leaveDashboard()
	m.tab = tabKanban
	m.kanbanCursor = 1

	m.handleListKey(tea.KeyMsg{Type: tea.KeyEnter})

	column, ok := m.config.Board.Column("doing")
	if !ok {
		t.Fatal("doing column missing")
	}
	if len(column.Cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(column.Cards))
	}
}

type errFixture string

func (e errFixture) Error() string { return string(e) }
