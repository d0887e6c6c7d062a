package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/csheth/boardroom/internal/commentary"
	"github.com/csheth/boardroom/internal/feed"
	"github.com/csheth/boardroom/internal/kanban"
	"github.com/csheth/boardroom/internal/meeting"
	"github.com/csheth/boardroom/internal/minutes"
	"github.com/csheth/boardroom/internal/session"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Store          *meeting.Store
	Feed           *feed.Simulator
	Gen            *commentary.Generator
	Board          *kanban.Board
	UpdateInterval time.Duration
	PreviewLength  int
	MinutesPath    string
	OpLatency      time.Duration
	Logger         zerolog.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.UpdateInterval <= 0 {
		config.UpdateInterval = 10 * time.Second
	}
	if config.PreviewLength <= 0 {
		config.PreviewLength = 100
	}
	if config.OpLatency <= 0 {
		config.OpLatency = time.Second
	}

	composer := textinput.New()
	composer.CharLimit = 280
	composer.Width = 70

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(80, 16)
	vp.MouseWheelEnabled = true

	return &model{
		config:         config,
		stage:          stageList,
		tab:            tabUpcoming,
		state:          session.NewState(),
		stopwatch:      stopwatch.NewWithInterval(time.Second),
		spinner:        spin,
		transcriptView: vp,
		composer:       composer,
		jobs:           newJobBus(config.Logger),
		infoMessage:    "Pick a meeting to open its dashboard.",
	}
}

type stage int

const (
	stageList stage = iota
	stageDashboard
)

type listTab int

const (
	tabUpcoming listTab = iota
	tabPrevious
	tabKanban
)

type composerMode int

const (
	composerIdle composerMode = iota
	composerAsk
	composerReply
)

const heroTagline = "Run meetings with a live copilot at your side."

type model struct {
	config Config
	stage  stage
	tab    listTab

	listCursor   int
	kanbanCursor int

	selectedMeetingID string
	state             session.State
	feedGeneration    int

	stopwatch      stopwatch.Model
	spinner        spinner.Model
	transcriptView viewport.Model
	composer       textinput.Model
	composerMode   composerMode

	insightCursor int
	openInsightID string

	infoMessage  string
	helpVisible  bool
	shareVisible bool

	width  int
	height int

	jobs *jobBus
}

type feedTickMsg struct {
	meetingID  string
	generation int
}

type startResultMsg struct {
	meetingID string
	startedAt time.Time
	err       error
}

type endResultMsg struct {
	meetingID string
	endedAt   time.Time
	err       error
}

type exportResultMsg struct {
	path string
	err  error
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTranscript()
		return m, nil
	case spinner.TickMsg:
		if m.state.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(msg)
		m.state.Elapsed = int(m.stopwatch.Elapsed().Seconds())
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageDashboard {
			var cmd tea.Cmd
			m.transcriptView, cmd = m.transcriptView.Update(msg)
			return m, cmd
		}
		return m, nil
	case feedTickMsg:
		return m.handleFeedTick(msg)
	case jobSignalMsg:
		return m, nil
	case jobResultEnvelope:
		return m.Update(msg.Payload)
	case startResultMsg:
		return m.handleStartResult(msg)
	case endResultMsg:
		return m.handleEndResult(msg)
	case exportResultMsg:
		return m.handleExportResult(msg)
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.composerMode != composerIdle {
		return m.handleComposerKey(key)
	}
	if key.Type == tea.KeyEsc {
		return m.handleEscape()
	}
	switch m.stage {
	case stageList:
		return m.handleListKey(key)
	case stageDashboard:
		return m.handleDashboardKey(key)
	}
	return m, nil
}

func (m *model) handleEscape() (tea.Model, tea.Cmd) {
	switch {
	case m.helpVisible:
		m.helpVisible = false
	case m.shareVisible:
		m.shareVisible = false
	case m.openInsightID != "":
		m.openInsightID = ""
	case m.stage == stageDashboard:
		return m.leaveDashboard()
	default:
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) handleListKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "tab":
		m.tab = (m.tab + 1) % 3
		m.listCursor = 0
	case "shift+tab":
		m.tab = (m.tab + 2) % 3
		m.listCursor = 0
	case "up", "k":
		m.moveListCursor(-1)
	case "down", "j":
		m.moveListCursor(1)
	case "left", "h":
		if m.tab == tabKanban && m.kanbanCursor > 0 {
			m.kanbanCursor--
		}
	case "right", "l":
		if m.tab == tabKanban && m.kanbanCursor < len(m.config.Board.Columns)-1 {
			m.kanbanCursor++
		}
	case "enter":
		if m.tab == tabKanban {
			return m.addKanbanCard()
		}
		return m.openMeetingAtCursor()
	case "a":
		if m.tab == tabKanban {
			return m.addKanbanCard()
		}
	case "?":
		m.helpVisible = !m.helpVisible
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) handleDashboardKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "s":
		return m.actionStartMeeting()
	case "x":
		return m.actionEndMeeting()
	case "n":
		return m.actionNextAgendaItem()
	case "a":
		return m.openAskComposer()
	case "e":
		return m.actionExportMinutes()
	case "up", "k":
		m.moveInsightCursor(-1)
	case "down", "j":
		m.moveInsightCursor(1)
	case "enter":
		return m.openInsightAtCursor()
	case "c":
		m.shareVisible = !m.shareVisible
	case "b":
		return m.leaveDashboard()
	case "?":
		m.helpVisible = !m.helpVisible
	case "q":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.transcriptView, cmd = m.transcriptView.Update(key)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleComposerKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.closeComposer()
		m.openInsightID = ""
		m.infoMessage = "Canceled."
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.composer.Value())
		m.composer.SetValue("")
		if value == "" {
			m.infoMessage = "Type a message or press Esc to cancel."
			return m, nil
		}
		switch m.composerMode {
		case composerAsk:
			m.closeComposer()
			return m.submitQuestion(value)
		case composerReply:
			return m.submitReply(value)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(key)
	return m, cmd
}

func (m *model) closeComposer() {
	m.composerMode = composerIdle
	m.composer.SetValue("")
	m.composer.Blur()
}

func (m *model) moveListCursor(delta int) {
	records := m.tabMeetings()
	if len(records) == 0 {
		m.listCursor = 0
		return
	}
	target := m.listCursor + delta
	if target < 0 {
		target = 0
	}
	if target >= len(records) {
		target = len(records) - 1
	}
	m.listCursor = target
}

func (m *model) tabMeetings() []*meeting.Meeting {
	switch m.tab {
	case tabPrevious:
		return m.config.Store.Previous()
	default:
		return m.config.Store.Upcoming()
	}
}

func (m *model) openMeetingAtCursor() (tea.Model, tea.Cmd) {
	records := m.tabMeetings()
	if len(records) == 0 {
		m.infoMessage = "No meetings in this tab."
		return m, nil
	}
	if m.listCursor >= len(records) {
		m.listCursor = len(records) - 1
	}
	return m.selectMeeting(records[m.listCursor].ID)
}

func (m *model) selectMeeting(id string) (tea.Model, tea.Cmd) {
	record, ok := m.config.Store.Get(id)
	if !ok {
		m.infoMessage = "That meeting is gone."
		return m, nil
	}

	m.feedGeneration++
	m.selectedMeetingID = id
	m.stage = stageDashboard
	m.state = session.NewState()
	m.stopwatch = stopwatch.NewWithInterval(time.Second)
	m.closeComposer()
	m.openInsightID = ""
	m.insightCursor = 0
	m.helpVisible = false
	m.shareVisible = false

	var cmds []tea.Cmd
	switch {
	case record.EndedAt != nil:
		m.state = session.Reduce(m.state, session.EndMeeting())
		m.infoMessage = "Meeting already ended. Press e to export minutes."
	case record.Cursor() >= 0:
		// The record was left mid-flight; resume the live session.
		m.state = session.Reduce(m.state, session.StartMeeting())
		m.state.Cursor = record.Cursor()
		m.runFeedStep()
		cmds = append(cmds, m.stopwatch.Start(), m.scheduleFeedTick())
		m.infoMessage = "Resumed live meeting."
	default:
		m.infoMessage = "Press s to start the meeting."
	}
	m.refreshTranscript()
	m.config.Logger.Info().Str("meeting", id).Str("title", record.Title).Msg("meeting opened")
	return m, tea.Batch(cmds...)
}

func (m *model) leaveDashboard() (tea.Model, tea.Cmd) {
	m.feedGeneration++
	m.stage = stageList
	m.selectedMeetingID = ""
	m.state = session.NewState()
	m.stopwatch = stopwatch.NewWithInterval(time.Second)
	m.closeComposer()
	m.openInsightID = ""
	m.insightCursor = 0
	m.infoMessage = "Pick a meeting to open its dashboard."
	return m, nil
}

func (m *model) actionStartMeeting() (tea.Model, tea.Cmd) {
	record, ok := m.currentMeeting()
	if !ok {
		return m, nil
	}
	if m.state.Loading {
		m.infoMessage = "Hold on, an operation is already in flight."
		return m, nil
	}
	if m.state.Status != session.StatusNotStarted {
		m.infoMessage = "Meeting already started."
		return m, nil
	}
	if record.EndedAt != nil {
		m.infoMessage = "Meeting already ended."
		return m, nil
	}
	m.state = session.Reduce(m.state, session.SetLoading(true))
	m.infoMessage = "Starting meeting…"
	return m, tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindStartMeeting, startMeetingJob(record.ID, m.config.OpLatency)))
}

func (m *model) actionEndMeeting() (tea.Model, tea.Cmd) {
	record, ok := m.currentMeeting()
	if !ok {
		return m, nil
	}
	if m.state.Loading {
		m.infoMessage = "Hold on, an operation is already in flight."
		return m, nil
	}
	if m.state.Status != session.StatusInProgress {
		m.infoMessage = "Only a live meeting can be ended."
		return m, nil
	}
	m.state = session.Reduce(m.state, session.SetLoading(true))
	m.infoMessage = "Ending meeting…"
	return m, tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindEndMeeting, endMeetingJob(record.ID, m.config.OpLatency)))
}

func (m *model) actionNextAgendaItem() (tea.Model, tea.Cmd) {
	record, ok := m.currentMeeting()
	if !ok {
		return m, nil
	}
	if m.state.Status != session.StatusInProgress {
		m.infoMessage = "Start the meeting before advancing the agenda."
		return m, nil
	}
	if m.state.Cursor+1 >= len(record.Agenda) {
		m.infoMessage = "Already on the last agenda item."
		return m, nil
	}
	next, err := m.config.Store.AdvanceAgenda(record.ID)
	if err != nil {
		m.state = session.Reduce(m.state, session.SetError(err.Error()))
		return m, nil
	}
	m.state = session.Reduce(m.state, session.NextAgendaItem())
	m.insightCursor = 0
	m.refreshTranscript()
	if item, ok := record.AgendaItemAt(next); ok {
		m.infoMessage = fmt.Sprintf("Now discussing %q.", item.Title)
	}
	return m, nil
}

func (m *model) openAskComposer() (tea.Model, tea.Cmd) {
	record, ok := m.currentMeeting()
	if !ok {
		return m, nil
	}
	if _, ok := record.AgendaItemAt(m.state.Cursor); !ok {
		m.infoMessage = "Start the meeting before asking the copilot."
		return m, nil
	}
	m.composerMode = composerAsk
	m.composer.Placeholder = "Ask the copilot about the current topic…"
	m.composer.SetValue("")
	m.composer.Focus()
	return m, textinput.Blink
}

func (m *model) actionExportMinutes() (tea.Model, tea.Cmd) {
	record, ok := m.currentMeeting()
	if !ok {
		return m, nil
	}
	summary := minutes.Build(record)
	m.infoMessage = "Exporting minutes…"
	return m, m.jobs.Start(jobKindExport, exportMinutesJob(m.config.MinutesPath, summary))
}

func (m *model) moveInsightCursor(delta int) {
	insights := m.currentInsights()
	if len(insights) == 0 {
		m.insightCursor = 0
		return
	}
	target := m.insightCursor + delta
	if target < 0 {
		target = 0
	}
	if target >= len(insights) {
		target = len(insights) - 1
	}
	m.insightCursor = target
}

func (m *model) openInsightAtCursor() (tea.Model, tea.Cmd) {
	insights := m.currentInsights()
	if len(insights) == 0 {
		m.infoMessage = "No insights for this agenda item yet."
		return m, nil
	}
	if m.insightCursor >= len(insights) {
		m.insightCursor = len(insights) - 1
	}
	m.openInsightID = insights[m.insightCursor].ID
	m.composerMode = composerReply
	m.composer.Placeholder = "Reply to this insight…"
	m.composer.SetValue("")
	m.composer.Focus()
	return m, textinput.Blink
}

func (m *model) submitQuestion(question string) (tea.Model, tea.Cmd) {
	record, ok := m.currentMeeting()
	if !ok {
		return m, nil
	}
	item, ok := record.AgendaItemAt(m.state.Cursor)
	if !ok {
		m.infoMessage = "No agenda item is open right now."
		return m, nil
	}
	now := time.Now()
	in := &meeting.Insight{
		ID:           uuid.NewString(),
		Content:      m.config.Gen.Insight(item.Title),
		Type:         meeting.InsightThink,
		CreatedAt:    now,
		AgendaItemID: item.ID,
		Agent:        "AI",
		Chat: []meeting.ChatMessage{{
			ID:      uuid.NewString(),
			Sender:  "You",
			Content: question,
			SentAt:  now,
		}},
	}
	if err := m.config.Store.AppendInsight(record.ID, in); err != nil {
		m.state = session.Reduce(m.state, session.SetError(err.Error()))
		return m, nil
	}
	m.insightCursor = len(m.currentInsights()) - 1
	m.infoMessage = "The copilot answered; see the insight panel."
	return m, nil
}

func (m *model) submitReply(value string) (tea.Model, tea.Cmd) {
	msg := meeting.ChatMessage{
		ID:      uuid.NewString(),
		Sender:  "You",
		Content: value,
		SentAt:  time.Now(),
	}
	if err := m.config.Store.AppendChatMessage(m.openInsightID, msg); err != nil {
		m.infoMessage = err.Error()
		return m, nil
	}
	m.infoMessage = "Reply added to the thread."
	return m, nil
}

func (m *model) addKanbanCard() (tea.Model, tea.Cmd) {
	columns := m.config.Board.Columns
	if len(columns) == 0 {
		return m, nil
	}
	if m.kanbanCursor >= len(columns) {
		m.kanbanCursor = len(columns) - 1
	}
	column := columns[m.kanbanCursor]
	if _, err := m.config.Board.Add(column.ID, fmt.Sprintf("New item in %s", column.Title)); err != nil {
		m.infoMessage = err.Error()
		return m, nil
	}
	m.infoMessage = fmt.Sprintf("Added a card to %s.", column.Title)
	return m, nil
}

func (m *model) handleFeedTick(msg feedTickMsg) (tea.Model, tea.Cmd) {
	if msg.generation != m.feedGeneration || msg.meetingID != m.selectedMeetingID {
		return m, nil
	}
	if m.state.Status != session.StatusInProgress {
		return m, nil
	}
	m.runFeedStep()
	return m, m.scheduleFeedTick()
}

func (m *model) runFeedStep() {
	item, err := m.config.Feed.Tick(m.selectedMeetingID)
	if err != nil {
		m.config.Logger.Error().Err(err).Str("meeting", m.selectedMeetingID).Msg("feed tick failed")
		m.state = session.Reduce(m.state, session.SetError(err.Error()))
		return
	}
	if item == nil {
		return
	}
	m.config.Logger.Debug().
		Str("meeting", m.selectedMeetingID).
		Str("speaker", item.Speaker).
		Bool("insight", item.Insight != nil).
		Msg("transcript item")
	m.refreshTranscript()
}

func (m *model) handleStartResult(msg startResultMsg) (tea.Model, tea.Cmd) {
	if msg.meetingID != m.selectedMeetingID {
		return m, nil
	}
	if msg.err != nil {
		m.state = session.Reduce(m.state, session.SetError(fmt.Sprintf("failed to start meeting: %v", msg.err)))
		m.infoMessage = "Press s to retry."
		return m, nil
	}
	if err := m.config.Store.Begin(msg.meetingID, msg.startedAt); err != nil {
		m.state = session.Reduce(m.state, session.SetError(err.Error()))
		return m, nil
	}
	m.state = session.Reduce(m.state, session.StartMeeting())
	m.state.Cursor = 0
	m.feedGeneration++
	// First utterance lands immediately; the interval governs the rest.
	m.runFeedStep()
	m.refreshTranscript()
	m.infoMessage = "Meeting started."
	return m, tea.Batch(m.stopwatch.Start(), m.scheduleFeedTick())
}

func (m *model) handleEndResult(msg endResultMsg) (tea.Model, tea.Cmd) {
	if msg.meetingID != m.selectedMeetingID {
		return m, nil
	}
	if msg.err != nil {
		m.state = session.Reduce(m.state, session.SetError(fmt.Sprintf("failed to end meeting: %v", msg.err)))
		m.infoMessage = "Press x to retry."
		return m, nil
	}
	if err := m.config.Store.Finish(msg.meetingID, msg.endedAt); err != nil {
		m.state = session.Reduce(m.state, session.SetError(err.Error()))
		return m, nil
	}
	m.state = session.Reduce(m.state, session.EndMeeting())
	m.feedGeneration++
	m.infoMessage = "Meeting ended. Press e to export minutes."
	return m, m.stopwatch.Stop()
}

func (m *model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.config.Logger.Error().Err(msg.err).Str("path", msg.path).Msg("minutes export failed")
		m.infoMessage = fmt.Sprintf("Minutes export failed: %v", msg.err)
		return m, nil
	}
	m.infoMessage = fmt.Sprintf("Minutes appended to %s.", msg.path)
	return m, nil
}

func (m *model) currentMeeting() (*meeting.Meeting, bool) {
	return m.config.Store.Get(m.selectedMeetingID)
}

func (m *model) currentInsights() []*meeting.Insight {
	return m.config.Store.CurrentInsights(m.selectedMeetingID, m.state.Cursor)
}

func (m *model) refreshTranscript() {
	entries := m.config.Store.CurrentTranscript(m.selectedMeetingID, m.state.Cursor)
	m.transcriptView.SetContent(m.renderTranscript(entries))
	m.transcriptView.GotoBottom()
}

func (m *model) resizeTranscript() {
	width := m.width/2 - 4
	if width < 40 {
		width = 40
	}
	m.transcriptView.Width = width
	height := m.height - 16
	if height < 6 {
		height = 6
	}
	m.transcriptView.Height = height
	m.refreshTranscript()
}
