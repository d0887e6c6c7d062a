package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/boardroom/internal/meeting"
	"github.com/csheth/boardroom/internal/session"
)

func (m *model) View() string {
	switch m.stage {
	case stageDashboard:
		return m.viewDashboard()
	default:
		return m.viewList()
	}
}

func (m *model) viewList() string {
	parts := []string{m.heroView(), m.tabBarView()}

	switch m.tab {
	case tabKanban:
		parts = append(parts, m.kanbanView())
	default:
		parts = append(parts, m.meetingListView())
	}

	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	parts = append(parts, m.listLegendView())
	if m.helpVisible {
		parts = append(parts, m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView() string {
	title := appTitleStyle.Render(" BOARDROOM ")
	return lipgloss.JoinVertical(lipgloss.Left, title, taglineStyle.Render(heroTagline))
}

func (m *model) tabBarView() string {
	labels := []string{"Upcoming", "Previous", "Action Board"}
	cells := make([]string, len(labels))
	for i, label := range labels {
		if listTab(i) == m.tab {
			cells[i] = tabActiveStyle.Render(label)
		} else {
			cells[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *model) meetingListView() string {
	records := m.tabMeetings()
	if len(records) == 0 {
		return helperStyle.Render("Nothing here yet.")
	}
	var b strings.Builder
	for idx, record := range records {
		cursor := "  "
		if idx == m.listCursor {
			cursor = "> "
		}
		title := record.Title
		if idx == m.listCursor {
			title = listSelectedStyle.Render(title)
		} else {
			title = listTitleStyle.Render(title)
		}
		b.WriteString(cursor + title)
		b.WriteRune('\n')
		b.WriteString("  " + helperStyle.Render(record.Description))
		b.WriteRune('\n')
		b.WriteString("  " + helperStyle.Render(meetingScheduleLine(record)))
		b.WriteRune('\n')
	}
	return b.String()
}

func meetingScheduleLine(record *meeting.Meeting) string {
	switch {
	case record.EndedAt != nil:
		return fmt.Sprintf("Ended %s · %d agenda items", record.EndedAt.Format("15:04"), len(record.Agenda))
	case record.StartedAt != nil:
		return fmt.Sprintf("Live since %s · %d agenda items", record.StartedAt.Format("15:04"), len(record.Agenda))
	default:
		return fmt.Sprintf("Not started · %d agenda items · %d participants", len(record.Agenda), len(record.Participants))
	}
}

func (m *model) kanbanView() string {
	columns := m.config.Board.Columns
	boxes := make([]string, 0, len(columns))
	for idx, column := range columns {
		var b strings.Builder
		b.WriteString(sectionHeaderStyle.Render(column.Title))
		b.WriteRune('\n')
		if len(column.Cards) == 0 {
			b.WriteString(helperStyle.Render("(empty)"))
		}
		for _, card := range column.Cards {
			b.WriteString(wordwrap.String("• "+card.Content, 24))
			b.WriteRune('\n')
		}
		style := kanbanColumnStyle
		if idx == m.kanbanCursor {
			style = kanbanActiveColumnStyle
		}
		boxes = append(boxes, style.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *model) viewDashboard() string {
	record, ok := m.currentMeeting()
	if !ok {
		return m.viewList()
	}

	parts := []string{m.dashboardHeaderView(record), m.agendaStripView(record)}

	transcript := transcriptBoxStyle.Width(m.transcriptView.Width + 2).Render(
		sectionHeaderStyle.Render("Live Discussion") + "\n" + m.transcriptView.View(),
	)
	insights := insightBoxStyle.Render(m.insightPanelView())
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, transcript, insights))

	names := make([]string, 0, len(record.Participants))
	for _, p := range record.Participants {
		names = append(names, p.Name)
	}
	parts = append(parts, helperStyle.Render("Participants: "+strings.Join(names, ", ")))

	if m.state.Err != "" {
		parts = append(parts, errorStyle.Render(m.state.Err))
	}
	if m.infoMessage != "" {
		parts = append(parts, helperStyle.Render(m.infoMessage))
	}
	if m.openInsightID != "" {
		parts = append(parts, m.insightOverlayView())
	}
	if m.composerMode != composerIdle {
		parts = append(parts, m.composerView())
	}
	if m.shareVisible {
		parts = append(parts, m.shareOverlayView(record))
	}
	parts = append(parts, m.dashboardLegendView())
	if m.helpVisible {
		parts = append(parts, m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) dashboardHeaderView(record *meeting.Meeting) string {
	badge := statusBadgeView(m.state.Status)
	clock := clockStyle.Render(session.FormatClock(m.state.Elapsed))
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		dashboardTitleStyle.Render(record.Title), "  ", badge, "  ", clock,
	)
	if m.state.Loading {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, "  ", m.spinner.View())
	}
	return header
}

func statusBadgeView(status session.Status) string {
	switch status {
	case session.StatusInProgress:
		return statusLiveStyle.Render(" LIVE ")
	case session.StatusEnded:
		return statusEndedStyle.Render(" ENDED ")
	default:
		return statusIdleStyle.Render(" NOT STARTED ")
	}
}

func (m *model) agendaStripView(record *meeting.Meeting) string {
	cells := make([]string, 0, len(record.Agenda))
	for idx, item := range record.Agenda {
		marker := "○"
		switch item.Status {
		case meeting.ItemCompleted:
			marker = "✓"
		case meeting.ItemInProgress:
			marker = "▶"
		}
		cell := fmt.Sprintf("%s %d. %s (%dm)", marker, idx+1, item.Title, item.Duration)
		if idx == m.state.Cursor && m.state.Status != session.StatusNotStarted {
			cell = agendaActiveStyle.Render(cell)
		} else {
			cell = helperStyle.Render(cell)
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, "   ")
}

func (m *model) insightPanelView() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Insights"))
	b.WriteRune('\n')
	insights := m.currentInsights()
	if len(insights) == 0 {
		b.WriteString(helperStyle.Render("None yet for this topic."))
		return b.String()
	}
	for idx, in := range insights {
		cursor := "  "
		if idx == m.insightCursor {
			cursor = "> "
		}
		label := insightTypeStyle(in.Type).Render(fmt.Sprintf("[%s]", in.Type))
		b.WriteString(cursor + label + " " + truncate(in.Content, m.config.PreviewLength))
		b.WriteRune('\n')
		if len(in.Chat) > 0 {
			b.WriteString("    " + helperStyle.Render(fmt.Sprintf("%d message(s) in thread", len(in.Chat))))
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func (m *model) insightOverlayView() string {
	in, ok := m.config.Store.FindInsight(m.openInsightID)
	if !ok {
		return ""
	}
	wrap := m.wrapWidth(8)
	var b strings.Builder
	b.WriteString(insightTypeStyle(in.Type).Render(fmt.Sprintf("Insight · %s", in.Type)))
	b.WriteRune('\n')
	b.WriteString(wordwrap.String(in.Content, wrap))
	b.WriteRune('\n')

	context := m.config.Store.TranscriptFor(m.selectedMeetingID, in.AgendaItemID)
	if len(context) > 0 {
		b.WriteRune('\n')
		b.WriteString(sectionHeaderStyle.Render("Context"))
		b.WriteRune('\n')
		start := len(context) - 3
		if start < 0 {
			start = 0
		}
		for _, entry := range context[start:] {
			line := fmt.Sprintf("%s: %s", entry.Speaker, entry.Content)
			b.WriteString(helperStyle.Render(wordwrap.String(line, wrap)))
			b.WriteRune('\n')
		}
	}

	b.WriteRune('\n')
	b.WriteString(sectionHeaderStyle.Render("Thread"))
	b.WriteRune('\n')
	if len(in.Chat) == 0 {
		b.WriteString(helperStyle.Render("No replies yet."))
		b.WriteRune('\n')
	}
	for _, msg := range in.Chat {
		b.WriteString(speakerStyle.Render(msg.Sender+":") + " " + wordwrap.String(msg.Content, wrap))
		b.WriteRune('\n')
	}
	return overlayBoxStyle.Render(b.String())
}

func (m *model) composerView() string {
	label := "Ask the copilot"
	if m.composerMode == composerReply {
		label = "Reply"
	}
	return sectionHeaderStyle.Render(label) + "\n" + m.composer.View() + "\n" +
		helperStyle.Render("Press Enter to send, Esc to cancel.")
}

func (m *model) shareOverlayView(record *meeting.Meeting) string {
	lines := []string{
		sectionHeaderStyle.Render("Share this meeting"),
		fmt.Sprintf("https://meet.example.com/join/%s", record.ID),
		helperStyle.Render("Press c to hide."),
	}
	return overlayBoxStyle.Render(strings.Join(lines, "\n"))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) listLegendView() string {
	hints := []keyHint{
		{"tab", "Switch tab"},
		{"↑/↓", "Move cursor"},
		{"enter", "Open / add card"},
		{"?", "Help"},
		{"q", "Quit"},
	}
	return renderLegend(hints)
}

func (m *model) dashboardLegendView() string {
	hints := []keyHint{
		{"s", "Start"},
		{"x", "End"},
		{"n", "Next topic"},
		{"a", "Ask copilot"},
		{"↑/↓", "Insights"},
		{"enter", "Open insight"},
		{"e", "Export minutes"},
		{"c", "Share"},
		{"b", "Back"},
		{"?", "Help"},
	}
	return renderLegend(hints)
}

func renderLegend(hints []keyHint) string {
	var cells []string
	for _, hint := range hints {
		key := keyStyle.Render(hint.Key)
		desc := keyDescStyle.Render(" " + hint.Description)
		cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc), "  ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("Help"),
		helperStyle.Render("• the meeting list has three tabs; tab cycles them and enter opens the highlighted meeting."),
		helperStyle.Render("• s starts a meeting and begins the live stream; new discussion arrives on a fixed cadence."),
		helperStyle.Render("• n moves to the next agenda item; the transcript and insight panels follow the open topic."),
		helperStyle.Render("• a asks the copilot a question about the open topic; the answer lands in the insight panel."),
		helperStyle.Render("• enter on an insight opens its thread, where you can reply."),
		helperStyle.Render("• x ends the meeting for good and e appends the minutes to the archive file."),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) renderTranscript(entries []meeting.TranscriptItem) string {
	if len(entries) == 0 {
		return helperStyle.Render("The stream is quiet. Discussion appears while the meeting is live.")
	}
	wrap := m.wrapWidth(4)
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(speakerStyle.Render(fmt.Sprintf("%s %s", entry.SpokenAt.Format("15:04:05"), entry.Speaker)))
		b.WriteRune('\n')
		b.WriteString(wordwrap.String(entry.Content, wrap))
		b.WriteRune('\n')
		if entry.Insight != nil {
			b.WriteString("  " + insightTypeStyle(entry.Insight.Type).Render(fmt.Sprintf("[%s]", entry.Insight.Type)))
			b.WriteRune('\n')
			b.WriteString(indentMultiline(helperStyle.Render(wordwrap.String(entry.Insight.Content, wrap-2)), "  "))
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func insightTypeStyle(t meeting.InsightType) lipgloss.Style {
	switch t {
	case meeting.InsightReflect:
		return insightReflectStyle
	case meeting.InsightPlan:
		return insightPlanStyle
	default:
		return insightThinkStyle
	}
}

func (m *model) wrapWidth(padding int) int {
	width := m.transcriptView.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

var (
	appTitleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	taglineStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb347")).Italic(true)
	dashboardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	speakerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	clockStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	listTitleStyle    = lipgloss.NewStyle().Bold(true)
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))

	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 2)
	tabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 2)

	statusLiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#a3be8c"))
	statusEndedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0def4")).Background(lipgloss.Color("#56526e"))
	statusIdleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	agendaActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#bde0fe"))

	insightThinkStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	insightReflectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("176"))
	insightPlanStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("150"))

	transcriptBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	insightBoxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1).Width(44)
	overlayBoxStyle         = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	helpBoxStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	kanbanColumnStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1).Width(28)
	kanbanActiveColumnStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#ffd166")).Padding(0, 1).Width(28)

	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
)
