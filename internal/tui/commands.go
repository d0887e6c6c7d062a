package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/boardroom/internal/minutes"
)

// scheduleFeedTick arms the next mock stream tick. The message carries the
// generation it was armed under; a stale generation means the session moved
// on and the tick is dropped without rescheduling.
func (m *model) scheduleFeedTick() tea.Cmd {
	meetingID := m.selectedMeetingID
	generation := m.feedGeneration
	return tea.Tick(m.config.UpdateInterval, func(time.Time) tea.Msg {
		return feedTickMsg{meetingID: meetingID, generation: generation}
	})
}

// startMeetingJob simulates the backend round trip of starting a meeting.
// Validation happens on the update loop before the job is launched, so the
// runner only waits out the latency and stamps the time.
func startMeetingJob(meetingID string, latency time.Duration) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if err := waitLatency(ctx, latency); err != nil {
			return startResultMsg{meetingID: meetingID, err: err}, err
		}
		return startResultMsg{meetingID: meetingID, startedAt: time.Now()}, nil
	}
}

func endMeetingJob(meetingID string, latency time.Duration) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if err := waitLatency(ctx, latency); err != nil {
			return endResultMsg{meetingID: meetingID, err: err}, err
		}
		return endResultMsg{meetingID: meetingID, endedAt: time.Now()}, nil
	}
}

func exportMinutesJob(path string, record minutes.Minutes) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if err := minutes.Save(path, record); err != nil {
			return exportResultMsg{path: path, err: err}, err
		}
		return exportResultMsg{path: path}, nil
	}
}

func waitLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
