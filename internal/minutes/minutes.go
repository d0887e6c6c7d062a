// Package minutes flattens a meeting record into an exportable archive
// entry. The archive is a JSON array on disk that export operations append
// to; nothing in the dashboard reads it back at startup.
package minutes

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Line is one attributed utterance in an agenda section.
type Line struct {
	Speaker  string    `json:"speaker"`
	Content  string    `json:"content"`
	SpokenAt time.Time `json:"spokenAt"`
}

// Section groups the captured content of one agenda item.
type Section struct {
	Topic    string   `json:"topic"`
	Planned  int      `json:"plannedMinutes"`
	Status   string   `json:"status"`
	Lines    []Line   `json:"lines,omitempty"`
	Insights []string `json:"insights,omitempty"`
}

// Minutes is one archived meeting.
type Minutes struct {
	MeetingID    string     `json:"meetingId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	Participants []string   `json:"participants,omitempty"`
	Sections     []Section  `json:"sections"`
	ExportedAt   time.Time  `json:"exportedAt"`
}

// Save appends minutes to the archive file, creating it if necessary.
func Save(path string, record Minutes) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	existing, err := Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	payload := append(existing, record)
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load returns all archived minutes.
func Load(path string) ([]Minutes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []Minutes
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
