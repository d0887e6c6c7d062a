package session

import (
	"math/rand"
	"testing"
)

func TestReduceStartClearsLoadingAndError(t *testing.T) {
	t.Parallel()

	s := NewState()
	s = Reduce(s, SetLoading(true))
	s = Reduce(s, SetError("start failed"))
	if s.Status != StatusNotStarted {
		t.Fatalf("error must not change status, got %v", s.Status)
	}

	s = Reduce(s, SetLoading(true))
	s = Reduce(s, StartMeeting())
	if s.Status != StatusInProgress {
		t.Fatalf("status = %v, want %v", s.Status, StatusInProgress)
	}
	if s.Loading {
		t.Fatal("start must clear the loading flag")
	}
	if s.Err != "" {
		t.Fatalf("successful start must clear the error, got %q", s.Err)
	}
}

func TestReduceStartIsIdempotent(t *testing.T) {
	t.Parallel()

	s := Reduce(NewState(), StartMeeting())
	again := Reduce(s, StartMeeting())
	if again != s {
		t.Fatalf("repeated start changed state: %+v vs %+v", again, s)
	}
}

func TestReduceEndTolerated(t *testing.T) {
	t.Parallel()

	s := Reduce(NewState(), StartMeeting())
	s = Reduce(s, EndMeeting())
	if s.Status != StatusEnded {
		t.Fatalf("status = %v, want %v", s.Status, StatusEnded)
	}
	if again := Reduce(s, EndMeeting()); again != s {
		t.Fatalf("repeated end changed state: %+v vs %+v", again, s)
	}
}

func TestReduceNextAgendaItemIncrementsCursor(t *testing.T) {
	t.Parallel()

	s := NewState()
	for i := 1; i <= 3; i++ {
		s = Reduce(s, NextAgendaItem())
		if s.Cursor != i {
			t.Fatalf("cursor = %d, want %d", s.Cursor, i)
		}
	}
}

func TestReduceUnknownActionIsNoop(t *testing.T) {
	t.Parallel()

	s := Reduce(NewState(), StartMeeting())
	if got := Reduce(s, Action{}); got != s {
		t.Fatalf("zero action changed state: %+v vs %+v", got, s)
	}
}

// The reducer must stay closed over the three statuses no matter what
// sequence of actions arrives.
func TestReduceClosedOverStatuses(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	actions := []func() Action{
		StartMeeting,
		EndMeeting,
		func() Action { return SetError("boom") },
		func() Action { return SetLoading(rng.Intn(2) == 0) },
		NextAgendaItem,
	}
	valid := map[Status]bool{StatusNotStarted: true, StatusInProgress: true, StatusEnded: true}

	s := NewState()
	for i := 0; i < 10_000; i++ {
		s = Reduce(s, actions[rng.Intn(len(actions))]())
		if !valid[s.Status] {
			t.Fatalf("step %d reached undefined status %q", i, s.Status)
		}
		if s.Cursor < 0 {
			t.Fatalf("step %d produced negative cursor %d", i, s.Cursor)
		}
	}
}

func TestFormatClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{65, "01:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{-4, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Fatalf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
