// Package session holds the meeting lifecycle state machine that drives the
// dashboard. The reducer is pure: it performs no I/O, and side effects such as
// stamping meeting times or moving agenda statuses belong to the caller.
package session

// Status is the lifecycle status of the active dashboard session.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusEnded      Status = "ended"
)

// State is the per-session machine state. A fresh session starts with
// NewState; selecting another meeting resets it.
type State struct {
	Status  Status
	Elapsed int // seconds, display only
	Cursor  int
	Err     string
	Loading bool
}

// NewState returns the initial machine state.
func NewState() State {
	return State{Status: StatusNotStarted}
}

type actionKind int

const (
	actionStartMeeting actionKind = iota + 1
	actionEndMeeting
	actionSetError
	actionSetLoading
	actionNextAgendaItem
)

// Action is one input to the reducer. Build them with the constructors below.
type Action struct {
	kind    actionKind
	message string
	loading bool
}

// StartMeeting moves the session in progress and clears the loading flag.
// The caller stamps the meeting start time and opens the first agenda item
// before dispatching.
func StartMeeting() Action { return Action{kind: actionStartMeeting} }

// EndMeeting moves the session to its terminal status. Idempotent.
func EndMeeting() Action { return Action{kind: actionEndMeeting} }

// SetError records a user-visible failure and clears loading. The status is
// untouched so the operation can be retried.
func SetError(message string) Action { return Action{kind: actionSetError, message: message} }

// SetLoading brackets asynchronous start/stop operations.
func SetLoading(loading bool) Action { return Action{kind: actionSetLoading, loading: loading} }

// NextAgendaItem advances the cursor. The caller guards against running past
// the last agenda item and keeps the meeting record's statuses in step.
func NextAgendaItem() Action { return Action{kind: actionNextAgendaItem} }

// Reduce applies an action to a state. Unrecognized actions return the state
// unchanged; the function never panics and never leaves the three statuses.
func Reduce(s State, a Action) State {
	switch a.kind {
	case actionStartMeeting:
		s.Status = StatusInProgress
		s.Loading = false
		s.Err = ""
	case actionEndMeeting:
		s.Status = StatusEnded
		s.Loading = false
		s.Err = ""
	case actionSetError:
		s.Err = a.message
		s.Loading = false
	case actionSetLoading:
		s.Loading = a.loading
	case actionNextAgendaItem:
		s.Cursor++
	}
	return s
}
