package feed_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/csheth/boardroom/internal/commentary"
	"github.com/csheth/boardroom/internal/feed"
	"github.com/csheth/boardroom/internal/meeting"
)

func simulatorFixture(t *testing.T, probability float64) (*feed.Simulator, *meeting.Store, *meeting.Meeting) {
	t.Helper()
	records := meeting.Seed()
	store := meeting.NewStore(records...)
	gen := commentary.New(rand.NewSource(11))
	sim := feed.New(store, gen, rand.NewSource(23), probability)
	return sim, store, records[0]
}

func TestTickAppendsExactlyOneTranscriptItem(t *testing.T) {
	t.Parallel()

	sim, store, m := simulatorFixture(t, 0)
	require.NoError(t, store.Begin(m.ID, time.Now()))

	for i := 1; i <= 3; i++ {
		item, err := sim.Tick(m.ID)
		require.NoError(t, err)
		require.NotNil(t, item)
		require.Len(t, m.Transcript, i)
	}

	got := store.CurrentTranscript(m.ID, 0)
	require.Len(t, got, 3)
}

func TestTickNoopBeforeMeetingBegins(t *testing.T) {
	t.Parallel()

	sim, _, m := simulatorFixture(t, 0.5)
	item, err := sim.Tick(m.ID)
	require.NoError(t, err)
	require.Nil(t, item)
	require.Empty(t, m.Transcript)
	require.Empty(t, m.Insights)
}

func TestTickUnknownMeeting(t *testing.T) {
	t.Parallel()

	sim, _, _ := simulatorFixture(t, 0.5)
	_, err := sim.Tick("missing")
	require.ErrorIs(t, err, meeting.ErrMeetingNotFound)
}

func TestTickScopesContentToCurrentItem(t *testing.T) {
	t.Parallel()

	sim, store, m := simulatorFixture(t, 1)
	require.NoError(t, store.Begin(m.ID, time.Now()))

	_, err := sim.Tick(m.ID)
	require.NoError(t, err)
	_, err = store.AdvanceAgenda(m.ID)
	require.NoError(t, err)
	_, err = sim.Tick(m.ID)
	require.NoError(t, err)

	require.Equal(t, m.Agenda[0].ID, m.Transcript[0].AgendaItemID)
	require.Equal(t, m.Agenda[1].ID, m.Transcript[1].AgendaItemID)
	require.Len(t, store.CurrentTranscript(m.ID, 0), 1)
	require.Len(t, store.CurrentTranscript(m.ID, 1), 1)
	require.Len(t, store.CurrentInsights(m.ID, 1), 1)
}

func TestTickStampsInjectedClock(t *testing.T) {
	t.Parallel()

	sim, store, m := simulatorFixture(t, 1)
	require.NoError(t, store.Begin(m.ID, time.Now()))

	fixed := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	sim.WithClock(func() time.Time { return fixed })

	item, err := sim.Tick(m.ID)
	require.NoError(t, err)
	require.Equal(t, fixed, item.SpokenAt)
	require.Equal(t, fixed, item.Insight.CreatedAt)
}

func TestTickAttachesInsightAlwaysAtProbabilityOne(t *testing.T) {
	t.Parallel()

	sim, store, m := simulatorFixture(t, 1)
	require.NoError(t, store.Begin(m.ID, time.Now()))

	item, err := sim.Tick(m.ID)
	require.NoError(t, err)
	require.NotNil(t, item.Insight)
	require.Len(t, m.Insights, 1)
	require.Equal(t, item.Insight.ID, m.Insights[0].ID)
	require.Equal(t, "AI", item.Insight.Agent)
}

func TestTickNeverAttachesInsightAtProbabilityZero(t *testing.T) {
	t.Parallel()

	sim, store, m := simulatorFixture(t, 0)
	require.NoError(t, store.Begin(m.ID, time.Now()))

	for i := 0; i < 50; i++ {
		item, err := sim.Tick(m.ID)
		require.NoError(t, err)
		require.Nil(t, item.Insight)
	}
	require.Empty(t, m.Insights)
}

// Smoke test, not exact: over 10k ticks with p=0.3 the insight rate has to
// land in a 250–350 per 1000 band.
func TestInsightProbabilityBand(t *testing.T) {
	t.Parallel()

	sim, store, m := simulatorFixture(t, 0.3)
	require.NoError(t, store.Begin(m.ID, time.Now()))

	const ticks = 10_000
	for i := 0; i < ticks; i++ {
		_, err := sim.Tick(m.ID)
		require.NoError(t, err)
	}

	rate := float64(len(m.Insights)) / float64(ticks) * 1000
	require.GreaterOrEqual(t, rate, 250.0, "insight rate per 1000 ticks")
	require.LessOrEqual(t, rate, 350.0, "insight rate per 1000 ticks")
	require.Len(t, m.Transcript, ticks)
}
