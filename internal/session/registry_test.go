package session

import (
	"context"
	"testing"
	"time"

	"shopwidget/internal/money"
	"shopwidget/internal/widget"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(ttl time.Duration) (*Registry, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(func() *widget.Widget {
		return widget.New(widget.Options{Money: money.MustDefault()})
	}, ttl, nil)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestOpenCreatesSession(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	id, w, created := r.Open("")
	require.True(t, created)
	require.NotNil(t, w)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, 1, r.Len())

	again, w2, created := r.Open(id)
	require.False(t, created)
	require.Equal(t, id, again)
	require.Same(t, w, w2)
}

func TestOpenRejectsUnknownAndMalformedIDs(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	id, _, created := r.Open("not-a-uuid")
	require.True(t, created)
	require.NotEqual(t, "not-a-uuid", id)

	unknown := uuid.NewString()
	id, _, created = r.Open(unknown)
	require.True(t, created)
	require.NotEqual(t, unknown, id)
}

func TestSessionsKeepStateApart(t *testing.T) {
	r, _ := newTestRegistry(0)
	_, a, _ := r.Open("")
	_, b, _ := r.Open("")

	_, err := a.Dispatch(widget.Interaction{
		Classes: []string{widget.ClassAddCart},
		Data:    map[string]string{widget.DataID: "x", widget.DataPrice: "1.00"},
	})
	require.NoError(t, err)
	require.Len(t, a.Surface().Cart.Rows, 1)
	require.Empty(t, b.Surface().Cart.Rows)
}

func TestIdleSessionsExpire(t *testing.T) {
	r, now := newTestRegistry(time.Minute)
	id, _, _ := r.Open("")

	*now = now.Add(30 * time.Second)
	_, ok := r.Lookup(id)
	require.True(t, ok)

	*now = now.Add(2 * time.Minute)
	require.Equal(t, 1, r.Sweep())
	_, ok = r.Lookup(id)
	require.False(t, ok)
	require.Zero(t, r.Len())
}

func TestZeroTTLNeverExpires(t *testing.T) {
	r, now := newTestRegistry(0)
	id, _, _ := r.Open("")
	*now = now.Add(24 * time.Hour)
	require.Zero(t, r.Sweep())
	_, ok := r.Lookup(id)
	require.True(t, ok)
}

func TestRunStopsWithContext(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
