package listview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_appliesLatest(t *testing.T) {
	var l Loader[int]
	applied := make(chan []int, 1)

	done := l.Load(context.Background(),
		func(context.Context) ([]int, error) { return []int{1, 2, 3}, nil },
		func(records []int, err error) {
			require.NoError(t, err)
			applied <- records
		},
	)
	<-done

	select {
	case records := <-applied:
		assert.Equal(t, []int{1, 2, 3}, records)
	default:
		t.Fatal("completion was not applied")
	}
}

func TestLoader_discardsStale(t *testing.T) {
	var l Loader[string]

	release := make(chan struct{})
	var staleApplied bool

	// the slow fetch is issued first...
	slowDone := l.Load(context.Background(),
		func(context.Context) ([]string, error) {
			<-release
			return []string{"old"}, nil
		},
		func([]string, error) { staleApplied = true },
	)

	// ...then a newer fetch completes immediately
	var latest []string
	fastDone := l.Load(context.Background(),
		func(context.Context) ([]string, error) { return []string{"new"}, nil },
		func(records []string, err error) { latest = records },
	)
	<-fastDone

	// now let the older fetch finish: its completion must be discarded
	close(release)
	<-slowDone

	assert.False(t, staleApplied, "stale completion was applied")
	assert.Equal(t, []string{"new"}, latest)
}

func TestLoader_generations(t *testing.T) {
	var l Loader[int]

	g1 := l.Begin()
	g2 := l.Begin()
	assert.False(t, l.Latest(g1))
	assert.True(t, l.Latest(g2))

	g3 := l.Begin()
	assert.False(t, l.Latest(g2))
	assert.True(t, l.Latest(g3))
}

func TestLoader_doneClosesOnError(t *testing.T) {
	var l Loader[int]
	errApplied := make(chan error, 1)

	done := l.Load(context.Background(),
		func(context.Context) ([]int, error) { return nil, context.DeadlineExceeded },
		func(_ []int, err error) { errApplied <- err },
	)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done channel never closed")
	}
	assert.Equal(t, context.DeadlineExceeded, <-errApplied)
}
