package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freight-match/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	m.Run()
}

type stubDispatcher struct {
	mu       sync.Mutex
	sent     []string
	failWith map[string]error
}

func (d *stubDispatcher) Send(_ context.Context, deviceToken, _, _ string, _ map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err, ok := d.failWith[deviceToken]; ok {
		return err
	}
	d.sent = append(d.sent, deviceToken)
	return nil
}

type stubPruner struct {
	mu      sync.Mutex
	cleared []uuid.UUID
}

func (p *stubPruner) ClearDeviceToken(_ context.Context, userID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cleared = append(p.cleared, userID)
	return nil
}

func targetsWithTokens(tokens ...string) []Target {
	targets := make([]Target, len(tokens))
	for i, token := range tokens {
		targets[i] = Target{UserID: uuid.New(), DeviceToken: token}
	}
	return targets
}

func TestDeliver_AllTargets(t *testing.T) {
	dispatcher := &stubDispatcher{}
	pruner := &stubPruner{}
	fanout := NewFanout(dispatcher, pruner, 4, 16)

	targets := targetsWithTokens("a", "b", "c", "d", "e")
	results := fanout.Deliver(context.Background(), Message{JobID: uuid.New()}, targets)

	require.Len(t, results, len(targets))
	for _, result := range results {
		assert.NoError(t, result.Err)
	}
	assert.Len(t, dispatcher.sent, len(targets))
	assert.Empty(t, pruner.cleared)
}

func TestDeliver_PrunesDeadTokens(t *testing.T) {
	dispatcher := &stubDispatcher{
		failWith: map[string]error{
			"dead": &SendError{Permanent: true, Reason: "device not registered"},
		},
	}
	pruner := &stubPruner{}
	fanout := NewFanout(dispatcher, pruner, 2, 8)

	targets := targetsWithTokens("live", "dead")
	results := fanout.Deliver(context.Background(), Message{JobID: uuid.New()}, targets)

	require.Len(t, results, 2)

	pruned := 0
	for _, result := range results {
		if result.Permanent {
			pruned++
			assert.Equal(t, "dead", result.Target.DeviceToken)
		}
	}
	assert.Equal(t, 1, pruned)

	require.Len(t, pruner.cleared, 1)
}

func TestDeliver_TransientFailureNotPruned(t *testing.T) {
	dispatcher := &stubDispatcher{
		failWith: map[string]error{
			"flaky": &SendError{Permanent: false, Reason: "provider timeout"},
		},
	}
	pruner := &stubPruner{}
	fanout := NewFanout(dispatcher, pruner, 2, 8)

	results := fanout.Deliver(context.Background(), Message{JobID: uuid.New()}, targetsWithTokens("flaky"))

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.False(t, results[0].Permanent)
	assert.Empty(t, pruner.cleared)
}

func TestDeliver_NoTargets(t *testing.T) {
	fanout := NewFanout(&stubDispatcher{}, &stubPruner{}, 0, 0)

	results := fanout.Deliver(context.Background(), Message{JobID: uuid.New()}, nil)
	assert.Nil(t, results)
}

func TestPermanentFailure(t *testing.T) {
	assert.True(t, PermanentFailure(&SendError{Permanent: true}))
	assert.False(t, PermanentFailure(&SendError{Permanent: false}))
	assert.False(t, PermanentFailure(context.Canceled))
	assert.False(t, PermanentFailure(nil))
}
