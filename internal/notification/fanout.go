package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"freight-match/internal/logger"
)

const (
	defaultWorkerCount = 4
	defaultQueueSize   = 64
)

// Target is one driver to notify about a freight job.
type Target struct {
	UserID      uuid.UUID
	DeviceToken string
}

// Message is the payload delivered to every target of one fan-out.
type Message struct {
	JobID uuid.UUID
	Title string
	Body  string
	Data  map[string]string
}

// Result captures the outcome of a single delivery attempt.
type Result struct {
	Target    Target
	Err       error
	Permanent bool
}

// TokenPruner removes a dead device token so future fan-outs skip it.
type TokenPruner interface {
	ClearDeviceToken(ctx context.Context, userID uuid.UUID) error
}

// Fanout delivers one message to many device tokens with bounded parallelism.
// Delivery attempts are independent: failures never propagate to the caller,
// and permanent token failures trigger pruning.
type Fanout struct {
	dispatcher  Dispatcher
	pruner      TokenPruner
	workerCount int
	queueSize   int
}

func NewFanout(dispatcher Dispatcher, pruner TokenPruner, workerCount, queueSize int) *Fanout {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Fanout{
		dispatcher:  dispatcher,
		pruner:      pruner,
		workerCount: workerCount,
		queueSize:   queueSize,
	}
}

// Deliver sends msg to every target and blocks until all attempts finish.
// It returns the per-target results for the caller to log or record.
func (f *Fanout) Deliver(ctx context.Context, msg Message, targets []Target) []Result {
	if len(targets) == 0 {
		return nil
	}

	jobs := make(chan Target, f.queueSize)
	results := make(chan Result, len(targets))

	var wg sync.WaitGroup
	for i := 0; i < f.workerCount; i++ {
		wg.Add(1)
		go f.worker(ctx, msg, jobs, results, &wg)
	}

	for _, target := range targets {
		jobs <- target
	}
	close(jobs)

	wg.Wait()
	close(results)

	collected := make([]Result, 0, len(targets))
	delivered := 0
	pruned := 0
	for result := range results {
		collected = append(collected, result)
		if result.Err == nil {
			delivered++
		}
		if result.Permanent {
			pruned++
		}
	}

	logger.Info("Notification fan-out finished",
		zap.String("job_id", msg.JobID.String()),
		zap.Int("targets", len(targets)),
		zap.Int("delivered", delivered),
		zap.Int("tokens_pruned", pruned),
		zap.String("event", "notification_fanout_finished"),
	)

	return collected
}

func (f *Fanout) worker(ctx context.Context, msg Message, jobs <-chan Target, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()

	for target := range jobs {
		err := f.dispatcher.Send(ctx, target.DeviceToken, msg.Title, msg.Body, msg.Data)
		result := Result{Target: target, Err: err}

		if err != nil && PermanentFailure(err) {
			result.Permanent = true
			if pruneErr := f.pruner.ClearDeviceToken(ctx, target.UserID); pruneErr != nil {
				logger.Warn("Failed to prune dead device token",
					zap.String("user_id", target.UserID.String()),
					zap.Error(pruneErr),
				)
			} else {
				logger.Info("Pruned dead device token",
					zap.String("user_id", target.UserID.String()),
					zap.String("event", "device_token_pruned"),
				)
			}
		} else if err != nil {
			logger.Warn("Push delivery failed",
				zap.String("user_id", target.UserID.String()),
				zap.String("job_id", msg.JobID.String()),
				zap.Error(err),
			)
		}

		results <- result
	}
}
