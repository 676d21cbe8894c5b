package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace-indexer/internal/adapter"
	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
	"github.com/feral-file/ff-marketplace-indexer/internal/logger"
	"github.com/feral-file/ff-marketplace-indexer/internal/messaging"
	"github.com/feral-file/ff-marketplace-indexer/internal/metrics"
	"github.com/feral-file/ff-marketplace-indexer/internal/projection"
	"github.com/feral-file/ff-marketplace-indexer/internal/store"
)

const (
	defaultInterval     = 15 * time.Second
	defaultMaxBackoff   = 5 * time.Minute
	defaultFetchTimeout = 30 * time.Second
	defaultThreshold    = 3
)

// Config holds the configuration for the scheduler
type Config struct {
	ChainID                 domain.Chain
	StartBlock              uint64
	ConfirmationDepth       uint64
	BatchSize               int
	Interval                time.Duration
	FetchTimeout            time.Duration
	MaxBackoff              time.Duration
	MalformedAlertThreshold int
}

// CycleResult describes one reconciliation cycle
type CycleResult struct {
	CycleID   string          `json:"cycle_id"`
	From      domain.Position `json:"from"`
	To        domain.Position `json:"to"`
	Fetched   int             `json:"fetched"`
	Applied   int             `json:"applied"`
	Skipped   int             `json:"skipped"`
	Reorg     bool            `json:"reorg"`
	CaughtUp  bool            `json:"caught_up"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration"`
}

// Status is a point in time view of the sync progress
type Status struct {
	Chain           domain.Chain  `json:"chain"`
	Cursor          domain.Cursor `json:"cursor"`
	ConfirmedHeight uint64        `json:"confirmed_height"`
	Lag             uint64        `json:"lag"`
	Running         bool          `json:"running"`
	LastCycle       *CycleResult  `json:"last_cycle,omitempty"`
	LastError       string        `json:"last_error,omitempty"`
}

// Scheduler keeps the read models in step with the chain
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Run starts cycles on the interval and on trigger signals until ctx is cancelled
	Run(ctx context.Context) error

	// RunCycle runs one reconciliation cycle. It returns domain.ErrCycleInProgress
	// without doing anything when another cycle or a resync holds the guard.
	RunCycle(ctx context.Context) (CycleResult, error)

	// Resync rebuilds the read models from the journal up to fromBlock-1 and
	// moves the cursor there, so the next cycle re-reads the chain from fromBlock
	Resync(ctx context.Context, fromBlock uint64) (domain.Cursor, error)

	// Status returns the cursor, confirmed height and last cycle
	Status(ctx context.Context) (Status, error)
}

type scheduler struct {
	config    Config
	source    EventSource
	projector projection.Projector
	cursors   store.CursorStore
	triggers  []messaging.Trigger
	clock     adapter.Clock

	// guard admits one cycle or resync at a time
	guard chan struct{}
	nudge chan struct{}

	mu sync.Mutex
	// running is set while the guard is held
	running        bool
	lastCycle      *CycleResult
	lastError      error
	malformedCount int
}

// NewScheduler creates a new scheduler. Every trigger is listened to while Run is active.
func NewScheduler(
	source EventSource,
	projector projection.Projector,
	cursors store.CursorStore,
	triggers []messaging.Trigger,
	cfg Config,
	clock adapter.Clock,
) Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaultMaxBackoff
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if cfg.MalformedAlertThreshold <= 0 {
		cfg.MalformedAlertThreshold = defaultThreshold
	}

	return &scheduler{
		config:    cfg,
		source:    source,
		projector: projector,
		cursors:   cursors,
		triggers:  triggers,
		clock:     clock,
		guard:     make(chan struct{}, 1),
		nudge:     make(chan struct{}, 1),
	}
}

func (s *scheduler) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting reconciliation scheduler",
		zap.String("chainID", string(s.config.ChainID)),
		zap.Uint64("startBlock", s.config.StartBlock),
		zap.Duration("interval", s.config.Interval),
		zap.Int("batchSize", s.config.BatchSize))

	var wg sync.WaitGroup
	for _, t := range s.triggers {
		wg.Add(1)
		go func(t messaging.Trigger) {
			defer wg.Done()
			s.listen(ctx, t)
		}(t)
	}
	defer wg.Wait()

	failures := backoff.NewExponentialBackOff()
	failures.InitialInterval = s.config.Interval
	failures.MaxInterval = s.config.MaxBackoff
	failures.MaxElapsedTime = 0

	var wait time.Duration
	nudge := s.nudge
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Stopping reconciliation scheduler")
			return nil
		case <-s.clock.After(wait):
		case <-nudge:
		}

		result, err := s.RunCycle(ctx)
		switch {
		case err == nil:
			failures.Reset()
			nudge = s.nudge
			wait = s.config.Interval
			if !result.CaughtUp {
				wait = 0
			}
		case errors.Is(err, domain.ErrCycleInProgress):
			wait = s.config.Interval
		case ctx.Err() != nil:
			logger.InfoCtx(ctx, "Stopping reconciliation scheduler")
			return nil
		default:
			// Pushes do not shortcut the backoff after a failure
			nudge = nil
			wait = failures.NextBackOff()
			logger.WarnCtx(ctx, "Reconciliation cycle failed, backing off",
				zap.Duration("retryIn", wait),
				zap.Error(err))
		}
	}
}

// listen relays trigger signals into the nudge channel, reconnecting with backoff
func (s *scheduler) listen(ctx context.Context, t messaging.Trigger) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = s.config.MaxBackoff
	b.MaxElapsedTime = 0

	_ = backoff.RetryNotify(func() error {
		err := t.Listen(ctx, s.Nudge)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err == nil {
			err = errors.New("trigger stopped")
		}
		return err
	}, backoff.WithContext(b, ctx), func(err error, d time.Duration) {
		logger.WarnCtx(ctx, "Sync trigger failed, reconnecting", zap.Duration("retryIn", d), zap.Error(err))
	})
}

// Nudge requests a cycle ahead of the interval. Requests are coalesced.
func (s *scheduler) Nudge(reason string) {
	select {
	case s.nudge <- struct{}{}:
		logger.Debug("Sync nudged", zap.String("reason", reason))
	default:
	}
}

func (s *scheduler) setRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

func (s *scheduler) tryAcquire() bool {
	select {
	case s.guard <- struct{}{}:
		s.setRunning(true)
		return true
	default:
		return false
	}
}

func (s *scheduler) acquire(ctx context.Context) error {
	select {
	case s.guard <- struct{}{}:
		s.setRunning(true)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *scheduler) release() {
	s.setRunning(false)
	<-s.guard
}

func (s *scheduler) RunCycle(ctx context.Context) (CycleResult, error) {
	if !s.tryAcquire() {
		return CycleResult{}, domain.ErrCycleInProgress
	}
	defer s.release()

	result := CycleResult{
		CycleID:   ulid.MustNewDefault(s.clock.Now()).String(),
		StartedAt: s.clock.Now(),
	}

	err := s.runCycle(ctx, &result)
	result.Duration = s.clock.Since(result.StartedAt)

	metrics.CycleDuration.Observe(result.Duration.Seconds())
	metrics.CyclesTotal.WithLabelValues(outcome(result, err)).Inc()
	if !result.To.IsZero() {
		metrics.CursorBlock.Set(float64(result.To.Block))
	}

	s.mu.Lock()
	s.lastCycle = &result
	s.lastError = err
	s.mu.Unlock()

	return result, err
}

func (s *scheduler) runCycle(ctx context.Context, result *CycleResult) error {
	cycleLog := []zap.Field{zap.String("cycleID", result.CycleID)}

	cursor, err := s.currentCursor(ctx)
	if err != nil {
		return err
	}
	result.From = cursor.Position
	result.To = cursor.Position

	confirmed, err := s.confirmedHeight(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Event source unavailable", append(cycleLog, zap.Error(err))...)
		return err
	}
	metrics.ConfirmedHeight.Set(float64(confirmed))

	batch, err := s.fetch(ctx, cursor)
	var reorg *domain.ReorgError
	if errors.As(err, &reorg) {
		result.Reorg = true
		cursor, err = s.rollback(ctx, cursor, reorg)
		if err != nil {
			return err
		}
		result.To = cursor.Position
		batch, err = s.fetch(ctx, cursor)
	}
	if err != nil {
		if errors.Is(err, domain.ErrAdapterUnavailable) {
			logger.WarnCtx(ctx, "Event source unavailable", append(cycleLog, zap.Error(err))...)
		}
		return err
	}

	result.Fetched = len(batch.Events)
	metrics.BatchSize.Observe(float64(len(batch.Events)))

	// Applying and persisting the cursor ignore cancellation so shutdown waits
	// for the event in flight instead of abandoning it
	applyCtx := context.WithoutCancel(ctx)

	last := cursor
	var applyErr error
	stopped := false
	for _, ev := range batch.Events {
		if ctx.Err() != nil {
			stopped = true
			break
		}

		err := s.projector.Apply(applyCtx, ev)
		if err != nil && !errors.Is(err, domain.ErrUnknownEventKind) {
			applyErr = err
			break
		}

		if err != nil {
			result.Skipped++
			metrics.EventsSkippedTotal.WithLabelValues(string(ev.Kind)).Inc()
			logger.WarnCtx(ctx, "Skipping event of unknown kind",
				append(cycleLog,
					zap.String("kind", string(ev.Kind)),
					zap.Stringer("position", ev.Position),
					zap.String("txHash", ev.TxHash))...)
		} else {
			result.Applied++
			metrics.EventsAppliedTotal.WithLabelValues(string(ev.Kind)).Inc()
		}
		last = domain.Cursor{Position: ev.Position, BlockHash: ev.BlockHash}
	}

	next := last
	if applyErr == nil && !stopped && !batch.Checkpoint.Less(last.Position) {
		next = domain.Cursor{Position: batch.Checkpoint, BlockHash: batch.CheckpointHash}
	}

	if next.Position != cursor.Position || next.BlockHash != cursor.BlockHash {
		next.UpdatedAt = s.clock.Now()
		if err := s.cursors.SetCursor(applyCtx, s.config.ChainID, next); err != nil {
			err = fmt.Errorf("%w: %w", domain.ErrCursorWriteFailed, err)
			metrics.AlertsTotal.WithLabelValues(metrics.AlertCursorWriteFailed).Inc()
			logger.AlertCtx(ctx, metrics.AlertCursorWriteFailed, err,
				append(cycleLog, zap.Stringer("position", next.Position))...)
			return err
		}
		result.To = next.Position
	}

	if applyErr != nil {
		return s.abortBatch(ctx, result, applyErr)
	}

	s.mu.Lock()
	s.malformedCount = 0
	s.mu.Unlock()

	result.CaughtUp = !stopped && next.Position.Block >= confirmed && len(batch.Events) < s.config.BatchSize

	logger.InfoCtx(ctx, "Reconciliation cycle completed",
		append(cycleLog,
			zap.Stringer("from", result.From),
			zap.Stringer("to", result.To),
			zap.Int("applied", result.Applied),
			zap.Int("skipped", result.Skipped),
			zap.Bool("reorg", result.Reorg),
			zap.Bool("caughtUp", result.CaughtUp))...)

	if stopped {
		return ctx.Err()
	}
	return nil
}

// abortBatch reports the event that stopped the batch. Consecutive malformed
// batches raise an alert once the threshold is reached.
func (s *scheduler) abortBatch(ctx context.Context, result *CycleResult, err error) error {
	fields := []zap.Field{
		zap.String("cycleID", result.CycleID),
		zap.Stringer("cursor", result.To),
		zap.Int("applied", result.Applied),
	}

	if !errors.Is(err, domain.ErrMalformedEvent) {
		logger.ErrorCtx(ctx, fmt.Errorf("batch aborted: %w", err), fields...)
		return err
	}

	s.mu.Lock()
	s.malformedCount++
	count := s.malformedCount
	s.mu.Unlock()

	fields = append(fields, zap.Int("consecutive", count))
	if count >= s.config.MalformedAlertThreshold {
		metrics.AlertsTotal.WithLabelValues(metrics.AlertMalformedEvent).Inc()
		logger.AlertCtx(ctx, metrics.AlertMalformedEvent, err, fields...)
	} else {
		logger.WarnCtx(ctx, "Batch aborted on malformed event", append(fields, zap.Error(err))...)
	}

	return err
}

func (s *scheduler) currentCursor(ctx context.Context) (domain.Cursor, error) {
	cursor, err := s.cursors.GetCursor(ctx, s.config.ChainID)
	if err != nil {
		return domain.Cursor{}, err
	}
	if cursor == nil {
		return domain.InitialCursor(s.config.StartBlock), nil
	}
	return *cursor, nil
}

// withTimeout runs fn with the fetch timeout. A timeout counts as the source
// being unreachable; cancellation of ctx itself is returned as is.
func withTimeout[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := fn(fetchCtx)
	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, domain.ErrAdapterUnavailable) {
		err = fmt.Errorf("%w: %w", domain.ErrAdapterUnavailable, err)
	}
	return v, err
}

func (s *scheduler) confirmedHeight(ctx context.Context) (uint64, error) {
	return withTimeout(ctx, s.config.FetchTimeout, s.source.CurrentConfirmedHeight)
}

func (s *scheduler) fetch(ctx context.Context, cursor domain.Cursor) (domain.Batch, error) {
	return withTimeout(ctx, s.config.FetchTimeout, func(ctx context.Context) (domain.Batch, error) {
		return s.source.FetchEventsAfter(ctx, cursor, s.config.BatchSize)
	})
}

// rollback moves the cursor back past the reorganized blocks and rebuilds the
// read models from the journal that remains
func (s *scheduler) rollback(ctx context.Context, cursor domain.Cursor, reorg *domain.ReorgError) (domain.Cursor, error) {
	depth := max(reorg.Depth, s.config.ConfirmationDepth, 1)

	target := domain.InitialCursor(s.config.StartBlock)
	if cursor.Position.Block >= depth && cursor.Position.Block-depth >= s.config.StartBlock {
		number := cursor.Position.Block - depth
		hash, err := withTimeout(ctx, s.config.FetchTimeout, func(ctx context.Context) (string, error) {
			return s.source.BlockHash(ctx, number)
		})
		if err != nil {
			return cursor, err
		}
		target = domain.Cursor{Position: domain.EndOfBlock(number), BlockHash: hash}
	}
	target.UpdatedAt = s.clock.Now()

	logger.WarnCtx(ctx, "Chain reorganization detected, rolling back",
		zap.Uint64("reorgBlock", reorg.Block),
		zap.Uint64("reorgDepth", reorg.Depth),
		zap.String("storedHash", reorg.StoredHash),
		zap.String("canonicalHash", reorg.CanonicalHash),
		zap.Stringer("from", cursor.Position),
		zap.Stringer("to", target.Position))

	if err := s.projector.Rebuild(context.WithoutCancel(ctx), s.config.ChainID, target.Position.Block, target); err != nil {
		return cursor, err
	}
	metrics.ReorgsTotal.Inc()

	return target, nil
}

func (s *scheduler) Resync(ctx context.Context, fromBlock uint64) (domain.Cursor, error) {
	if fromBlock < s.config.StartBlock {
		return domain.Cursor{}, fmt.Errorf("%w: block %d is before the start block %d",
			domain.ErrInvalidResyncPosition, fromBlock, s.config.StartBlock)
	}

	if err := s.acquire(ctx); err != nil {
		return domain.Cursor{}, err
	}
	defer s.release()

	current, err := s.currentCursor(ctx)
	if err != nil {
		return domain.Cursor{}, err
	}
	if fromBlock > current.Position.NextBlock() {
		return domain.Cursor{}, fmt.Errorf("%w: block %d is ahead of the cursor %s",
			domain.ErrInvalidResyncPosition, fromBlock, current.Position)
	}

	target := domain.InitialCursor(fromBlock)
	if fromBlock > 0 {
		hash, err := withTimeout(ctx, s.config.FetchTimeout, func(ctx context.Context) (string, error) {
			return s.source.BlockHash(ctx, fromBlock-1)
		})
		if err != nil {
			return domain.Cursor{}, err
		}
		target.BlockHash = hash
	}
	target.UpdatedAt = s.clock.Now()

	logger.InfoCtx(ctx, "Resyncing",
		zap.Stringer("from", current.Position),
		zap.Stringer("to", target.Position))

	if err := s.projector.Rebuild(context.WithoutCancel(ctx), s.config.ChainID, target.Position.Block, target); err != nil {
		return domain.Cursor{}, err
	}
	metrics.CursorBlock.Set(float64(target.Position.Block))

	return target, nil
}

func (s *scheduler) Status(ctx context.Context) (Status, error) {
	cursor, err := s.currentCursor(ctx)
	if err != nil {
		return Status{}, err
	}

	status := Status{
		Chain:  s.config.ChainID,
		Cursor: cursor,
	}

	confirmed, err := s.confirmedHeight(ctx)
	if err == nil {
		status.ConfirmedHeight = confirmed
		if confirmed > cursor.Position.Block {
			status.Lag = confirmed - cursor.Position.Block
		}
	} else {
		logger.WarnCtx(ctx, "Failed to get confirmed height", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	status.Running = s.running
	if s.lastCycle != nil {
		last := *s.lastCycle
		status.LastCycle = &last
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status, nil
}

func outcome(result CycleResult, err error) string {
	switch {
	case errors.Is(err, domain.ErrCursorWriteFailed):
		return metrics.OutcomeCursorWrite
	case errors.Is(err, domain.ErrMalformedEvent):
		return metrics.OutcomeMalformed
	case errors.Is(err, domain.ErrAdapterUnavailable):
		return metrics.OutcomeUnavailable
	case err != nil:
		return metrics.OutcomeFailed
	case result.Reorg:
		return metrics.OutcomeReorg
	case result.Fetched == 0:
		return metrics.OutcomeIdle
	default:
		return metrics.OutcomeApplied
	}
}
