package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/userdept/admin-system/internal/api/metrics"
	"github.com/userdept/admin-system/internal/core/domain"
	"github.com/userdept/admin-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the actor, guaranteeing per-actor ordering of the trail.
type Dispatcher struct {
	workers []chan domain.AuditEntry
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an entry to the worker responsible for its actor. The call
// is non-blocking up to channelBuffer capacity; a full channel drops the
// entry with a warning rather than stalling the mutation that produced it.
func (d *Dispatcher) Enqueue(entry domain.AuditEntry) {
	idx := d.shardIndex(entry.Actor)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().
			Str("actor", entry.Actor).
			Str("entity", entry.Entity).
			Msg("audit queue full, entry dropped")
		metrics.AuditErrorsTotal.WithLabelValues("queue_full").Inc()
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (d *Dispatcher) shardIndex(actor string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actor))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	gauge := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))
			if err := d.service.Process(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("actor", entry.Actor).
					Int("worker_id", id).
					Msg("audit entry processing failed")
			}
		}
	}
}
