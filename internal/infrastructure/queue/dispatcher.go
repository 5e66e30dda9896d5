package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/glowmart/shop-api/internal/api/metrics"
	"github.com/glowmart/shop-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes outbound emails to a fixed set of workers using
// consistent hashing on the recipient address, so messages to the same
// recipient are delivered in the order they were enqueued (a confirmation
// code never overtakes a later reset link).
type Dispatcher struct {
	workers []chan ports.EmailJob
	sender  ports.EmailSender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender ports.EmailSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.EmailJob, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.EmailJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.EmailJob) {
	d.workers[d.shardIndex(job.To)] <- job
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.EmailJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(ctx, job); err != nil {
				metrics.EmailsSentTotal.WithLabelValues(string(job.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("kind", string(job.Kind)).
					Str("to", job.To).
					Int("worker_id", id).
					Msg("email delivery failed")
				continue
			}
			metrics.EmailsSentTotal.WithLabelValues(string(job.Kind), "sent").Inc()
		}
	}
}
