package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/StefanoAtzeni2001/adottaTO/internal/infrastructure/eventbus/port"
)

// ===================== Publisher =====================

// AsynqPublisher implements port.Publisher on github.com/hibiken/asynq with
// Redis as the backing store. Routing keys become task types; the binding
// table plays the role of a direct exchange: publishing enqueues one copy of
// the event per bound queue, so independent consumer groups each get their
// own delivery.
type AsynqPublisher struct {
	client   *asynq.Client
	bindings map[string][]string
}

// NewAsynqPublisherFromEnv constructs a publisher using the REDIS_URL env var.
func NewAsynqPublisherFromEnv(bindings map[string][]string) (*AsynqPublisher, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, errors.New("eventbus: REDIS_URL environment variable is not set")
	}
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("eventbus: parse REDIS_URL: %w", err)
	}
	return &AsynqPublisher{client: asynq.NewClient(opt), bindings: bindings}, nil
}

var _ port.Publisher = (*AsynqPublisher)(nil)

func (p *AsynqPublisher) Publish(ctx context.Context, e port.Event) error {
	if e.Key == "" {
		return errors.New("eventbus: event key is required")
	}
	queues := p.bindings[e.Key]
	if len(queues) == 0 {
		// No queue bound to this key: the event has no consumer and is dropped,
		// same as an unbound routing key on a direct exchange.
		return nil
	}
	t := asynq.NewTask(e.Key, e.Payload)
	for _, q := range queues {
		if _, err := p.client.EnqueueContext(ctx, t, asynq.Queue(q), asynq.MaxRetry(5)); err != nil {
			return fmt.Errorf("eventbus: enqueue %s to %s: %w", e.Key, q, err)
		}
	}
	return nil
}

func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// ===================== Server =====================

// AsynqServer implements port.Server, consuming a single durable queue.
// Concurrency is read from EVENTBUS_CONCURRENCY (default 10).
type AsynqServer struct {
	server *asynq.Server
	mux    *asynq.ServeMux
}

// NewAsynqServer constructs a consumer for the given queue using REDIS_URL.
func NewAsynqServer(queue string, log *slog.Logger) (*AsynqServer, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, errors.New("eventbus: REDIS_URL environment variable is not set")
	}
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("eventbus: parse REDIS_URL: %w", err)
	}

	concurrency := 10
	if v := strings.TrimSpace(os.Getenv("EVENTBUS_CONCURRENCY")); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			concurrency = i
		}
	}

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{queue: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Error("event handling failed", "key", task.Type(), "queue", queue, "error", err)
		}),
	})
	return &AsynqServer{server: srv, mux: asynq.NewServeMux()}, nil
}

var _ port.Server = (*AsynqServer)(nil)

func (s *AsynqServer) Register(key string, h port.Handler) {
	s.mux.HandleFunc(key, func(ctx context.Context, t *asynq.Task) error {
		return h(ctx, port.Event{Key: t.Type(), Payload: t.Payload()})
	})
}

// Run starts the consumer and blocks until the context is canceled.
func (s *AsynqServer) Run(ctx context.Context) error {
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	s.server.Shutdown()
	return nil
}

func (s *AsynqServer) Stop(ctx context.Context) error {
	_ = ctx // Shutdown takes no context in the current asynq version
	s.server.Shutdown()
	return nil
}
