package hermes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type Client interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close()
}

// NATSClient publishes JSON events into the READINESS_EVENTS JetStream stream.
type NATSClient struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	logger *slog.Logger
}

func NewNATSClient(ctx context.Context, url string, logger *slog.Logger) (*NATSClient, error) {
	nc, err := nats.Connect(url,
		nats.Name("readiness"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}

	c := &NATSClient{conn: nc, js: js, logger: logger}
	if err := c.ensureStream(ctx); err != nil {
		logger.Warn("failed to ensure stream", "error", err)
	}
	return c, nil
}

func (c *NATSClient) ensureStream(ctx context.Context) error {
	maxAge, _ := time.ParseDuration(StreamMaxAge)
	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{"readiness.>"},
		MaxAge:   maxAge,
	})
	return err
}

// Publish marshals data to JSON and waits for the stream to acknowledge it.
func (c *NATSClient) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if _, err := c.js.Publish(ctx, subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

func (c *NATSClient) Close() {
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
	}
}

// Notifier emits assessment events on a best-effort basis: failures are
// logged, never returned. A Notifier with a nil client does nothing.
type Notifier struct {
	client Client
	logger *slog.Logger
}

func NewNotifier(client Client, logger *slog.Logger) *Notifier {
	return &Notifier{client: client, logger: logger}
}

func (n *Notifier) AssessmentCompleted(ctx context.Context, ev AssessmentCompletedEvent) {
	n.publish(ctx, SubjectAssessmentCompleted(ev.AssessmentID), ev)
}

func (n *Notifier) AssessmentRejected(ctx context.Context, ev AssessmentRejectedEvent) {
	n.publish(ctx, SubjectAssessmentRejected(), ev)
}

func (n *Notifier) publish(ctx context.Context, subject string, ev interface{}) {
	if n == nil || n.client == nil {
		return
	}
	if err := n.client.Publish(ctx, subject, ev); err != nil {
		n.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
