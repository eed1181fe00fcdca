package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/domain"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Publisher broadcasts asset lifecycle events over JetStream.
type Publisher struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	config config.EventsConfig
	logger *slog.Logger
}

// NewPublisher connects to NATS and makes sure the stream exists.
func NewPublisher(ctx context.Context, cfg config.EventsConfig, logger *slog.Logger) (*Publisher, error) {

	opts := []nats.Option{
		nats.Name("movie-api-publisher"),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.NATSURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to JetStream: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.SubjectBase + ".>"},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream: %w", err)
	}

	return &Publisher{
		conn:   conn,
		js:     js,
		config: cfg,
		logger: logger,
	}, nil
}

// Publish sends one event on "<subjectBase>.<eventType>". Callers treat
// failures as best-effort; this only reports them.
func (p *Publisher) Publish(ctx context.Context, event domain.AssetEvent) error {

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal asset event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s", p.config.SubjectBase, event.Type)
	if _, err := p.js.Publish(ctx, subject, payload); err != nil {
		return fmt.Errorf("failed to publish asset event: %w", err)
	}
	return nil
}

// Close drains the underlying connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}
