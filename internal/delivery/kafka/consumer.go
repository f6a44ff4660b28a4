package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"vendorflow/internal/metrics"
	"vendorflow/internal/service"
)

type Config struct {
	Brokers     []string
	GroupID     string
	Topic       string
	DLQ         string
	MaxRetries  int
	BaseBackoff time.Duration
}

// DesignerHandler consumes one catalog feed document.
type DesignerHandler interface {
	HandleDesignerMessage(ctx context.Context, payload []byte) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	reader messageReader
	dlq    messageWriter
	cfg    Config
	h      DesignerHandler
}

func NewConsumer(cfg Config, h DesignerHandler) *Consumer {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 200 * time.Millisecond
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		MaxWait:        100 * time.Millisecond,
		CommitInterval: 0,
	})

	c := &Consumer{reader: r, cfg: cfg, h: h}
	if cfg.DLQ != "" {
		c.dlq = &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.DLQ,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
		}
	}
	return c
}

// Subscribe reads the catalog topic until ctx is done. Every message is
// committed once it was handled or parked in the DLQ.
func (c *Consumer) Subscribe(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			logrus.WithError(err).Warn("kafka fetch error")
			if !sleep(ctx, 300*time.Millisecond) {
				return nil
			}
			continue
		}

		log := logrus.WithFields(logrus.Fields{"topic": m.Topic, "partition": m.Partition, "offset": m.Offset})
		log.Debug("catalog message fetched")

		if err := c.process(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Error("catalog message not committed")
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.WithError(err).Error("commit failed")
		}
	}
}

// process handles a message with retries. A message that keeps failing, or
// fails with a decode/validation error, goes to the DLQ. A non-nil return
// means the message must not be committed.
func (c *Consumer) process(ctx context.Context, m kafka.Message) error {
	var last error
	attempts := 0
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		attempts++
		last = c.h.HandleDesignerMessage(ctx, m.Value)
		if last == nil {
			metrics.CatalogMessageCounter.WithLabelValues("loaded").Inc()
			return nil
		}
		if isNonRetryable(last) {
			break
		}
		if attempt < c.cfg.MaxRetries && !sleep(ctx, backoff(attempt+1, c.cfg.BaseBackoff)) {
			return ctx.Err()
		}
	}

	if c.dlq == nil {
		metrics.CatalogMessageCounter.WithLabelValues("dropped").Inc()
		logrus.WithError(last).WithField("offset", m.Offset).Warn("DLQ disabled, drop message")
		return nil
	}

	headers := append([]kafka.Header{}, m.Headers...)
	headers = append(headers,
		kafka.Header{Key: "x-dlq-reason", Value: []byte(trimErr(last))},
		kafka.Header{Key: "x-dlq-attempts", Value: []byte(strconv.Itoa(attempts))},
		kafka.Header{Key: "x-dlq-ts", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		kafka.Header{Key: "x-dlq-source-topic", Value: []byte(c.cfg.Topic)},
		kafka.Header{Key: "x-dlq-group", Value: []byte(c.cfg.GroupID)},
	)
	if err := c.dlq.WriteMessages(ctx, kafka.Message{Key: m.Key, Value: m.Value, Headers: headers}); err != nil {
		return err
	}
	metrics.CatalogMessageCounter.WithLabelValues("dlq").Inc()
	logrus.WithError(last).WithField("offset", m.Offset).Warn("catalog message moved to DLQ")
	return nil
}

func (c *Consumer) Close() error {
	var first error
	if c.reader != nil {
		if err := c.reader.Close(); err != nil {
			first = err
		}
	}
	if c.dlq != nil {
		if err := c.dlq.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func backoff(n int, base time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	d := base * (1 << (n - 1))
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}

func trimErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if len(s) > 1000 {
		return s[:1000]
	}
	return s
}

func isNonRetryable(err error) bool {
	return errors.Is(err, service.ErrDecode) || errors.Is(err, service.ErrValidation)
}
