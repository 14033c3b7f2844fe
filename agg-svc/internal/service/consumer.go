package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cahuala/ordersApi/agg-svc/internal/domain"
	"github.com/cahuala/ordersApi/logger"
)

// DefaultBackoff is the pause after a failed read before trying again.
const DefaultBackoff = 500 * time.Millisecond

type Consumer struct {
	Reader  MessageReader
	Store   StoreInterface
	Backoff time.Duration
	log     *logger.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, log *logger.Logger) *Consumer {
	return &Consumer{
		Reader:  reader,
		Store:   store,
		Backoff: DefaultBackoff,
		log:     log,
	}
}

func (c *Consumer) logger() *logger.Logger {
	if c.log == nil {
		c.log = logger.NewLogger("agg-svc")
	}
	return c.log
}

// Start reads events until ctx is cancelled or the reader is closed.
func (c *Consumer) Start(ctx context.Context) {
	c.logger().Info("consumer_start", "", "Starting Aggregation Service consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.logger().Info("consumer_stop", "", "Aggregation Service consumer stopped")
				return
			}
			c.logger().Error("read_message", "", "Error reading message", err,
				slog.Duration("backoff", c.Backoff))
			if !c.wait(ctx) {
				c.logger().Info("consumer_stop", "", "Aggregation Service consumer stopped")
				return
			}
			continue
		}
		c.HandleMessage(ctx, message)
	}
}

// wait sleeps for the backoff and reports false if ctx ended first.
func (c *Consumer) wait(ctx context.Context) bool {
	timer := time.NewTimer(c.Backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// HandleMessage decodes and applies one message. Failures are logged and the
// message is skipped.
func (c *Consumer) HandleMessage(ctx context.Context, message kafka.Message) {
	key := string(message.Key)
	var event domain.Event
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.logger().Error("decode_message", key, "Error unmarshaling message", err,
			slog.Int64("offset", message.Offset))
		return
	}
	if err := c.Process(ctx, event); err != nil {
		c.logger().Error("process_event", key, "Error processing event", err,
			slog.String("type", string(event.Type)))
		return
	}
	c.logger().Debug("process_event", key, "Processed event", slog.String("type", string(event.Type)))
}

func (c *Consumer) Process(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventOrderCreated, domain.EventOrderDeleted:
		sale, err := event.Sale()
		if err != nil {
			return err
		}
		return c.Store.ApplySale(ctx, sale)
	case domain.EventSessionClosed:
		bill, err := c.Store.SessionBill(ctx, event.TableSessionID)
		if err != nil {
			return fmt.Errorf("recompute bill: %w", err)
		}
		return c.Store.CloseBill(ctx, event.TableSessionID, bill)
	case domain.EventSessionOpened:
		return c.Store.ReopenBill(ctx, event.TableSessionID)
	default:
		return nil
	}
}
