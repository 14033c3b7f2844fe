package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cahuala/ordersApi/logger"
	"github.com/cahuala/ordersApi/pos-svc/internal/domain"
)

// publishTimeout bounds how long a request waits on the broker.
const publishTimeout = 2 * time.Second

// eventSink publishes after the store has committed. A failed publish is
// logged and never reaches the caller. A nil publisher disables events.
type eventSink struct {
	publisher EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

func newEventSink(publisher EventPublisher, log *logger.Logger) eventSink {
	if log == nil {
		log = logger.NewLogger("pos-svc")
	}
	return eventSink{publisher: publisher, log: log, now: time.Now}
}

func (e eventSink) order(ctx context.Context, eventType domain.EventType, order *domain.Order) {
	e.emit(ctx, domain.OrderEvent(eventType, order, e.now().UTC()))
}

func (e eventSink) session(ctx context.Context, eventType domain.EventType, session *domain.TableSession) {
	e.emit(ctx, domain.SessionEvent(eventType, session, e.now().UTC()))
}

func (e eventSink) emit(ctx context.Context, event domain.Event) {
	if e.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.log.Error("publish_event", logger.RequestID(ctx), "event not published", err,
			slog.String("type", string(event.Type)),
			slog.String("table_session_id", event.TableSessionID.String()),
		)
	}
}
