package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/entity"
	domainerrors "aiclub/internal/domain/errors"
	"aiclub/internal/usecase"

	"github.com/gin-contrib/sse"
	"github.com/labstack/echo/v4"
)

// SSE event names written by streamCollection
const (
	eventSnapshot  = "snapshot"
	eventError     = "error"
	eventHeartbeat = "heartbeat"
)

// streamCollection writes every snapshot of collection as a server-sent event
// until the client goes away or the subscription fails.
func streamCollection(c echo.Context, live usecase.LiveUsecase, collection entity.Collection, order *entity.Order, heartbeat time.Duration, logger *slog.Logger) error {
	ctx := c.Request().Context()
	sub, err := live.Subscribe(ctx, collection, order)
	if err != nil {
		return err
	}
	defer sub.Close()

	logger = deliverycontext.GetLoggerOrDefault(ctx, logger)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, sse.ContentType)
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	var seq int
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := writeEvent(res, sse.Event{Event: eventHeartbeat, Data: time.Now().UTC().Format(time.RFC3339)}); err != nil {
				return nil
			}
		case err, ok := <-sub.Errors:
			if ok && err != nil {
				logger.Warn("Live stream ended by store error", slog.String("collection", string(collection)), slog.Any("error", err))
				_ = writeEvent(res, sse.Event{Event: eventError, Data: subscriptionFailure()})
			}

			return nil
		case docs, ok := <-sub.Snapshots:
			if !ok {
				if err, ok := <-sub.Errors; ok && err != nil {
					_ = writeEvent(res, sse.Event{Event: eventError, Data: subscriptionFailure()})
				}

				return nil
			}
			seq++
			if docs == nil {
				docs = []entity.Document{}
			}
			if err := writeEvent(res, sse.Event{Event: eventSnapshot, Id: strconv.Itoa(seq), Data: docs}); err != nil {
				logger.Debug("Live stream client gone", slog.Any("error", err))

				return nil
			}
		}
	}
}

func writeEvent(res *echo.Response, event sse.Event) error {
	if err := sse.Encode(res, event); err != nil {
		return err
	}
	res.Flush()

	return nil
}

// subscriptionFailure is the payload of an error event. Store details stay in the logs.
func subscriptionFailure() map[string]string {
	return map[string]string{
		"code":    domainerrors.ErrSubscriptionFailed.ErrorCode(),
		"message": domainerrors.ErrSubscriptionFailed.Message(),
	}
}

// parseOrder reads the orderBy and desc query parameters. A missing orderBy
// selects the collection default.
func parseOrder(c echo.Context) (*entity.Order, error) {
	field := c.QueryParam("orderBy")
	if field == "" {
		return nil, nil
	}

	order := &entity.Order{Field: field}
	if raw := c.QueryParam("desc"); raw != "" {
		desc, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &domainerrors.ValidationError{Invalid: map[string]string{"desc": "boolean"}}
		}
		order.Descending = desc
	}

	return order, nil
}
