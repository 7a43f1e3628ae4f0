package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"aiclub/config"
	deliverycontext "aiclub/internal/delivery/context"
	"aiclub/internal/domain/constants"
	"aiclub/internal/domain/entity"
	"aiclub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator validates a Google-signed ID token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns published content events into topic push notifications
type PushHandler struct {
	verifyPushAuth  bool
	audience        string
	serviceAccount  string
	validate        tokenValidator
	topic           string
	kinds           []string
	logger          *slog.Logger
	notificationSvc service.NotificationService
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config

	// Verify push auth when an audience is configured, or for Google Pub/Sub outside development
	verifyPushAuth := cfg.Worker.Audience != "" ||
		(cfg.PubSub != nil &&
			cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
			cfg.Env.Env != constants.EnvDevelop)

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		audience:        cfg.Worker.Audience,
		serviceAccount:  cfg.Worker.ServiceAccountEmail,
		validate:        idtoken.Validate,
		topic:           cfg.Notification.Topic,
		kinds:           cfg.Notification.Kinds,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ContentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse content event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing content event",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.String("operation", string(event.Operation)),
		slog.String("document_id", event.DocumentID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process content event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ContentEvent) string {
	if requestID, ok := pushMsg.Message.Attributes[constants.AttrRequestID]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent announces newly created content of the configured kinds
func (h *PushHandler) processEvent(ctx context.Context, event *service.ContentEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.Operation != service.ContentCreated {
		logger.Debug("[Worker] Ignoring content event", slog.String("operation", string(event.Operation)))

		return nil
	}
	if !slices.Contains(h.kinds, event.Kind) {
		logger.Debug("[Worker] Kind not announced", slog.String("kind", event.Kind))

		return nil
	}
	if _, ok := entity.ParseKind(event.Kind); !ok {
		return errors.Errorf("unknown content kind %q", event.Kind)
	}

	title, body, data := h.prepareNotificationContent(event)
	messageID, err := h.notificationSvc.SendTopicNotification(ctx, h.topic, title, body, data)
	if err != nil {
		return newRetryableError(errors.Wrap(err, "send topic notification"))
	}

	logger.Info("[Worker] Notification sent",
		slog.String("event_id", event.EventID),
		slog.String("topic", h.topic),
		slog.String("message_id", messageID),
	)

	return nil
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.ContentEvent) (title, body string, data map[string]string) {
	switch entity.Kind(event.Kind) {
	case entity.KindEvent:
		title = "New club event"
	case entity.KindBlog:
		title = "New blog post"
	case entity.KindProject:
		title = "New project"
	default:
		title = "New post"
	}
	body = event.Title

	data = map[string]string{
		"event_id":    event.EventID,
		"kind":        event.Kind,
		"document_id": event.DocumentID,
	}
	if event.Slug != "" {
		data["slug"] = event.Slug
	}

	return title, body, data
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected push identity: %s", email)
		}
	}

	return nil
}
