package notification

import (
	"context"
	"log/slog"

	"aiclub/internal/domain/service"
	"aiclub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// messagingClient is the subset of *messaging.Client used here
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// Params defines the parameters required for the notification service
type Params struct {
	fx.In

	App    *firebase.App `optional:"true"`
	Logger *slog.Logger
}

// NewNotificationService sends through Firebase Cloud Messaging when a
// Firebase app is configured and only logs otherwise.
func NewNotificationService(ctx context.Context, params Params) (service.NotificationService, error) {
	if params.App == nil {
		params.Logger.Warn("Firebase not configured, push notifications are logged only")

		return &logService{logger: params.Logger}, nil
	}

	client, err := params.App.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	if topic == "" {
		return "", errors.New("notification topic is empty")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := s.client.Send(ctx, message)
	if err != nil {
		return "", errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return id, nil
}

type logService struct {
	logger *slog.Logger
}

func (s *logService) SendTopicNotification(_ context.Context, topic, title, body string, data map[string]string) (string, error) {
	id := "local-" + uuid.NewString()

	s.logger.Info("[LocalNotification] Push notification",
		slog.String("message_id", id),
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return id, nil
}
