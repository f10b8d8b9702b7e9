package notification

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kunal2217/employee-registration/backend/internal/config"
	"github.com/kunal2217/employee-registration/backend/internal/domain"
)

// QueueName is the queue consumed by cmd/notifier.
const QueueName = "notification_queue"

// TypeRegistrationCompleted is the message type of the welcome mail sent
// after a successful final submission.
const TypeRegistrationCompleted = "registration_completed"

// Publisher sends notification messages to the queue. Delivery is
// best-effort: callers log failures and move on.
type Publisher struct {
	cfg     *config.Config
	channel *amqp.Channel
}

func NewPublisher(cfg *config.Config, channel *amqp.Channel) *Publisher {
	return &Publisher{
		cfg:     cfg,
		channel: channel,
	}
}

func (p *Publisher) RegistrationCompleted(user *domain.UserRecord) error {
	message := domain.NotificationMessage{
		Type: TypeRegistrationCompleted,
		To:   user.Email,
		Data: domain.RegistrationCompletedData{
			Name:  user.Name,
			Email: user.Email,
		},
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(p.cfg.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(
		ctx,
		"",
		QueueName,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
