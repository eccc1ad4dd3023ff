package notifications

import (
	"caretray-service/internal/app/contracts"
	"caretray-service/internal/pkg/constvars"
	"caretray-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
	queueName  string
}

// NewRabbitMQPublisher declares the notification queue up front so the
// consumer side can bind before any event is produced.
func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string) (contracts.EventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevOpenChannel)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDeclareQueue)
	}

	return &rabbitMQPublisher{
		connection: connection,
		queueName:  queueName,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event contracts.ResourceEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrPublishEvent(err)
	}
	return nil
}
