package sink

import (
	"context"

	"emperror.dev/errors"
	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/merethin/akari/events"
)

// Broker publishes parsed events to a topic exchange with the category tag
// as the routing key, so a consumer can bind a queue to a tag such as
// "rochange" and only receive the categories it cares about.
type Broker struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewBroker dials url, declares a topic exchange named exchangeName, and
// switches the channel into publisher-confirm mode so Publish can tell a
// broker-side nack from a genuine send.
func NewBroker(url, exchangeName string) (*Broker, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "sink: failed to connect to broker")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "sink: failed to open broker channel")
	}

	if err := channel.ExchangeDeclare(exchangeName, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, errors.Wrap(err, "sink: failed to declare exchange")
	}

	if err := channel.Confirm(false); err != nil {
		channel.Close()
		conn.Close()
		return nil, errors.Wrap(err, "sink: failed to enable publisher confirms")
	}

	return &Broker{conn: conn, channel: channel, exchange: exchangeName}, nil
}

// Publish sends evt to the exchange with the event's category as the
// routing key, and waits for the broker to acknowledge receipt.
func (b *Broker) Publish(ctx context.Context, evt events.ParsedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "sink: failed to marshal event")
	}

	confirm, err := b.channel.PublishWithDeferredConfirmWithContext(ctx, b.exchange, evt.Category, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        payload,
	})
	if err != nil {
		return errors.Wrap(err, "sink: failed to publish event")
	}

	ok, err := confirm.WaitContext(ctx)
	if err != nil {
		return errors.Wrap(err, "sink: failed waiting for publish confirm")
	}
	if !ok {
		return errors.New("sink: broker nacked publish")
	}
	return nil
}

// Close closes the channel and connection.
func (b *Broker) Close() error {
	chErr := b.channel.Close()
	connErr := b.conn.Close()
	if chErr != nil {
		return errors.Wrap(chErr, "sink: failed to close broker channel")
	}
	return connErr
}
