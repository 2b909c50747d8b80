package messaging

import (
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

func getName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

func DefineTopic(ch *amqp.Channel, prefix string, topic ChangeTopic) error {
	name := getName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(
		name,  // name of the queue
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,   // arguments
	); err != nil {
		return err
	}
	return nil
}

func SendChange[V any](c *amqp.Connection, prefix string, topic ChangeTopic, data V) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := getName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        bytes,
		},
	)
}

// DirectoryEvents publishes form events to the broker. A nil receiver is
// valid and drops everything, so the server works without a broker.
type DirectoryEvents struct {
	prefix     string
	connection *amqp.Connection
}

func NewDirectoryEvents(url, prefix string) (*DirectoryEvents, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	for _, topic := range []ChangeTopic{ToolSubmittedTopic, RemovalRequestedTopic, ContactReceivedTopic} {
		if err := DefineTopic(ch, prefix, topic); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return &DirectoryEvents{prefix: prefix, connection: conn}, nil
}

func (e *DirectoryEvents) Close() error {
	if e == nil {
		return nil
	}
	return e.connection.Close()
}

func (e *DirectoryEvents) Publish(topic ChangeTopic, data any) {
	if e == nil {
		return
	}
	if err := SendChange(e.connection, e.prefix, topic, data); err != nil {
		log.Printf("Failed to publish %s event: %v", topic, err)
	}
}
