package events

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/DamianMlM/yummy-bakery-web/internal/config"
	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

// Bus carries order lifecycle events from the status engine to the
// notification consumer over RabbitMQ.
type Bus struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Cfg     *config.Config
}

func Connect(cfg *config.Config) (*Bus, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &Bus{Conn: conn, Channel: ch, Cfg: cfg}, nil
}

// Setup declares the exchange and the notification queue and binds them.
func (b *Bus) Setup() error {
	if err := b.Channel.ExchangeDeclare(
		b.Cfg.OrderExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	_, err := b.Channel.QueueDeclare(
		b.Cfg.OrderQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	return b.Channel.QueueBind(
		b.Cfg.OrderQueue,
		"",
		b.Cfg.OrderExchange,
		false,
		nil,
	)
}

// PublishOrderEvent sends a persistent JSON-encoded event.
func (b *Bus) PublishOrderEvent(event models.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		ContentType:  "application/json",
		Body:         body,
	}

	return b.Channel.Publish(
		b.Cfg.OrderExchange,
		"",
		false, // mandatory
		false, // immediate
		msg,
	)
}

// Consume delivers decoded events to handler. A decodable message is acked
// once the handler returns, whatever the handler did with it; an
// undecodable payload is nacked without requeue so a poison message never
// loops.
func (b *Bus) Consume(handler func(models.OrderEvent)) error {
	msgs, err := b.Channel.Consume(
		b.Cfg.OrderQueue,
		"bakery-notifier", // consumer tag
		false,             // auto-ack
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			processMessage(msg, handler)
		}
	}()

	return nil
}

func processMessage(msg amqp.Delivery, handler func(models.OrderEvent)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic in event processing: %v", r)
		}
	}()

	var event models.OrderEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Invalid event payload: %s", msg.Body)
		if err := msg.Nack(false, false); err != nil {
			log.Printf("Failed to nack message: %v", err)
		}
		return
	}

	handler(event)

	if err := msg.Ack(false); err != nil {
		log.Printf("Failed to ack message: %v", err)
	}
}

func (b *Bus) Close() {
	if b.Channel != nil {
		if err := b.Channel.Close(); err != nil {
			log.Printf("Failed to close channel: %v", err)
		}
	}
	if b.Conn != nil {
		if err := b.Conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}
}
