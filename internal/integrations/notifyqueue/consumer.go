package notifyqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const maxReconnectDelay = 30 * time.Second

// Consumer читает очередь уведомлений и передает сообщения обработчику.
// Успешно обработанные сообщения подтверждаются (Ack), остальные отклоняются без возврата в очередь.
type Consumer struct {
	url      string
	queue    string
	prefetch int
	handler  Handler
	log      Logger
}

// NewConsumer создает консьюмера
func NewConsumer(url, queue string, prefetch int, handler Handler, log Logger) *Consumer {
	return &Consumer{url: url, queue: queue, prefetch: prefetch, handler: handler, log: log}
}

// Run обрабатывает очередь до отмены ctx, переподключаясь с экспоненциальной паузой
func (c *Consumer) Run(ctx context.Context) {
	delay := time.Second
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			c.log.Info("Consumer: stopped")
			return
		}

		c.log.Warn("Consumer: %v; reconnecting in %s", err, delay)
		select {
		case <-ctx.Done():
			c.log.Info("Consumer: stopped")
			return
		case <-time.After(delay):
		}
		if delay < maxReconnectDelay {
			delay *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnection, err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrConnection, err)
	}
	defer ch.Close()

	if c.prefetch > 0 {
		if err := ch.Qos(c.prefetch, 0, false); err != nil {
			c.log.Warn("Consumer: set QoS failed: %v", err)
		}
	}

	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: consume: %v", ErrConnection, err)
	}

	c.log.Info("Consumer: listening on %s", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	if err := c.handler.HandleMessage(ctx, d.Body); err != nil {
		c.log.Error("Consumer: message_id=%s failed: %v", d.MessageId, err)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.log.Warn("Consumer: nack message_id=%s: %v", d.MessageId, nackErr)
		}
		return
	}

	if err := d.Ack(false); err != nil {
		c.log.Warn("Consumer: ack message_id=%s: %v", d.MessageId, err)
	}
}
