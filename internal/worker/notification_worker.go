package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"postline/internal/model"
	"postline/internal/repository"
)

// NotificationWorker consumes post-published events and writes one
// notification row per subscriber of the author.
type NotificationWorker struct {
	conn          *amqp.Connection
	subscriptions *repository.SubscriptionRepository
	notifications *repository.NotificationRepository
	queueName     string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotificationWorker(
	conn *amqp.Connection,
	subscriptions *repository.SubscriptionRepository,
	notifications *repository.NotificationRepository,
	queueName string,
) *NotificationWorker {
	return &NotificationWorker{
		conn:          conn,
		subscriptions: subscriptions,
		notifications: notifications,
		queueName:     queueName,
	}
}

func (w *NotificationWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var event model.PostEvent
				if err := json.Unmarshal(d.Body, &event); err != nil {
					log.Printf("worker decode post event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				if err := w.fanOut(event); err != nil {
					log.Printf("worker fan out post event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *NotificationWorker) fanOut(event model.PostEvent) error {
	subs, err := w.subscriptions.ListByAuthor(event.AuthorUserID)
	if err != nil {
		return err
	}

	notifications := make([]model.Notification, 0, len(subs))
	now := time.Now()
	for _, sub := range subs {
		notifications = append(notifications, model.Notification{
			UserID:       sub.SubscriberUserID,
			PostID:       event.PostID,
			AuthorUserID: event.AuthorUserID,
			Title:        event.Title,
			CreatedAt:    now,
		})
	}
	return w.notifications.CreateBatch(notifications)
}

func (w *NotificationWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
