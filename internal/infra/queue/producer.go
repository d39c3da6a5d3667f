package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

type ContactUpdateJob struct {
	JobID   string               `json:"job_id"`
	Method  string               `json:"method"`
	BaseURI string               `json:"uri,omitempty"`
	Query   map[string]string    `json:"query,omitempty"`
	Contact entity.ContactUpdate `json:"body"`
}

type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type ProducerInterface interface {
	PublishContactUpdate(ctx context.Context, job ContactUpdateJob) (string, error)
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

// PublishContactUpdate devolve o JobID (gerado se vier vazio).
func (p *RabbitMQProducer) PublishContactUpdate(ctx context.Context, job ContactUpdateJob) (string, error) {
	if job.JobID == "" {
		job.JobID = uuid.New().String()
	}

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    job.JobID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return "", fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return job.JobID, nil
}
