package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type JobExecutor interface {
	ExecuteJob(ctx context.Context, job ContactUpdateJob) error
}

// Acknowledger is the part of amqp.Delivery the worker needs.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type Worker struct {
	Channel  *amqp.Channel
	Executor JobExecutor
	Logger   *zap.Logger
}

func NewWorker(ch *amqp.Channel, executor JobExecutor, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		Channel:  ch,
		Executor: executor,
		Logger:   logger,
	}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	w.Logger.Info("worker aguardando na fila", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handle(ctx, d.Body, &d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, body []byte, ack Acknowledger) {
	var job ContactUpdateJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.Logger.Error("JSON inválido na fila", zap.Error(err))
		// Mensagem malformada: rejeita sem requeue para não travar a fila
		ack.Nack(false, false)
		return
	}

	log := w.Logger.With(zap.String("job_id", job.JobID), zap.Int64("contact_id", job.Contact.ID))

	if err := w.Executor.ExecuteJob(ctx, job); err != nil {
		// facetas já aplicadas não voltam; requeue repetiria as que deram certo
		log.Error("erro ao processar atualização", zap.Error(err))
		ack.Nack(false, false)
		return
	}

	log.Info("atualização de contato processada")
	ack.Ack(false)
}
