package usecase

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/integration/agilecrm"
	"github.com/xavierca1/flow-nodes/internal/infra/queue"
)

const (
	NodeAgileCRM           = "AGILECRM"
	OperationContactUpdate = "contact.update"
)

type UpdateContactUseCase struct {
	CRM     ContactUpdater
	Repo    entity.ExecutionRepository
	Alerts  AlertService
	Metrics MetricsRecorder
	Logger  *zap.Logger
}

// Repo, Alerts e Metrics são opcionais (nil = desligado).
func NewUpdateContactUseCase(
	crm ContactUpdater,
	repo entity.ExecutionRepository,
	alerts AlertService,
	metrics MetricsRecorder,
	logger *zap.Logger,
) *UpdateContactUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpdateContactUseCase{
		CRM:     crm,
		Repo:    repo,
		Alerts:  alerts,
		Metrics: metrics,
		Logger:  logger,
	}
}

func (uc *UpdateContactUseCase) Execute(ctx context.Context, input UpdateContactInput) (UpdateContactOutput, error) {
	if errs := ValidateUpdateContactInput(input); len(errs) > 0 {
		return UpdateContactOutput{}, ValidationErrors(errs)
	}

	exec := entity.NewExecution(NodeAgileCRM, OperationContactUpdate, input.Contact.ID)
	log := uc.Logger.With(zap.String("execution_id", exec.ID), zap.Int64("contact_id", input.Contact.ID))

	result, err := uc.CRM.UpdateContact(ctx, agilecrm.UpdateRequest{
		Method:  input.Method,
		BaseURI: input.BaseURI,
		Query:   toValues(input.Query),
		Contact: input.Contact,
	})

	updated := result.Updated
	var partial *entity.PartialUpdateError
	if errors.As(err, &partial) {
		updated = partial.Updated
	}
	exec.Finish(updated, err)

	if err != nil {
		log.Warn("contact update failed", zap.String("status", exec.Status), zap.Strings("updated", exec.Updated), zap.Error(err))
		if uc.Metrics != nil {
			uc.Metrics.RecordIntegrationError("agilecrm")
		}
	} else {
		log.Info("contact updated", zap.Strings("updated", exec.Updated))
	}
	if uc.Metrics != nil {
		uc.Metrics.RecordContactUpdate(exec.Status)
	}

	uc.save(ctx, exec, log)

	if exec.Status == entity.ExecutionPartial && uc.Alerts != nil {
		if alertErr := uc.Alerts.SendPartialUpdateAlert(exec.ContactID, exec.Updated, exec.Error); alertErr != nil {
			log.Error("falha ao enviar alerta de atualização parcial", zap.Error(alertErr))
		}
	}

	output := UpdateContactOutput{
		ExecutionID: exec.ID,
		Status:      exec.Status,
		Updated:     exec.Updated,
		Response:    result.Response,
	}
	return output, err
}

// ExecuteJob satisfaz queue.JobExecutor para o worker.
func (uc *UpdateContactUseCase) ExecuteJob(ctx context.Context, job queue.ContactUpdateJob) error {
	_, err := uc.Execute(ctx, UpdateContactInput{
		Method:  job.Method,
		BaseURI: job.BaseURI,
		Query:   job.Query,
		Contact: job.Contact,
	})
	return err
}

// O log de execução não pode mascarar o resultado da chamada ao CRM.
func (uc *UpdateContactUseCase) save(ctx context.Context, exec *entity.Execution, log *zap.Logger) {
	if uc.Repo == nil {
		return
	}
	if err := uc.Repo.Create(ctx, exec); err != nil {
		log.Error("erro ao gravar execução", zap.Error(err))
	}
}

func toValues(query map[string]string) url.Values {
	if len(query) == 0 {
		return nil
	}
	values := make(url.Values, len(query))
	for k, v := range query {
		values.Set(k, v)
	}
	return values
}
