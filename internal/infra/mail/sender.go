package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

var partialUpdateTemplate = template.Must(template.New("partial_update").Parse(
	`A atualização do contato {{.ContactID}} no AgileCRM parou no meio.

Itens já aplicados (não foram desfeitos):
{{range .Updated}}  - {{.}}
{{else}}  (nenhum)
{{end}}
Erro:
{{.Cause}}
`))

func NewEmailSender(host string, port int, user, password, from string, to []string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) SendPartialUpdateAlert(contactID int64, updated []string, cause string) error {
	m, err := s.partialUpdateMessage(PartialUpdateAlertData{ContactID: contactID, Updated: updated, Cause: cause})
	if err != nil {
		return err
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func (s *EmailSender) partialUpdateMessage(data PartialUpdateAlertData) (*gomail.Message, error) {
	if len(s.To) == 0 {
		return nil, fmt.Errorf("nenhum destinatário configurado para alertas")
	}

	var body bytes.Buffer
	if err := partialUpdateTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To...)
	m.SetHeader("Subject", fmt.Sprintf("[AgileCRM] Atualização parcial do contato %d", data.ContactID))
	m.SetBody("text/plain", body.String())
	return m, nil
}
