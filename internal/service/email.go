package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"motorent-backend/internal/logger"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService builds the SendGrid-backed mailer. With an empty API key
// it degrades to a no-op that only logs, which keeps local development from
// needing SendGrid credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   apiKey != "",
	}
}

func (s *sendgridEmailService) send(ctx context.Context, toEmail, subject, plainText, htmlContent string) error {
	if !s.enabled {
		logger.Debug("Email sending disabled, skipping", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error("Failed to send email", "to", toEmail, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		logger.Error("SendGrid rejected email", "to", toEmail, "status", response.StatusCode)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}

func (s *sendgridEmailService) SendProposalReceived(ctx context.Context, ownerEmail, renterName, motoName string) error {
	subject := fmt.Sprintf("Nova proposta de aluguel: %s", motoName)
	plain := fmt.Sprintf("%s enviou uma proposta de aluguel para sua moto %s. Acesse a plataforma para aprovar ou recusar.", renterName, motoName)
	html := fmt.Sprintf("<p><strong>%s</strong> enviou uma proposta de aluguel para sua moto <strong>%s</strong>.</p><p>Acesse a plataforma para aprovar ou recusar.</p>", renterName, motoName)
	return s.send(ctx, ownerEmail, subject, plain, html)
}

func (s *sendgridEmailService) SendProposalApproved(ctx context.Context, renterEmail, motoName, ownerName string) error {
	subject := fmt.Sprintf("Proposta aprovada: %s", motoName)
	plain := fmt.Sprintf("Sua proposta para %s foi aprovada por %s. O contrato está disponível para assinatura.", motoName, ownerName)
	html := fmt.Sprintf("<p>Sua proposta para <strong>%s</strong> foi aprovada por %s.</p><p>O contrato está disponível para assinatura.</p>", motoName, ownerName)
	return s.send(ctx, renterEmail, subject, plain, html)
}

func (s *sendgridEmailService) SendProposalRejected(ctx context.Context, renterEmail, motoName, reason string) error {
	subject := fmt.Sprintf("Proposta recusada: %s", motoName)
	plain := fmt.Sprintf("Sua proposta para %s foi recusada.", motoName)
	html := fmt.Sprintf("<p>Sua proposta para <strong>%s</strong> foi recusada.</p>", motoName)
	if reason != "" {
		plain += " Motivo: " + reason
		html += fmt.Sprintf("<p>Motivo: %s</p>", reason)
	}
	return s.send(ctx, renterEmail, subject, plain, html)
}

func (s *sendgridEmailService) SendContractSigned(ctx context.Context, ownerEmail, renterName, motoName string) error {
	subject := fmt.Sprintf("Contrato assinado: %s", motoName)
	plain := fmt.Sprintf("%s assinou o contrato de aluguel de %s.", renterName, motoName)
	html := fmt.Sprintf("<p><strong>%s</strong> assinou o contrato de aluguel de <strong>%s</strong>.</p>", renterName, motoName)
	return s.send(ctx, ownerEmail, subject, plain, html)
}

func (s *sendgridEmailService) SendRentalStartReminder(ctx context.Context, renterEmail, motoName, startDate string) error {
	subject := fmt.Sprintf("Seu aluguel começa em breve: %s", motoName)
	plain := fmt.Sprintf("Lembrete: seu aluguel de %s começa em %s.", motoName, startDate)
	html := fmt.Sprintf("<p>Lembrete: seu aluguel de <strong>%s</strong> começa em %s.</p>", motoName, startDate)
	return s.send(ctx, renterEmail, subject, plain, html)
}

func (s *sendgridEmailService) SendPaymentOverdue(ctx context.Context, renterEmail, motoName, dueDate string) error {
	subject := fmt.Sprintf("Pagamento em atraso: %s", motoName)
	plain := fmt.Sprintf("O pagamento do aluguel de %s venceu em %s. Regularize para manter sua conta ativa.", motoName, dueDate)
	html := fmt.Sprintf("<p>O pagamento do aluguel de <strong>%s</strong> venceu em %s.</p><p>Regularize para manter sua conta ativa.</p>", motoName, dueDate)
	return s.send(ctx, renterEmail, subject, plain, html)
}
