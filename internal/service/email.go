package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"agrirent-backend/internal/config"
	"agrirent-backend/internal/domain"
	"agrirent-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey             string
	fromEmail          string
	fromName           string
	baseURL            string
	resetExpiryMinutes int
}

func NewEmailService(cfg config.EmailConfig, resetExpiryMinutes int) EmailService {
	return &sendGridEmailService{
		apiKey:             cfg.APIKey,
		fromEmail:          cfg.FromEmail,
		fromName:           cfg.FromName,
		baseURL:            cfg.FrontendBaseURL,
		resetExpiryMinutes: resetExpiryMinutes,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to, "subject", subject)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendActivationEmail(ctx context.Context, email, name, userType, token string) error {
	link := fmt.Sprintf("%s/activate/%s", s.baseURL, token)
	subject := "Activate your AgriRent account"
	plainText := fmt.Sprintf("Hi %s, activate your account: %s", name, link)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Welcome to AgriRent</h2>
				<p>Hi %s, thanks for signing up as a %s.</p>
				<p><a href="%s">Activate your account</a></p>
				<p>If you did not sign up, you can ignore this email.</p>
			</body>
		</html>
	`, name, userType, link)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendPasswordResetEmail(ctx context.Context, email, name, token string) error {
	subject, plainText, htmlContent := s.resetEmailContent(name, token)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) resetEmailContent(name, token string) (subject, plainText, htmlContent string) {
	link := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)
	validity := resetValidity(s.resetExpiryMinutes)
	subject = "Reset your AgriRent password"
	plainText = fmt.Sprintf("Hi %s, reset your password: %s (valid for %s)", name, link, validity)
	htmlContent = fmt.Sprintf(`
		<html>
			<body>
				<h2>Password Reset</h2>
				<p>Hi %s,</p>
				<p><a href="%s">Reset your password</a></p>
				<p>The link is valid for %s. If you did not request a reset, ignore this email.</p>
			</body>
		</html>
	`, name, link, validity)
	return subject, plainText, htmlContent
}

func resetValidity(minutes int) string {
	if minutes >= 60 && minutes%60 == 0 {
		hours := minutes / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", minutes)
}

func (s *sendGridEmailService) SendRequestReceivedEmail(ctx context.Context, providerEmail, customerName, equipmentName string) error {
	subject := fmt.Sprintf("New Rental Request: %s", equipmentName)
	plainText := fmt.Sprintf("%s wants to rent your %s", customerName, equipmentName)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>New Rental Request</h2>
				<p><strong>%s</strong> has requested to rent your <strong>%s</strong>.</p>
				<p><a href="%s/provider/requests">View Request</a></p>
			</body>
		</html>
	`, customerName, equipmentName, s.baseURL)
	return s.send(providerEmail, "", subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendDecisionEmail(ctx context.Context, customerEmail, equipmentName string, status domain.RequestStatus, message string) error {
	subject := fmt.Sprintf("Your rental request for %s was %s", equipmentName, status)
	plainText := fmt.Sprintf("Request for %s: %s. %s", equipmentName, status, message)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Request %s</h2>
				<p>Your request for <strong>%s</strong> has been %s.</p>
				<p>%s</p>
				<p><a href="%s/user/My-Request">View your requests</a></p>
			</body>
		</html>
	`, status, equipmentName, status, message, s.baseURL)
	return s.send(customerEmail, "", subject, plainText, htmlContent)
}
