package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"rideready-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (es *EmailService) send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (es *EmailService) wrapHTML(title, body string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #1e6b52; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .highlight { background: #e9ecef; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
        .btn { display: inline-block; background: #1e6b52; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🎡 RideReady</h1>
            <p>%s</p>
        </div>
        <div class="content">
%s
        </div>
        <div class="footer">
            <p>© 2026 RideReady. All rights reserved.</p>
            <p>This is an automated email, please do not reply.</p>
        </div>
    </div>
</body>
</html>`, title, title, body)
}

// SendWelcomeEmail is sent after registration.
func (es *EmailService) SendWelcomeEmail(email, name string) error {
	htmlBody := es.wrapHTML("Welcome to RideReady", fmt.Sprintf(`
            <h2>Hello %s!</h2>
            <p>Your RideReady account is ready. You can now add your rides, upload compliance
            documents, schedule inspections and keep on top of technical bulletins that
            affect your equipment.</p>
            <p>Stay safe and stay compliant!</p>
            <p><strong>The RideReady Team</strong></p>`, name))

	textBody := fmt.Sprintf(`
Hello %s!

Your RideReady account is ready. You can now add your rides, upload compliance
documents, schedule inspections and keep on top of technical bulletins that
affect your equipment.

Stay safe and stay compliant!
The RideReady Team
`, name)

	return es.send(email, "Welcome to RideReady! 🎡", textBody, htmlBody)
}

// SendDocumentExpiryReminder warns about a document approaching its expiry date.
func (es *EmailService) SendDocumentExpiryReminder(email, name, documentName string, expiresAt time.Time) error {
	expires := expiresAt.Format("2 January 2006")

	htmlBody := es.wrapHTML("Document Expiry Reminder", fmt.Sprintf(`
            <h2>Hello %s,</h2>
            <p>One of your compliance documents is approaching its expiry date.</p>
            <div class="highlight">
                <p><strong>%s</strong></p>
                <p>Expires: %s</p>
            </div>
            <p>Upload a renewed version before the expiry date to stay compliant.</p>`, name, documentName, expires))

	textBody := fmt.Sprintf(`
Hello %s,

One of your compliance documents is approaching its expiry date.

Document: %s
Expires: %s

Upload a renewed version before the expiry date to stay compliant.
`, name, documentName, expires)

	return es.send(email, fmt.Sprintf("Document expiring soon: %s", documentName), textBody, htmlBody)
}

// SendInspectionReminder warns about an upcoming inspection or NDT due date.
func (es *EmailService) SendInspectionReminder(email, name, rideName, inspectionType string, dueDate time.Time) error {
	due := dueDate.Format("2 January 2006")

	htmlBody := es.wrapHTML("Inspection Reminder", fmt.Sprintf(`
            <h2>Hello %s,</h2>
            <p>An inspection is coming up for one of your rides.</p>
            <div class="highlight">
                <p><strong>%s</strong> — %s</p>
                <p>Due: %s</p>
            </div>
            <p>Book your inspector in good time to avoid downtime.</p>`, name, rideName, inspectionType, due))

	textBody := fmt.Sprintf(`
Hello %s,

An inspection is coming up for one of your rides.

Ride: %s
Inspection: %s
Due: %s

Book your inspector in good time to avoid downtime.
`, name, rideName, inspectionType, due)

	return es.send(email, fmt.Sprintf("Inspection due for %s", rideName), textBody, htmlBody)
}

// SendDocumentEmail sends a download link for a document to a recipient.
func (es *EmailService) SendDocumentEmail(recipientEmail, senderName, documentName, downloadURL string) error {
	htmlBody := es.wrapHTML("Document Shared With You", fmt.Sprintf(`
            <h2>Hello,</h2>
            <p>%s has shared a compliance document with you via RideReady.</p>
            <div class="highlight">
                <p><strong>%s</strong></p>
            </div>
            <p><a class="btn" href="%s">Download document</a></p>
            <p><small>This link expires after 24 hours.</small></p>`, senderName, documentName, downloadURL))

	textBody := fmt.Sprintf(`
Hello,

%s has shared a compliance document with you via RideReady.

Document: %s
Download: %s

This link expires after 24 hours.
`, senderName, documentName, downloadURL)

	return es.send(recipientEmail, fmt.Sprintf("%s shared a document with you", senderName), textBody, htmlBody)
}

// SendSupportNotification forwards a new support message to the support inbox.
func (es *EmailService) SendSupportNotification(fromName, fromEmail, subject, message string) error {
	htmlBody := es.wrapHTML("New Support Message", fmt.Sprintf(`
            <h2>New support message</h2>
            <p><strong>From:</strong> %s (%s)</p>
            <p><strong>Subject:</strong> %s</p>
            <div class="highlight">
                <p>%s</p>
            </div>`, fromName, fromEmail, subject, message))

	textBody := fmt.Sprintf(`
New support message

From: %s (%s)
Subject: %s

%s
`, fromName, fromEmail, subject, message)

	return es.send(es.config.SupportEmail, fmt.Sprintf("Support: %s", subject), textBody, htmlBody)
}
