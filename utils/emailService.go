package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"coursehub/config"
)

// SendEmail sends an HTML email through the configured SMTP account. All
// callers treat delivery as best effort.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		log.Println("Email sender not configured; skipping email:", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CourseHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email %q: %v", subject, err)
		return err
	}
	return nil
}

func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1B3A4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A4B; line-height: 1.6; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentEmail confirms a new enrollment
func SendEnrollmentEmail(email, firstName string, courseID uint) {
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Your enrollment is confirmed and your payment has been recorded.
		You can start learning right away from your dashboard.</p>
		<p>Course reference: #%d</p>`, firstName, courseID)

	if err := SendEmail([]string{email}, "Enrollment confirmed", emailTemplate("Welcome aboard!", body)); err != nil {
		log.Printf("Error sending enrollment email to %s: %v", email, err)
	}
}

// SendCertificateEmail notifies the learner their certificate is ready
func SendCertificateEmail(email, firstName, verificationCode string) {
	body := fmt.Sprintf(`<p>Hi %s,</p>
		<p>Congratulations on completing your course! Your certificate has been
		issued.</p>
		<p>Verification code: <b>%s</b></p>`, firstName, verificationCode)

	if err := SendEmail([]string{email}, "Your certificate is ready", emailTemplate("Congratulations!", body)); err != nil {
		log.Printf("Error sending certificate email to %s: %v", email, err)
	}
}
