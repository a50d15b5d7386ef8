package utils

import (
	"careerbridge/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Careerbridge <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outbound mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A3C6E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A3C6E; line-height: 1.6; }
			.content h2 { color: #1A3C6E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4CAF50; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CAREERBRIDGE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Careerbridge. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a freshly registered account
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your Careerbridge account is ready. Complete your profile to start applying to courses and jobs.</p>
	`, name)

	if err := SendEmail([]string{email}, "Welcome to Careerbridge", getEmailTemplate("Welcome!", body)); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// SendAdmissionDecisionEmail informs a student of a published admission decision
func SendAdmissionDecisionEmail(email, name, courseTitle, status string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>The institution has published a decision for your application to:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Status: <strong>%s</strong></p>
		<p>Log in to your dashboard to respond to the offer.</p>
	`, name, courseTitle, strings.ToUpper(status))

	if err := SendEmail([]string{email}, "Admission Decision Published", getEmailTemplate("Admission Update", body)); err != nil {
		log.Printf("Error sending admission email to %s: %v", email, err)
	}
}

// SendWaitlistPromotionEmail informs a student they moved off the waitlist
func SendWaitlistPromotionEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A seat opened up and you have been admitted from the waitlist to:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Log in to accept or decline the offer.</p>
	`, name, courseTitle)

	if err := SendEmail([]string{email}, "You Have Been Admitted!", getEmailTemplate("Waitlist Promotion", body)); err != nil {
		log.Printf("Error sending promotion email to %s: %v", email, err)
	}
}
