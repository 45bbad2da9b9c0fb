package utils

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/DengXianqi/learning-tracker/config"
)

// SendWelcomeEmail greets a user after their first Google sign-in.
func SendWelcomeEmail(email, name string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	if from == "" || password == "" {
		log.Println("Email sender not configured, skipping welcome email.")
		return nil
	}

	to := []string{email}

	subject := "Subject: Welcome to Learning Tracker\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Welcome to Learning Tracker</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;">Your account is ready. Create a learning goal, break it into milestones, and track your progress as you complete them.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Happy learning!</p>
				</div>
			</body>
		</html>
	`, name)

	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending welcome email: %v", err)
		return err
	}

	log.Println("Welcome email sent successfully to", email)
	return nil
}
