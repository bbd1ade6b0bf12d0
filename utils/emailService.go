package utils

import (
	"fmt"
	"log"
	"net/http"

	"mzrun/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a message through SendGrid. Without an API key the
// message is logged to the console instead, so local development works
// without credentials.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	cfg := config.AppConfig

	if cfg.SendgridApiKey == "" {
		log.Printf("--- Email (console) ---\nTo: %s <%s>\nSubject: %s\n%s\n", toName, toEmail, subject, htmlBody)
		return nil
	}

	from := sgmail.NewEmail("MZRUN", cfg.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(cfg.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("Error sending email to %s: status %d body %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user. Callers run it in a
// goroutine; failures are logged and never surfaced to the request.
func SendWelcomeEmail(name, email string) {
	body := fmt.Sprintf(`
	<div style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<div style="background-color: #6778ff; padding: 30px; text-align: center;">
			<h1 style="color: #FFFFFF; margin: 0;">MZRUN</h1>
		</div>
		<div style="padding: 40px 30px; line-height: 1.6;">
			<h2>%s님, 환영합니다!</h2>
			<p>MZRUN 가입이 완료되었습니다. 지금 바로 관심 있는 강의를 둘러보세요.</p>
		</div>
	</div>`, name)

	if err := SendEmail(name, email, "MZRUN에 오신 것을 환영합니다", body); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}
