package mailer

// ActivationSubject and ActivationBody define the one message this system
// sends. The body is plain text so it renders anywhere, MailHog included.
const ActivationSubject = "Activate Your Account"

func ActivationBody(code string) string {
	return "Your activation code is: " + code
}

// EmailJob is the JSON payload put on the RabbitMQ queue when mail delivery
// runs through the async worker instead of a direct transport.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
