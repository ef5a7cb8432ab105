package services

import (
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// SendgridEmailService delivers through the SendGrid v3 mail API.
type SendgridEmailService struct {
	key    string
	from   *sgmail.Email
	logger *zap.Logger
}

func NewSendgridEmailService(key, fromName, fromEmail string, logger *zap.Logger) *SendgridEmailService {
	return &SendgridEmailService{
		key:    key,
		from:   sgmail.NewEmail(fromName, fromEmail),
		logger: logger,
	}
}

func (s *SendgridEmailService) SendMessages(messages ...EmailMessage) {
	for _, msg := range messages {
		if len(msg.To) == 0 {
			continue
		}
		s.send(msg)
	}
}

func (s *SendgridEmailService) send(msg EmailMessage) {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	for _, to := range msg.To {
		p.AddTos(sgmail.NewEmail("", to))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		s.logger.Error("sending email", zap.Error(err))
	} else if res.StatusCode >= http.StatusBadRequest {
		s.logger.Error("sending email",
			zap.Int("status", res.StatusCode),
			zap.String("body", res.Body),
		)
	}
}
