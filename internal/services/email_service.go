package services

import (
	"sync"

	"go.uber.org/zap"
)

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To      []string
	Subject string
	Body    string
}

// EmailService is any service that can send emails. Sending is best-effort:
// failures are logged, never retried, and never fail the calling request.
type EmailService interface {
	SendMessages(messages ...EmailMessage)
}

// ConsoleEmailService is the mock-send fallback used when no delivery
// credentials are configured. It logs each message and records it so tests
// can assert on what would have been sent.
type ConsoleEmailService struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []EmailMessage
}

func NewConsoleEmailService(logger *zap.Logger) *ConsoleEmailService {
	return &ConsoleEmailService{logger: logger}
}

func (s *ConsoleEmailService) SendMessages(messages ...EmailMessage) {
	for _, msg := range messages {
		if len(msg.To) == 0 {
			continue
		}
		s.logger.Info("mock email send",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		s.mu.Lock()
		s.sent = append(s.sent, msg)
		s.mu.Unlock()
	}
}

// Sent returns a copy of the recorded messages.
func (s *ConsoleEmailService) Sent() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmailMessage, len(s.sent))
	copy(out, s.sent)
	return out
}
