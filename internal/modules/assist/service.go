package assist

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds a single advisor call.
const DefaultTimeout = 15 * time.Second

// Service wraps an Advisor in a bounded-time call. Any advisor error
// degrades to the fixed fallback answer. The service never touches
// workshop state.
type Service interface {
	Diagnose(ctx context.Context, prompt string) string
}

type service struct {
	advisor Advisor
	timeout time.Duration
	log     *logrus.Logger
}

// NewService creates a new assist service. A non-positive timeout
// selects DefaultTimeout.
func NewService(advisor Advisor, timeout time.Duration, log *logrus.Logger) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{advisor: advisor, timeout: timeout, log: log}
}

func (s *service) Diagnose(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.advisor.Diagnose(ctx, prompt)
	if err != nil {
		s.log.WithError(err).Warn("advisor unavailable, serving fallback")
		return Fallback
	}
	return answer
}
