package assist

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type fakeAdvisor struct {
	answer string
	err    error
	delay  time.Duration
}

func (f fakeAdvisor) Diagnose(ctx context.Context, prompt string) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.answer, f.err
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestDiagnosePassesAnswerThrough(t *testing.T) {
	svc := NewService(fakeAdvisor{answer: "Kemungkinan kampas rem aus."}, time.Second, discardLogger())
	if got := svc.Diagnose(context.Background(), "rem bunyi"); got != "Kemungkinan kampas rem aus." {
		t.Fatalf("unexpected answer: %q", got)
	}
}

func TestDiagnoseFallsBackOnError(t *testing.T) {
	svc := NewService(fakeAdvisor{err: errors.New("boom")}, time.Second, discardLogger())
	if got := svc.Diagnose(context.Background(), "rem bunyi"); got != Fallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestDiagnoseFallsBackOnTimeout(t *testing.T) {
	svc := NewService(fakeAdvisor{answer: "terlambat", delay: 200 * time.Millisecond}, 10*time.Millisecond, discardLogger())
	if got := svc.Diagnose(context.Background(), "mesin mati"); got != Fallback {
		t.Fatalf("expected fallback on timeout, got %q", got)
	}
}

func TestGeminiAdvisorRequiresKey(t *testing.T) {
	adv := NewGeminiAdvisor("", "")
	if _, err := adv.Diagnose(context.Background(), "halo"); err == nil {
		t.Fatalf("expected error without api key")
	}
}
