package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/child-therapy-api/pkg/jobs"
	"github.com/noah-isme/child-therapy-api/pkg/mailer"
)

const jobTypeParentCredentials = "parent_credentials"

type parentCredentialsPayload struct {
	Email     string
	Name      string
	Password  string
	ChildName string
}

// NotificationService delivers parent credential emails through a background
// queue so child creation never blocks on SMTP.
type NotificationService struct {
	mail   *mailer.Mailer
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewNotificationService constructs the service and its delivery queue. Call
// Start before enqueueing and Stop on shutdown.
func NewNotificationService(mail *mailer.Mailer, workers int, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &NotificationService{mail: mail, logger: logger}
	s.queue = jobs.NewQueue("notifications", s.handle, jobs.QueueConfig{
		Workers: workers,
		Logger:  logger,
	})
	return s
}

// Start launches the delivery workers.
func (s *NotificationService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the workers.
func (s *NotificationService) Stop() {
	s.queue.Stop()
}

// QueueParentCredentials enqueues a credentials email for a freshly
// provisioned parent account. Returns false when delivery is disabled or the
// queue rejects the job.
func (s *NotificationService) QueueParentCredentials(parentEmail, parentName, password, childName string) bool {
	if !s.mail.Enabled() {
		return false
	}
	err := s.queue.Enqueue(jobs.Job{
		ID:   uuid.NewString(),
		Type: jobTypeParentCredentials,
		Payload: parentCredentialsPayload{
			Email:     parentEmail,
			Name:      parentName,
			Password:  password,
			ChildName: childName,
		},
	})
	if err != nil {
		s.logger.Warn("failed to queue credentials email", zap.Error(err))
		return false
	}
	return true
}

func (s *NotificationService) handle(_ context.Context, job jobs.Job) error {
	switch job.Type {
	case jobTypeParentCredentials:
		payload, ok := job.Payload.(parentCredentialsPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T", job.Payload)
		}
		return s.mail.Send(mailer.Message{
			To:      payload.Email,
			Subject: "Your Therapy Portal Account",
			HTML:    parentCredentialsHTML(payload),
		})
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}

func parentCredentialsHTML(p parentCredentialsPayload) string {
	return fmt.Sprintf(`<html><body>
<h2>Welcome to the Therapy Portal</h2>
<p>Dear %s,</p>
<p>An account has been created for you to follow the therapy progress of <strong>%s</strong>.</p>
<p>Your login credentials:</p>
<ul>
<li>Email: <strong>%s</strong></li>
<li>Temporary password: <strong>%s</strong></li>
</ul>
<p>Please sign in and change your password as soon as possible.</p>
<p>Best regards,<br>Child Therapy Center</p>
</body></html>`, p.Name, p.ChildName, p.Email, p.Password)
}
