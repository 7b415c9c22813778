// Package notify queues operator e-mails in Redis and delivers them over SMTP.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/logger"
	"github.com/Bhishaj9/redbull-backend/internal/metrics"
	"github.com/Bhishaj9/redbull-backend/internal/money"

	"github.com/redis/go-redis/v9"
	mail "github.com/wneessen/go-mail"
)

const (
	queueKey    = "notifications"
	failedKey   = "notifications:failed"
	maxAttempts = 3

	TypeWithdrawal = "withdrawal_requested"
	TypeRecharge   = "recharge_submitted"
	TypePayout     = "payout_completed"
)

type Job struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// Sender delivers one message.
type Sender interface {
	Send(job Job) error
}

type SMTPSender struct {
	Host     string
	Port     string
	User     string
	Pass     string
	From     string
	FromName string
}

func (s SMTPSender) message(job Job) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(s.FromName, s.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := m.To(job.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	m.Subject(job.Subject)
	m.SetBodyString(mail.TypeTextPlain, job.Body)
	return m, nil
}

func (s SMTPSender) Send(job Job) error {
	m, err := s.message(job)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(s.Port)
	if err != nil {
		return fmt.Errorf("smtp port %q: %w", s.Port, err)
	}
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}
	if s.User != "" && s.Pass != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.User),
			mail.WithPassword(s.Pass),
		)
	}

	client, err := mail.NewClient(s.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSend(m)
}

type Service struct {
	redis       *redis.Client
	sender      Sender
	adminEmail  string
	retryDelay  time.Duration
	pollBackoff time.Duration
}

// New returns a queue for adminEmail. With an empty address every
// notification is dropped.
func New(rdb *redis.Client, sender Sender, adminEmail string) *Service {
	return &Service{
		redis:      rdb,
		sender:     sender,
		adminEmail:  adminEmail,
		retryDelay:  5 * time.Second,
		pollBackoff: 5 * time.Second,
	}
}

func (s *Service) enqueue(ctx context.Context, jobType, subject, body string) error {
	if s.adminEmail == "" {
		logger.Debug("notification dropped, no operator address", "type", jobType)
		return nil
	}

	data, err := json.Marshal(Job{
		Type:    jobType,
		To:      s.adminEmail,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
	if err != nil {
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		metrics.RecordNotification(jobType, "queue_error")
		return fmt.Errorf("queue %s notification: %w", jobType, err)
	}
	metrics.RecordNotification(jobType, "queued")
	return nil
}

func (s *Service) WithdrawalRequested(ctx context.Context, phone string, amountPaise int64, id int) error {
	return s.enqueue(ctx, TypeWithdrawal,
		fmt.Sprintf("Withdrawal request #%d", id),
		fmt.Sprintf("User %s requested a withdrawal of Rs %s.\r\nReview it in the admin panel.", phone, money.Format(amountPaise)),
	)
}

func (s *Service) RechargeSubmitted(ctx context.Context, phone string, amountPaise int64, utr string) error {
	return s.enqueue(ctx, TypeRecharge,
		"Recharge submitted",
		fmt.Sprintf("User %s submitted a recharge of Rs %s.\r\nUTR: %s", phone, money.Format(amountPaise), utr),
	)
}

func (s *Service) PayoutCompleted(ctx context.Context, disbursedPaise int64, usersCredited, usersFailed int) error {
	return s.enqueue(ctx, TypePayout,
		"Daily payout finished",
		fmt.Sprintf("Disbursed Rs %s to %d users.\r\nFailed users: %d", money.Format(disbursedPaise), usersCredited, usersFailed),
	)
}

// Start delivers queued jobs until ctx is cancelled. While Redis is
// unreachable it polls every pollBackoff.
func (s *Service) Start(ctx context.Context) {
	logger.Info("notification worker started")

	for {
		taken, err := s.processNext(ctx)
		if ctx.Err() != nil {
			logger.Info("notification worker stopped")
			return
		}
		if err != nil {
			logger.Warn("notification queue unavailable", "error", err, "retry_in", s.pollBackoff.String())
			if !sleep(ctx, s.pollBackoff) {
				logger.Info("notification worker stopped")
				return
			}
			continue
		}
		if !taken {
			s.QueueLength(ctx)
		}
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// processNext handles at most one job and reports whether one was taken. An
// empty queue is not an error.
func (s *Service) processNext(ctx context.Context) (bool, error) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var job Job
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("bad notification payload", "error", err)
		return true, nil
	}

	job.Tries++
	if err := s.sender.Send(job); err != nil {
		logger.Error("notification send failed", "type", job.Type, "attempt", job.Tries, "error", err)

		if job.Tries < maxAttempts {
			sleep(ctx, s.retryDelay)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.WithoutCancel(ctx), queueKey, data)
			return true, nil
		}
		s.saveFailed(ctx, job, err)
		metrics.RecordNotification(job.Type, "failed")
		return true, nil
	}

	metrics.RecordNotification(job.Type, "sent")
	logger.Info("notification sent", "type", job.Type, "attempt", job.Tries)
	return true, nil
}

func (s *Service) saveFailed(ctx context.Context, job Job, sendErr error) {
	data, _ := json.Marshal(map[string]any{
		"job":   job,
		"error": sendErr.Error(),
		"time":  time.Now(),
	})
	s.redis.LPush(context.WithoutCancel(ctx), failedKey, data)
	logger.Error("notification moved to failed list", "type", job.Type)
}

// QueueLength reports the backlog and mirrors it into the queue gauge.
func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	metrics.NotificationQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
