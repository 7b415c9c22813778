package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redbull_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_purchases_total",
			Help: "Total number of plan purchases and gateway orders",
		},
		[]string{"method", "status"},
	)

	PaymentVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_payment_verifications_total",
			Help: "Gateway payment verifications by result",
		},
		[]string{"result"},
	)

	PayoutRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_payout_runs_total",
			Help: "Payout batch runs by result",
		},
		[]string{"result"},
	)

	PayoutPaiseTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redbull_payout_paise_total",
			Help: "Total paise disbursed by payout runs",
		},
	)

	PayoutUsersFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redbull_payout_users_failed_total",
			Help: "Users whose payout failed within a run",
		},
	)

	WithdrawalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_withdrawals_total",
			Help: "Withdrawal requests by resulting status",
		},
		[]string{"status"},
	)

	RechargesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_recharges_total",
			Help: "Manual recharges by resulting status",
		},
		[]string{"status"},
	)

	ReferralBonusesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redbull_referral_bonuses_total",
			Help: "Referral bonuses credited",
		},
	)

	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redbull_signups_total",
			Help: "Registered accounts",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redbull_notifications_sent_total",
			Help: "Total number of admin notifications sent",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "redbull_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordPurchase(method, status string) {
	PurchasesTotal.WithLabelValues(method, status).Inc()
}

func RecordVerification(result string) {
	PaymentVerificationsTotal.WithLabelValues(result).Inc()
}

// RecordPayoutRun counts a finished batch and what it disbursed.
func RecordPayoutRun(result string, disbursedPaise int64, usersFailed int) {
	PayoutRunsTotal.WithLabelValues(result).Inc()
	if disbursedPaise > 0 {
		PayoutPaiseTotal.Add(float64(disbursedPaise))
	}
	if usersFailed > 0 {
		PayoutUsersFailedTotal.Add(float64(usersFailed))
	}
}

func RecordWithdrawal(status string) {
	WithdrawalsTotal.WithLabelValues(status).Inc()
}

func RecordRecharge(status string) {
	RechargesTotal.WithLabelValues(status).Inc()
}

func RecordReferralBonus() {
	ReferralBonusesTotal.Inc()
}

func RecordSignup() {
	SignupsTotal.Inc()
}

func RecordNotification(notificationType, status string) {
	NotificationsSentTotal.WithLabelValues(notificationType, status).Inc()
}
