package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeBuy   = "buy"
	TypeTimer = "timer"

	// DefaultTimerDays bounds timer-activated plans that are not duration-bound.
	DefaultTimerDays = 999

	// Upper bounds keep expiry arithmetic inside time.Duration.
	MaxDays       = 36500
	MaxTimerHours = 87600
)

// Plan is a catalog entry.
type Plan struct {
	Seq        int64     `db:"seq" json:"-"`
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	PricePaise int64     `db:"price_paise" json:"price_paise"`
	DailyPaise int64     `db:"daily_paise" json:"daily_paise"`
	Days       int       `db:"days" json:"days"`
	Image      string    `db:"image" json:"image"`
	Type       string    `db:"type" json:"type"`
	TimerHours int       `db:"timer_hours" json:"timer_hours"`
	Diamond    bool      `db:"diamond" json:"diamond"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// AvailableAt is when the plan becomes purchasable.
func (p Plan) AvailableAt() time.Time {
	return p.CreatedAt.Add(time.Duration(p.TimerHours) * time.Hour)
}

func (p Plan) IsAvailable(now time.Time) bool {
	return !now.Before(p.AvailableAt())
}

type View struct {
	Plan
	AvailableAt time.Time `json:"available_at"`
}

type CreatePlanRequest struct {
	Name       string          `json:"name" binding:"required,max=100"`
	Price      decimal.Decimal `json:"price"`
	Daily      decimal.Decimal `json:"daily"`
	Days       int             `json:"days" binding:"gte=0,lte=36500"`
	Image      string          `json:"image"`
	Type       string          `json:"type" binding:"omitempty,oneof=buy timer"`
	TimerHours int             `json:"timerHours" binding:"gte=0,lte=87600"`
	Diamond    bool            `json:"diamond"`
}

// Instance is a user's owned copy of a plan. Economics are copied at purchase
// time so later catalog changes never affect it.
type Instance struct {
	ID                 int       `db:"id" json:"id"`
	UserID             int       `db:"user_id" json:"user_id"`
	PlanID             string    `db:"plan_id" json:"plan_id"`
	Name               string    `db:"name" json:"name"`
	PricePaise         int64     `db:"price_paise" json:"price_paise"`
	DailyPaise         int64     `db:"daily_paise" json:"daily_paise"`
	Days               int       `db:"days" json:"days"`
	PurchaseID         *int      `db:"purchase_id" json:"purchase_id,omitempty"`
	PurchasedAt        time.Time `db:"purchased_at" json:"purchased_at"`
	ExpiresAt          time.Time `db:"expires_at" json:"expires_at"`
	LastCreditedAt     time.Time `db:"last_credited_at" json:"last_credited_at"`
	TotalCreditedPaise int64     `db:"total_credited_paise" json:"total_credited_paise"`
}

func NewInstance(userID int, p Plan, now time.Time) Instance {
	return Instance{
		UserID:         userID,
		PlanID:         p.ID,
		Name:           p.Name,
		PricePaise:     p.PricePaise,
		DailyPaise:     p.DailyPaise,
		Days:           p.Days,
		PurchasedAt:    now,
		ExpiresAt:      now.Add(time.Duration(p.Days) * 24 * time.Hour),
		LastCreditedAt: now,
	}
}

// CapPaise is the most this instance can ever pay out.
func (i Instance) CapPaise() int64 {
	return i.DailyPaise * int64(i.Days)
}

func (i Instance) Exhausted() bool {
	return i.TotalCreditedPaise >= i.CapPaise()
}

func (i Instance) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// DueAt reports whether a payout credit applies at now. Cadence is one credit
// per calendar day in loc, not one per elapsed 24 hours.
func (i Instance) DueAt(now time.Time, loc *time.Location) bool {
	if i.Expired(now) || i.Exhausted() {
		return false
	}
	return !sameDay(i.LastCreditedAt, now, loc)
}

// NextCredit is the amount a due instance receives, clipped to the cap.
func (i Instance) NextCredit() int64 {
	remaining := i.CapPaise() - i.TotalCreditedPaise
	if remaining < i.DailyPaise {
		return remaining
	}
	return i.DailyPaise
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
