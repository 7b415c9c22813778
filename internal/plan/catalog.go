package plan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"
	"github.com/Bhishaj9/redbull-backend/internal/logger"

	"github.com/google/uuid"
)

var ErrPlanNotFound = fmt.Errorf("plan: %w", api.ErrNotFound)

// Terms are the admin-supplied economics of a new plan, already in paise.
type Terms struct {
	Name       string
	PricePaise int64
	DailyPaise int64
	Days       int
	Image      string
	Type       string
	TimerHours int
	Diamond    bool
}

// Catalog is the read-mostly plan store. Reads are served from memory;
// writes go to the repository first and are indexed only after they persist.
type Catalog struct {
	repo Repository

	mu    sync.RWMutex
	byID  map[string]Plan
	order []string
}

func NewCatalog(repo Repository) *Catalog {
	return &Catalog{
		repo: repo,
		byID: make(map[string]Plan),
	}
}

// Load seeds an empty table with the default plans and then reads every plan into memory.
func (c *Catalog) Load(ctx context.Context) error {
	seeded, err := c.repo.SeedDefaults(ctx, DefaultPlans())
	if err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	if seeded > 0 {
		logger.Info("seeded default plans", "count", seeded)
	}

	plans, err := c.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("load plans: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = make(map[string]Plan, len(plans))
	c.order = c.order[:0]
	for _, p := range plans {
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return nil
}

// List returns plans in creation order.
func (c *Catalog) List() []View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	views := make([]View, 0, len(c.order))
	for _, id := range c.order {
		p := c.byID[id]
		views = append(views, View{Plan: p, AvailableAt: p.AvailableAt()})
	}
	return views
}

func (c *Catalog) Get(id string) (Plan, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (c *Catalog) Create(ctx context.Context, t Terms) (*Plan, error) {
	if t.Name == "" {
		return nil, fmt.Errorf("name is required: %w", api.ErrValidation)
	}
	if t.PricePaise <= 0 || t.DailyPaise <= 0 {
		return nil, fmt.Errorf("price and daily must be positive: %w", api.ErrValidation)
	}
	if t.Type == "" {
		t.Type = TypeBuy
	}
	if t.Type != TypeBuy && t.Type != TypeTimer {
		return nil, fmt.Errorf("unknown plan type %q: %w", t.Type, api.ErrValidation)
	}
	if t.Days == 0 && t.Type == TypeTimer {
		t.Days = DefaultTimerDays
	}
	if t.Days <= 0 || t.Days > MaxDays {
		return nil, fmt.Errorf("days must be within 1..%d: %w", MaxDays, api.ErrValidation)
	}
	if t.TimerHours < 0 || t.TimerHours > MaxTimerHours {
		return nil, fmt.Errorf("timer hours must be within 0..%d: %w", MaxTimerHours, api.ErrValidation)
	}
	if t.Type == TypeBuy {
		t.TimerHours = 0
	}

	created, err := c.repo.Create(ctx, Plan{
		ID:         uuid.NewString(),
		Name:       t.Name,
		PricePaise: t.PricePaise,
		DailyPaise: t.DailyPaise,
		Days:       t.Days,
		Image:      t.Image,
		Type:       t.Type,
		TimerHours: t.TimerHours,
		Diamond:    t.Diamond,
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[created.ID] = *created
	c.order = append(c.order, created.ID)
	c.mu.Unlock()

	logger.Info("plan created", "plan_id", created.ID, "type", created.Type)
	return created, nil
}

// CheckPurchasable resolves id and rejects plans whose activation delay has not elapsed.
func (c *Catalog) CheckPurchasable(id string, now time.Time) (Plan, error) {
	p, err := c.Get(id)
	if err != nil {
		return Plan{}, err
	}
	if !p.IsAvailable(now) {
		return Plan{}, fmt.Errorf("plan %s is available from %s: %w", p.ID, p.AvailableAt().Format(time.RFC3339), api.ErrValidation)
	}
	return p, nil
}
