package recharge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Bhishaj9/redbull-backend/internal/api"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, s Submitter, amountPaise int64, utr, method string) (*Recharge, error) {
	args := m.Called(ctx, s, amountPaise, utr, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Recharge), args.Error(1)
}

func (m *MockRepository) Process(ctx context.Context, id int, action, note string, now time.Time) (*Recharge, error) {
	args := m.Called(ctx, id, action, note, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Recharge), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID int) ([]Recharge, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Recharge), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context, limit int) ([]Recharge, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]Recharge), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) RechargeSubmitted(ctx context.Context, phone string, amountPaise int64, utr string) error {
	args := m.Called(ctx, phone, amountPaise, utr)
	return args.Error(0)
}

func TestService_Submit(t *testing.T) {
	sub := Submitter{ID: 1, Phone: "9876543210"}

	tests := []struct {
		name    string
		req     SubmitRequest
		setup   func(*MockRepository, *MockNotifier)
		wantErr error
	}{
		{
			name: "defaults method to upi",
			req:  SubmitRequest{Amount: decimal.NewFromInt(500), UTR: " 412345678901 "},
			setup: func(r *MockRepository, n *MockNotifier) {
				r.On("Create", mock.Anything, sub, int64(50000), "412345678901", "upi").
					Return(&Recharge{ID: 3, Status: StatusPending}, nil)
				n.On("RechargeSubmitted", mock.Anything, "9876543210", int64(50000), "412345678901").Return(nil)
			},
		},
		{
			name: "keeps an explicit method",
			req:  SubmitRequest{Amount: decimal.NewFromInt(500), UTR: "412345678901", Method: "IMPS"},
			setup: func(r *MockRepository, n *MockNotifier) {
				r.On("Create", mock.Anything, sub, int64(50000), "412345678901", "imps").
					Return(&Recharge{ID: 4, Status: StatusPending}, nil)
				n.On("RechargeSubmitted", mock.Anything, "9876543210", int64(50000), "412345678901").
					Return(errors.New("redis down"))
			},
		},
		{
			name:    "zero amount",
			req:     SubmitRequest{Amount: decimal.Zero, UTR: "412345678901"},
			wantErr: api.ErrValidation,
		},
		{
			name:    "blank utr",
			req:     SubmitRequest{Amount: decimal.NewFromInt(500), UTR: "   "},
			wantErr: api.ErrValidation,
		},
		{
			name: "duplicate utr",
			req:  SubmitRequest{Amount: decimal.NewFromInt(500), UTR: "412345678901"},
			setup: func(r *MockRepository, n *MockNotifier) {
				r.On("Create", mock.Anything, sub, int64(50000), "412345678901", "upi").Return(nil, ErrDuplicateUTR)
			},
			wantErr: ErrDuplicateUTR,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			notifier := new(MockNotifier)
			if tt.setup != nil {
				tt.setup(repo, notifier)
			}

			r, err := NewService(repo, notifier).Submit(context.Background(), sub, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
			} else {
				require.NoError(t, err)
				assert.Equal(t, StatusPending, r.Status)
			}
			repo.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestService_Process(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Process", mock.Anything, 3, ActionApprove, "", mock.Anything).
			Return(&Recharge{ID: 3, Status: StatusApproved}, nil)

		r, err := NewService(repo, nil).Process(context.Background(), 3, ProcessRequest{Action: ActionApprove})

		require.NoError(t, err)
		assert.Equal(t, StatusApproved, r.Status)
	})

	t.Run("unknown action", func(t *testing.T) {
		repo := new(MockRepository)

		_, err := NewService(repo, nil).Process(context.Background(), 3, ProcessRequest{Action: "accept"})

		assert.ErrorIs(t, err, api.ErrValidation)
		repo.AssertNotCalled(t, "Process")
	})
}
