package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"machsight/internal/diagnostics"
	"machsight/internal/models/db_models"
)

// In-memory stand-ins for the repository interfaces. They model just enough
// store behavior (duplicate keys, atomic-ish updates) for the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*db_models.User
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*db_models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *db_models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) DecrementCredits(ctx context.Context, id string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Credits -= amount
	return nil
}

func (r *fakeUserRepo) credits(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].Credits
}

type fakeMachineRepo struct {
	machines []db_models.Machine
}

func (r *fakeMachineRepo) Create(ctx context.Context, machine *db_models.Machine) error {
	if machine.ID == uuid.Nil {
		machine.ID = uuid.New()
	}
	r.machines = append(r.machines, *machine)
	return nil
}

func (r *fakeMachineRepo) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Machine, error) {
	for _, m := range r.machines {
		if m.ID == id && m.UserID == userID {
			copied := m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMachineRepo) ListByUser(ctx context.Context, userID string) ([]db_models.Machine, error) {
	var out []db_models.Machine
	for _, m := range r.machines {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMachineRepo) ReportCounts(ctx context.Context, userID string) (map[uuid.UUID]int64, error) {
	return map[uuid.UUID]int64{}, nil
}

type fakeReportRepo struct {
	created []db_models.Report
}

func (r *fakeReportRepo) Create(ctx context.Context, report *db_models.Report) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	r.created = append(r.created, *report)
	return nil
}

func (r *fakeReportRepo) ListByUser(ctx context.Context, userID string, limit int) ([]db_models.Report, error) {
	var out []db_models.Report
	for _, rep := range r.created {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReportRepo) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Report, error) {
	for _, rep := range r.created {
		if rep.ID == id && rep.UserID == userID {
			copied := rep
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeGateway records calls and plays back a canned reply.
type fakeGateway struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (g *fakeGateway) Generate(ctx context.Context, prompt string, attachment *diagnostics.Attachment) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func (g *fakeGateway) Close() error { return nil }

type fakeTxnRepo struct {
	userRepo *fakeUserRepo
	txns     map[string]*db_models.Transaction // keyed by order id
	order    []string
}

func newFakeTxnRepo(userRepo *fakeUserRepo) *fakeTxnRepo {
	return &fakeTxnRepo{userRepo: userRepo, txns: make(map[string]*db_models.Transaction)}
}

func (r *fakeTxnRepo) Create(ctx context.Context, txn *db_models.Transaction) error {
	if _, ok := r.txns[txn.RazorpayOrderID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	copied := *txn
	r.txns[txn.RazorpayOrderID] = &copied
	r.order = append(r.order, txn.RazorpayOrderID)
	return nil
}

func (r *fakeTxnRepo) MarkFailed(ctx context.Context, orderID string) error {
	if txn, ok := r.txns[orderID]; ok && txn.Status == db_models.TxnStatusPending {
		txn.Status = db_models.TxnStatusFailed
	}
	return nil
}

func (r *fakeTxnRepo) ApplySuccessAndGrant(ctx context.Context, orderID, paymentID string) (*db_models.Transaction, error) {
	txn, ok := r.txns[orderID]
	if !ok {
		return nil, nil
	}
	if txn.Status.Terminal() {
		copied := *txn
		return &copied, nil
	}

	txn.Status = db_models.TxnStatusSuccess
	txn.RazorpayPaymentID = paymentID

	if r.userRepo != nil {
		r.userRepo.mu.Lock()
		if u, ok := r.userRepo.users[txn.UserID]; ok {
			u.Credits += txn.CreditsAdded
			if txn.PlanType != "" {
				u.Plan = txn.PlanType
			}
		}
		r.userRepo.mu.Unlock()
	}

	copied := *txn
	return &copied, nil
}

func (r *fakeTxnRepo) ListByUser(ctx context.Context, userID string) ([]db_models.Transaction, error) {
	// newest first: reverse insertion order
	var out []db_models.Transaction
	for i := len(r.order) - 1; i >= 0; i-- {
		txn := r.txns[r.order[i]]
		if txn.UserID == userID {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) FindPendingByUser(ctx context.Context, userID string) (*db_models.Transaction, error) {
	for i := len(r.order) - 1; i >= 0; i-- {
		txn := r.txns[r.order[i]]
		if txn.UserID == userID && txn.Status == db_models.TxnStatusPending {
			copied := *txn
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTxnRepo) FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*db_models.Transaction, error) {
	for _, txn := range r.txns {
		if txn.ID == id && txn.UserID == userID {
			copied := *txn
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeOrderCreator struct {
	calls       int
	lastAmount  int64
	lastReceipt string
	err         error
}

func (f *fakeOrderCreator) CreateOrder(ctx context.Context, amountPaise int64, currency, receipt string) (string, error) {
	f.calls++
	f.lastAmount = amountPaise
	f.lastReceipt = receipt
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("order_fake_%d", f.calls), nil
}
