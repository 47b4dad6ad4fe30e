package lowstock_test

import (
	"context"
	"testing"
	"time"

	"camerashop-be/internal/lowstock"
	"camerashop-be/internal/models"
	"camerashop-be/internal/repository"
	"camerashop-be/internal/testutil"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func seed(t *testing.T, repo *repository.Repository, name string, stock int, active bool) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Slug: name, Price: decimal.NewFromInt(1000), StockQuantity: stock, IsActive: active}
	if err := repo.Products.Create(context.Background(), p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestMonitor_Scan(t *testing.T) {
	repo := repository.New(testutil.SetupShopDB(t))
	ctx := context.Background()

	seed(t, repo, "plenty", 50, true)
	low := seed(t, repo, "low", 3, true)
	seed(t, repo, "edge", 5, true)
	seed(t, repo, "retired", 0, false)

	m := lowstock.NewMonitor(repo, 5, zap.NewNop())

	n, err := m.Scan(ctx)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if n != 2 {
		t.Fatalf("created = %d, want 2", n)
	}

	// unread notifications are not duplicated
	n, err = m.Scan(ctx)
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}
	if n != 0 {
		t.Fatalf("second scan created = %d, want 0", n)
	}

	unread, err := m.CountUnread(ctx)
	if err != nil || unread != 2 {
		t.Fatalf("unread = %d err=%v", unread, err)
	}

	rows, _, err := m.List(ctx, true, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range rows {
		if r.ProductID == low.ID {
			if r.CurrentStock != 3 || r.Threshold != 5 {
				t.Fatalf("notification = %+v", r)
			}
			if ok, err := m.MarkRead(ctx, r.ID); err != nil || !ok {
				t.Fatalf("mark read: %v %v", ok, err)
			}
		}
	}

	n, err = m.Scan(ctx)
	if err != nil {
		t.Fatalf("third scan: %v", err)
	}
	if n != 1 {
		t.Fatalf("after read, created = %d, want 1", n)
	}
}

func TestScheduler_ScansOnStartAndStops(t *testing.T) {
	repo := repository.New(testutil.SetupShopDB(t))
	seed(t, repo, "scarce", 1, true)

	m := lowstock.NewMonitor(repo, 0, zap.NewNop())
	s := lowstock.NewScheduler(m, time.Hour, zap.NewNop())
	s.Start(context.Background())

	deadline := time.Now().Add(10 * time.Second)
	for {
		n, err := m.CountUnread(context.Background())
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("initial scan did not run")
		}
		time.Sleep(50 * time.Millisecond)
	}

	s.Stop()
	s.Stop()

	if n, err := s.RunOnceNow(context.Background()); err != nil || n != 0 {
		t.Fatalf("run once: n=%d err=%v", n, err)
	}
}
