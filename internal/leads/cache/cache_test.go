package cache

import (
	"context"
	"testing"
	"time"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return New(client, time.Minute, logger.New("development"))
}

func TestSnapshot_RoundTrip(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	leads := []domain.Lead{
		{ID: "a", FirstName: "Alice", LeadGrade: domain.GradeHot, Status: domain.StatusNew, LeadScore: 90},
	}

	snap.Set(ctx, "ContactForm|q||highest|100", leads)

	got, ok := snap.Get(ctx, "ContactForm|q||highest|100")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if len(got) != 1 || got[0].ID != "a" || got[0].LeadGrade != domain.GradeHot {
		t.Fatalf("unexpected cached leads: %+v", got)
	}
}

func TestSnapshot_MissOnUnknownKey(t *testing.T) {
	snap := testSnapshot(t)

	if _, ok := snap.Get(context.Background(), "nope"); ok {
		t.Fatalf("expected cache miss")
	}
}

func TestSnapshot_InvalidateAllDropsEverySnapshot(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	snap.Set(ctx, "k1", []domain.Lead{{ID: "a"}})
	snap.Set(ctx, "k2", []domain.Lead{{ID: "b"}})

	snap.InvalidateAll(ctx)

	if _, ok := snap.Get(ctx, "k1"); ok {
		t.Fatalf("expected k1 invalidated")
	}
	if _, ok := snap.Get(ctx, "k2"); ok {
		t.Fatalf("expected k2 invalidated")
	}
}

func TestSnapshot_NilClientIsDisabled(t *testing.T) {
	snap := New(nil, time.Minute, logger.New("development"))
	ctx := context.Background()

	snap.Set(ctx, "k", []domain.Lead{{ID: "a"}})
	if _, ok := snap.Get(ctx, "k"); ok {
		t.Fatalf("expected disabled cache to always miss")
	}
	snap.InvalidateAll(ctx)
}
