package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todo-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-service/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("db")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("cache")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["cache"] != nil {
		t.Errorf("cache check = %v, want nil", results["cache"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("db")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("migrations")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["migrations"] == nil {
		t.Fatal("migrations check = nil, want error")
	}
	if results["migrations"].Error() != "connection refused" {
		t.Errorf("migrations check = %q, want %q", results["migrations"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("migrations")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled).Maybe()

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["migrations"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["migrations"])
	}
}

func TestCheckAll_AppliesCheckTimeout(t *testing.T) {
	t.Parallel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("database")
	checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(10 * time.Millisecond))
	r.Register(checker)

	results := r.CheckAll(context.Background())

	if !errors.Is(results["database"], context.DeadlineExceeded) {
		t.Errorf("database check = %v, want context.DeadlineExceeded", results["database"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("db")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("db")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["db"]
	if !ok {
		t.Fatal(`expected result for key "db", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("db check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
