package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gcat/gcat/pkg/logger"
)

func TestSafeGroup_RecoversPanic(t *testing.T) {
	g, _ := NewSafeGroup(context.Background(), logger.Discard())

	g.Go(func() error {
		panic("boom")
	})

	err := g.Wait()
	if err == nil {
		t.Fatal("Expected error from panicking goroutine")
	}
	if err.Error() != "worker panic: boom" {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSafeGroup_FirstErrorCancelsContext(t *testing.T) {
	g, ctx := NewSafeGroup(context.Background(), logger.Discard())
	want := errors.New("first")

	g.Go(func() error { return want })
	g.Go(func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := g.Wait(); !errors.Is(err, want) {
		t.Errorf("Expected %v, got %v", want, err)
	}
}

func TestSafeGroup_Limit(t *testing.T) {
	g, _ := NewSafeGroup(context.Background(), logger.Discard())
	g.SetLimit(2)

	var active, peak int32
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			atomic.AddInt32(&active, -1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if peak > 2 {
		t.Errorf("Expected at most 2 concurrent workers, saw %d", peak)
	}
}
