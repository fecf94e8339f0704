package memory

import (
	"context"
	"sync"
	"testing"
)

func TestSlotStore(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing key
	if _, ok, err := db.Get(ctx, "s1:cart"); err != nil || ok {
		t.Fatalf("expected missing slot, got ok=%v err=%v", ok, err)
	}

	// Put and get
	if err := db.Put(ctx, "s1:cart", []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v, ok, err := db.Get(ctx, "s1:cart")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(v) != "[]" {
		t.Errorf("expected [], got %s", v)
	}

	// Overwrite, last writer wins
	_ = db.Put(ctx, "s1:cart", []byte(`[{"productId":1,"quantity":2}]`))
	v, _, _ = db.Get(ctx, "s1:cart")
	if string(v) != `[{"productId":1,"quantity":2}]` {
		t.Errorf("unexpected value after overwrite: %s", v)
	}

	// Other keys are independent
	_ = db.Put(ctx, "s1:user", []byte(`{}`))
	if db.Len() != 2 {
		t.Errorf("expected 2 slots, got %d", db.Len())
	}

	// Delete
	if err := db.Delete(ctx, "s1:cart"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := db.Get(ctx, "s1:cart"); ok {
		t.Error("expected slot to be deleted")
	}
	if err := db.Delete(ctx, "s1:cart"); err != nil {
		t.Errorf("deleting a missing slot: %v", err)
	}
}

func TestSlotStore_CopiesValues(t *testing.T) {
	db := New()
	ctx := context.Background()

	in := []byte("abc")
	_ = db.Put(ctx, "k", in)
	in[0] = 'x'

	out, _, _ := db.Get(ctx, "k")
	if string(out) != "abc" {
		t.Fatalf("stored value changed through caller slice: %s", out)
	}
	out[0] = 'y'
	again, _, _ := db.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("stored value changed through returned slice: %s", again)
	}
}

func TestSlotStore_Concurrent(t *testing.T) {
	db := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = db.Put(ctx, "shared", []byte("v"))
			_, _, _ = db.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	if _, ok, _ := db.Get(ctx, "shared"); !ok {
		t.Fatal("expected shared slot to exist")
	}
}
