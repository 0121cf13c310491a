package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestSaveAndGet(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()
	ctx := context.Background()

	src := "int32_t main() {\n  return 0;\n}\n"
	id, err := st.Save(ctx, "demo", []string{"fib", "main"}, src)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	rec, err := st.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if rec.Name != "demo" || rec.Source != src {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.Funcs) != 2 || rec.Funcs[0] != "fib" || rec.Funcs[1] != "main" {
		t.Fatalf("unexpected funcs: %v", rec.Funcs)
	}
}

func TestListNewestFirst(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := st.Save(ctx, name, nil, ""); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	recs, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 3 || recs[0].Name != "c" || recs[2].Name != "a" {
		t.Fatalf("unexpected order: %+v", recs)
	}
	if recs[0].Funcs != nil {
		t.Fatalf("expected no funcs, got %v", recs[0].Funcs)
	}
}

func TestGetMissing(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer st.Close()
	if _, err := st.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
