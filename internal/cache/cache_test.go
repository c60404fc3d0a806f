package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("a", "one")
	v, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit")
	}
	if v != "one" {
		t.Errorf("expected %q, got %q", "one", v)
	}
}

func TestCache_Miss(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](10 * time.Millisecond)
	defer c.Close()

	c.Set("a", "one")
	time.Sleep(30 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Error("expected entry to have expired")
	}
}

func TestCache_Delete(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("a", "one")
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected entry to be gone")
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := New[string](time.Minute)
	defer c.Close()

	c.Set("a", "one")
	c.Set("a", "two")
	v, _ := c.Get("a")
	if v != "two" {
		t.Errorf("expected %q, got %q", "two", v)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", c.Len())
	}
}

func TestCache_CloseIdempotent(t *testing.T) {
	c := New[string](time.Minute)
	c.Close()
	c.Close()
}
