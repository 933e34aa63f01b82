package clip

import (
	"errors"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindAuto, false},
		{"auto", KindAuto, false},
		{"Native", KindNative, false},
		{" command ", KindCommand, false},
		{"x11", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(Kind("bogus")); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	if _, err := m.ReadText(); !errors.Is(err, ErrNoText) {
		t.Fatalf("empty ReadText err = %v, want ErrNoText", err)
	}
	c0 := m.ChangeCount()

	if err := m.WriteText("hello"); err != nil {
		t.Fatal(err)
	}
	if got, err := m.ReadText(); err != nil || got != "hello" {
		t.Fatalf("ReadText = (%q, %v), want hello", got, err)
	}
	c1 := m.ChangeCount()
	if c1 == c0 {
		t.Error("expected change count to move on write")
	}

	m.Clear()
	if _, err := m.ReadText(); !errors.Is(err, ErrNoText) {
		t.Fatalf("ReadText after Clear err = %v, want ErrNoText", err)
	}
	if m.ChangeCount() == c1 {
		t.Error("expected change count to move on clear")
	}
}

func TestElapsedCounter(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	c := newElapsedCounter(func() time.Time { return now })

	steps := []struct {
		offset time.Duration
		want   uint64
	}{
		{0, 0},
		{500 * time.Millisecond, 0},
		{999 * time.Millisecond, 0},
		{time.Second, 1},
		{2500 * time.Millisecond, 2},
		{-time.Second, 0}, // clock stepped backwards
	}
	for _, s := range steps {
		now = base.Add(s.offset)
		if got := c.ChangeCount(); got != s.want {
			t.Errorf("at +%v ChangeCount() = %d, want %d", s.offset, got, s.want)
		}
	}
}

func TestElapsedCountersAreIndependent(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	clock := func() time.Time { return now }

	a := newElapsedCounter(clock)
	now = base.Add(3 * time.Second)
	b := newElapsedCounter(clock)

	if a.ChangeCount() != 3 || b.ChangeCount() != 0 {
		t.Errorf("a=%d b=%d, want a=3 b=0", a.ChangeCount(), b.ChangeCount())
	}
}
