package kaos

import (
	"errors"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// The scenarios below pin end-to-end behavior across flavors, orders
// and both insertion directions.

func TestScenarioMultiMapBothDirections(t *testing.T) {
	m := NewMultiMap[int, int](WithOrder(5))
	for i := 9; i >= 1; i-- {
		m.Add(i, -i)
	}
	for i := 1; i <= 9; i++ {
		m.Add(i, -i)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if m.Len() != 18 {
		t.Fatalf("Len = %d, want 18", m.Len())
	}
	k, v, err := m.First()
	if err != nil || k != 1 || v != -1 {
		t.Fatalf("First = (%d, %d, %v), want (1, -1)", k, v, err)
	}
	k, v, err = m.Last()
	if err != nil || k != 9 || v != -9 {
		t.Fatalf("Last = (%d, %d, %v), want (9, -9)", k, v, err)
	}
	if got := m.GetCount(5); got != 2 {
		t.Fatalf("GetCount(5) = %d, want 2", got)
	}
	if got := m.IndexOf(5); got != 8 {
		t.Fatalf("IndexOf(5) = %d, want 8", got)
	}
}

func TestScenarioSetRemoveAt(t *testing.T) {
	s := NewSet[int](WithOrder(4))
	for i := 0; i < 100; i++ {
		if !s.Add(i) {
			t.Fatalf("Add(%d) reported duplicate", i)
		}
	}
	if err := s.RemoveAt(50); err != nil {
		t.Fatalf("RemoveAt(50): %v", err)
	}
	if err := s.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if s.Len() != 99 {
		t.Fatalf("Len = %d, want 99", s.Len())
	}
	if k, err := s.At(50); err != nil || k != 51 {
		t.Fatalf("At(50) = (%d, %v), want 51", k, err)
	}
	if k, err := s.At(49); err != nil || k != 49 {
		t.Fatalf("At(49) = (%d, %v), want 49", k, err)
	}
	if got := s.IndexOf(50); got != ^50 {
		t.Fatalf("IndexOf(50) = %d, want %d", got, ^50)
	}
}

func TestScenarioMultiMapStableEquals(t *testing.T) {
	m := NewMultiMap[string, int](WithOrder(128))
	m.Add("0zero", 0)
	m.Add("1one", -1)
	m.Add("1one", -2)

	keys := m.Keys()
	if k, err := keys.At(0); err != nil || k != "0zero" {
		t.Fatalf("keys[0] = (%q, %v), want 0zero", k, err)
	}
	for _, i := range []int{1, 2} {
		if k, err := keys.At(i); err != nil || k != "1one" {
			t.Fatalf("keys[%d] = (%q, %v), want 1one", i, k, err)
		}
	}
	if v, err := m.Values().At(2); err != nil || v != -2 {
		t.Fatalf("values[2] = (%d, %v), want -2", v, err)
	}
}

func TestScenarioReverseEnumeratorInvalidatedByClear(t *testing.T) {
	b := NewBag[int](WithOrder(6))
	for i := 9; i >= 1; i-- {
		b.Add(i)
	}
	e := b.IterReverse()
	for e.MoveNext() {
		if e.Key() == 4 {
			b.Clear()
			break
		}
	}
	if e.MoveNext() {
		t.Fatal("MoveNext succeeded after Clear")
	}
	if !errors.Is(e.Err(), ErrStale) {
		t.Fatalf("Err = %v, want ErrStale", e.Err())
	}
}

func TestScenarioReverseScan(t *testing.T) {
	s := NewSet[int]()
	for i := 1; i <= 500; i++ {
		s.Add(i)
	}
	want := 500
	yields := 0
	for k := range s.Reverse() {
		if k != want {
			t.Fatalf("reverse yielded %d, want %d", k, want)
		}
		want--
		yields++
	}
	if yields != 500 {
		t.Fatalf("yields = %d, want 500", yields)
	}
}

func TestScenarioValuesCopyToOffset(t *testing.T) {
	m := NewMap[int, int](WithOrder(4))
	for k := 0; k <= 9; k++ {
		m.Set(k, k+1000)
	}
	buffer := make([]int, 15)
	if err := m.Values().CopyTo(buffer, 5); err != nil {
		t.Fatalf("CopyTo: %v", err)
	}
	for i := 0; i < 10; i++ {
		if buffer[5+i] != 1000+i {
			t.Fatalf("buffer[%d] = %d, want %d", 5+i, buffer[5+i], 1000+i)
		}
	}
}
