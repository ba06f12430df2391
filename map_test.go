package beetree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const B = DefaultFanout

func redirectTracing(t *testing.T) func() {
	t.Helper()
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func makeIntMap(t *testing.T, fanout int) *Map[int, int] {
	t.Helper()
	m, err := NewWithConfig[int, int](Config[int]{
		Fanout:  fanout,
		Compare: func(a, b int) int { return a - b },
	})
	if err != nil {
		t.Fatalf("failed to create map: %v", err)
	}
	return m
}

func mustCheck(t *testing.T, m *Map[int, int]) {
	t.Helper()
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func expectValue(t *testing.T, m *Map[int, int], key, want int) {
	t.Helper()
	got, ok := m.Get(key)
	if !ok {
		t.Fatalf("Get(%d): key not found, want %d", key, want)
	}
	if got != want {
		t.Fatalf("Get(%d) = %d, want %d", key, got, want)
	}
}

func expectAbsent(t *testing.T, m *Map[int, int], key int) {
	t.Helper()
	if got, ok := m.Get(key); ok {
		t.Fatalf("Get(%d) = %d, want not found", key, got)
	}
}

func TestGetFromEmpty(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	expectAbsent(t, m, 5)
	if p, ok := m.GetMut(5); ok || p != nil {
		t.Fatalf("GetMut on empty map returned %v, %v", p, ok)
	}
	if m.Len() != 0 || m.Height() != 0 || !m.IsEmpty() {
		t.Fatalf("unexpected empty map state len=%d height=%d", m.Len(), m.Height())
	}
	mustCheck(t, m)
}

func TestGetOne(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	m.Insert(2, 3)
	expectValue(t, m, 2, 3)
	expectAbsent(t, m, 1)
	expectAbsent(t, m, 3)
	if m.Len() != 1 || m.Height() != 1 {
		t.Fatalf("unexpected map state len=%d height=%d", m.Len(), m.Height())
	}
}

func TestInsertOrdered(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	for i := 10; i < 15; i++ {
		m.Insert(i, i*2)
	}
	expectValue(t, m, 12, 24)
	expectValue(t, m, 14, 28)
	expectAbsent(t, m, 16)
	expectAbsent(t, m, 7)
	mustCheck(t, m)
}

func TestInsertOrderedOverflow(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	for i := 10; i < 10+B*3; i++ {
		m.Insert(i, i*2)
		mustCheck(t, m)
	}
	if m.Height() < 2 {
		t.Fatalf("expected at least one split, height is %d", m.Height())
	}
	for i := 10; i < 10+B*3; i++ {
		expectValue(t, m, i, i*2)
	}
	expectAbsent(t, m, 7)
	expectAbsent(t, m, 15+B*3)
	if m.Len() != B*3 {
		t.Fatalf("Len() = %d, want %d", m.Len(), B*3)
	}
}

func TestInsertOrderedOverflowGetRandom(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	for i := 10; i < 10+B*3; i++ {
		m.Insert(i, i*2)
	}
	r := rand.New(rand.NewSource(42))
	for _, j := range r.Perm(B * 3) {
		i := j + 10
		expectValue(t, m, i, i*2)
	}
	expectAbsent(t, m, 7)
	expectAbsent(t, m, 15+B*3)
}

func TestGetHeadOfBranch(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	for i := 0; i < B*3; i++ {
		m.Insert(i, i*2)
	}
	expectValue(t, m, B/2, B)
}

func TestGetInNewBranch(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	for i := 0; i < B*3; i++ {
		m.Insert(i, i*2)
	}
	expectValue(t, m, B/2*3, B*3)
}

func TestGetIsIdempotent(t *testing.T) {
	m := makeIntMap(t, 4)
	for i := 0; i < 50; i++ {
		m.Insert(i*3, i)
	}
	for key := -1; key < 160; key++ {
		first, firstOK := m.Get(key)
		for j := 0; j < 3; j++ {
			again, ok := m.Get(key)
			if ok != firstOK || again != first {
				t.Fatalf("Get(%d) not stable: (%d,%v) then (%d,%v)", key, first, firstOK, again, ok)
			}
		}
	}
}

func TestInsertOrderIndependence(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	const n = 500
	for _, fanout := range []int{3, 4, 5, 8, B, 33} {
		ascending := makeIntMap(t, fanout)
		for i := 0; i < n; i++ {
			ascending.Insert(i, -i)
		}
		mustCheck(t, ascending)
		r := rand.New(rand.NewSource(int64(fanout)))
		for round := 0; round < 3; round++ {
			shuffled := makeIntMap(t, fanout)
			for _, i := range r.Perm(n) {
				shuffled.Insert(i, -i)
				mustCheck(t, shuffled)
			}
			if shuffled.Len() != ascending.Len() {
				t.Fatalf("fanout=%d: Len mismatch %d != %d", fanout, shuffled.Len(), ascending.Len())
			}
			for key := -5; key < n+5; key++ {
				v1, ok1 := ascending.Get(key)
				v2, ok2 := shuffled.Get(key)
				if v1 != v2 || ok1 != ok2 {
					t.Fatalf("fanout=%d key=%d: ascending=(%d,%v) shuffled=(%d,%v)",
						fanout, key, v1, ok1, v2, ok2)
				}
			}
		}
	}
}

func TestInsertReplacesExisting(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	for i := 0; i < B*3; i++ {
		m.Insert(i, i*2)
	}
	count := m.Len()
	// B/2 lives in a separator, B/2+1 in a terminal node
	for _, key := range []int{B / 2, B/2 + 1} {
		old, replaced := m.Insert(key, 1000+key)
		if !replaced || old != key*2 {
			t.Fatalf("Insert(%d) over existing: old=%d replaced=%v", key, old, replaced)
		}
		expectValue(t, m, key, 1000+key)
	}
	if m.Len() != count {
		t.Fatalf("Len changed on replace: %d != %d", m.Len(), count)
	}
	mustCheck(t, m)
}

func TestGetMut(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	m := New[int, int]()
	m.Insert(1, 1)
	p, ok := m.GetMut(1)
	if !ok || p == nil {
		t.Fatalf("GetMut(1) not found")
	}
	*p = 5
	expectValue(t, m, 1, 5)
	if p, ok := m.GetMut(2); ok || p != nil {
		t.Fatalf("GetMut(2) on absent key returned %v, %v", p, ok)
	}
}

func TestGetMutEveryLevel(t *testing.T) {
	m := makeIntMap(t, 3)
	for i := 0; i < 200; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < 200; i++ {
		p, ok := m.GetMut(i)
		if !ok {
			t.Fatalf("GetMut(%d) not found", i)
		}
		*p = i * 7
	}
	for i := 0; i < 200; i++ {
		expectValue(t, m, i, i*7)
	}
	mustCheck(t, m)
}

func TestGetMutSurvivesInternalSplit(t *testing.T) {
	m := makeIntMap(t, 3)
	for i := 0; i < 4; i++ {
		m.Insert(i, i)
	}
	// key 1 is promoted into the root separator by the first split
	p, ok := m.GetMut(1)
	if !ok {
		t.Fatalf("GetMut(1) not found")
	}
	for i := 4; i < 100; i++ {
		m.Insert(i, i)
	}
	*p = 42
	expectValue(t, m, 1, 42)
}

func TestStringKeysCustomOrder(t *testing.T) {
	m, err := NewWithConfig[string, int](Config[string]{
		Fanout:  4,
		Compare: func(a, b string) int { return strings.Compare(b, a) }, // descending
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	words := strings.Fields("the quick brown fox jumps over the lazy dog again and again")
	for i, w := range words {
		m.Insert(w, i)
	}
	if err := m.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if v, ok := m.Get("again"); !ok || v != 11 {
		t.Fatalf("Get(again) = %d, %v", v, ok)
	}
	if v, ok := m.Get("the"); !ok || v != 6 {
		t.Fatalf("Get(the) = %d, %v", v, ok)
	}
	if _, ok := m.Get("cat"); ok {
		t.Fatalf("Get(cat) unexpectedly found")
	}
	if m.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", m.Len())
	}
}

func TestStubsAreUnimplemented(t *testing.T) {
	m := New[int, int]()
	m.Insert(1, 1)
	if _, _, err := m.Delete(1); !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("expected ErrUnimplemented from Delete, got %v", err)
	}
	if _, _, err := m.GetBefore(1, true); !errors.Is(err, ErrUnimplemented) {
		t.Fatalf("expected ErrUnimplemented from GetBefore, got %v", err)
	}
	expectValue(t, m, 1, 1)
}

func TestNilMap(t *testing.T) {
	var m *Map[int, int]
	if _, ok := m.Get(1); ok {
		t.Fatalf("Get on nil map found a value")
	}
	if m.Len() != 0 || m.Height() != 0 || !m.IsEmpty() {
		t.Fatalf("unexpected nil map state")
	}
}
