package Maps

import (
	"errors"
	"maps"
	"math/rand"
	"slices"
	"strings"
	"testing"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

func pairs(kv ...int) []Go_Containers.Pair[int, int] {
	s := make([]Go_Containers.Pair[int, int], 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		s = append(s, Go_Containers.MakePair(kv[i], kv[i+1]))
	}
	return s
}

func TestTreeMap_Basic(t *testing.T) {
	m := New[int, string]()
	if !m.Empty() || m.Size() != 0 || m.Begin() != m.End() {
		t.Fatalf("new map is not empty")
	}
	if it, ok := m.Insert(2, "b"); !ok || it.Key() != 2 || it.Value() != "b" {
		t.Errorf("Insert(2) failed")
	}
	m.Insert(1, "a")
	if it, ok := m.Insert(2, "x"); ok || it.Value() != "b" {
		t.Errorf("Insert of an existing key changed the value")
	}
	if !m.Contains(1) || m.Contains(3) || m.Size() != 2 || m.Empty() {
		t.Errorf("Contains or Size is wrong")
	}
	if s := m.String(); s != "map[1:a 2:b]" {
		t.Errorf("String is %q", s)
	}
	if !m.Delete(1) || m.Delete(1) || m.Size() != 1 {
		t.Errorf("Delete is wrong")
	}
	m.Erase(m.End())
	m.Erase(m.Find(2))
	if !m.Empty() || m.String() != "map[]" {
		t.Errorf("map should be empty, is %v", m)
	}
	if m.MaxSize() == 0 {
		t.Errorf("MaxSize is 0")
	}
}

func TestTreeMap_InsertOrAssign(t *testing.T) {
	m := New[string, int]()
	if _, ok := m.InsertOrAssign("a", 1); !ok {
		t.Errorf("InsertOrAssign of a new key should insert")
	}
	it, ok := m.InsertOrAssign("a", 2)
	if ok || it.Value() != 2 {
		t.Errorf("InsertOrAssign should assign 2, got %d", it.Value())
	}
	if v, err := m.At("a"); err != nil || v != 2 || m.Size() != 1 {
		t.Errorf("At(a) is %d, %v", v, err)
	}
	if it, ok := m.InsertPair(Go_Containers.MakePair("b", 3)); !ok || it.Key() != "b" {
		t.Errorf("InsertPair failed")
	}
}

func TestTreeMap_At(t *testing.T) {
	m := From(pairs(1, 10, 2, 20)...)
	if v, err := m.At(2); err != nil || v != 20 {
		t.Errorf("At(2) is %d, %v", v, err)
	}
	v, err := m.At(3)
	var knf *KeyNotFoundError[int]
	if !errors.As(err, &knf) || knf.Key != 3 || v != 0 {
		t.Fatalf("At(3) should fail with KeyNotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("error message %q doesn't name the key", err)
	}
	if m.Size() != 2 {
		t.Errorf("At inserted a key")
	}
}

func TestTreeMap_Index(t *testing.T) {
	m := New[string, int]()
	for _, w := range strings.Fields("a b a c b a") {
		*m.Index(w)++
	}
	want := map[string]int{"a": 3, "b": 2, "c": 1}
	if got := maps.Collect(m.All()); !maps.Equal(got, want) {
		t.Errorf("counts are %v, want %v", got, want)
	}
	if p := m.Index("d"); *p != 0 || m.Size() != 4 {
		t.Errorf("Index should insert the zero value")
	}
}

func TestTreeMap_From(t *testing.T) {
	m := From(pairs(3, 1, 1, 2, 3, 3, 2, 4)...)
	if s := m.String(); s != "map[1:2 2:4 3:1]" {
		t.Errorf("From kept the wrong duplicate: %s", s)
	}
	res := m.InsertMany(pairs(5, 5, 1, 0, 5, 6)...)
	if len(res) != 3 || !res[0].Inserted || res[1].Inserted || res[2].Inserted {
		t.Fatalf("InsertMany results are wrong: %v", res)
	}
	if res[2].It != res[0].It || res[1].It.Value() != 2 {
		t.Errorf("InsertMany iterators are wrong")
	}
	r := FromFunc(func(a, b int) bool { return a > b }, pairs(1, 1, 3, 3, 2, 2)...)
	if got := slices.Collect(r.Keys()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Errorf("descending map iterates %v", got)
	}
}

func TestTreeMap_Merge(t *testing.T) {
	m := From(pairs(1, 1, 4, 4, 2, 2)...)
	other := From(pairs(3, 3, 4, 4)...)
	m.Merge(other)
	if got := slices.Collect(m.Keys()); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("merged keys are %v", got)
	}
	if other.Size() != 1 || !other.Contains(4) {
		t.Errorf("other should keep only the colliding key, is %v", other)
	}
	m.Merge(m)
	if m.Size() != 4 {
		t.Errorf("merging with itself changed the size")
	}
	e := New[int, int]()
	e.Merge(m)
	if e.Size() != 4 || !m.Empty() {
		t.Errorf("merging into an empty map should move everything")
	}
}

func TestTreeMap_SwapCloneMove(t *testing.T) {
	a, b := From(pairs(1, 1, 2, 2)...), From(pairs(7, 7)...)
	it := a.Find(2)
	a.Swap(b)
	if a.Size() != 1 || b.Size() != 2 || !a.Contains(7) {
		t.Fatalf("Swap didn't exchange contents")
	}
	b.Erase(it)
	if b.Contains(2) || b.Size() != 1 {
		t.Errorf("an iterator should follow its element across Swap")
	}
	c := b.Clone()
	c.Insert(9, 9)
	*c.Index(1) = 100
	if b.Contains(9) || b.Find(1).Value() != 1 {
		t.Errorf("Clone shares state with the original")
	}
	held := c.Find(9)
	d := c.Move()
	if !c.Empty() || d.Size() != 2 || held.Value() != 9 {
		t.Fatalf("Move should leave the source empty")
	}
	c.Erase(held)
	d.Erase(held)
	if d.Contains(9) {
		t.Errorf("iterators should move with the elements")
	}
	c.Insert(5, 5)
	if c.Size() != 1 || d.Contains(5) {
		t.Errorf("moved-from map isn't reusable")
	}
	d.Clear()
	if !d.Empty() || d.Begin() != d.End() {
		t.Errorf("Clear left elements behind")
	}
}

func TestTreeMap_Traversal(t *testing.T) {
	m := New[int, int]()
	for _, k := range rg.Perm(100) {
		m.Insert(k, k*k)
	}
	var fwd, bwd []int
	for k, v := range m.All() {
		if v != k*k {
			t.Fatalf("value of %d is %d", k, v)
		}
		fwd = append(fwd, k)
	}
	for k := range m.Backward() {
		bwd = append(bwd, k)
	}
	slices.Reverse(bwd)
	if !slices.Equal(fwd, bwd) || len(fwd) != 100 || !slices.IsSorted(fwd) {
		t.Errorf("All and Backward disagree")
	}
	n := 0
	for range m.All() {
		if n++; n == 10 {
			break
		}
	}
	for k := range m.Backward() {
		if k != 99 {
			t.Errorf("Backward should start at the largest key")
		}
		break
	}
	if it := m.End().Prev(); it.Key() != 99 {
		t.Errorf("Prev of End is %d", it.Key())
	}
}

// TestTreeMap_Bounds checks LowerBound and UpperBound against google/btree.
func TestTreeMap_Bounds(t *testing.T) {
	m := New[int, int]()
	ref := btree.NewG[int](8, btree.Less[int]())
	for range 500 {
		k := rg.Intn(1000) * 3
		m.Insert(k, k)
		ref.ReplaceOrInsert(k)
	}
	ceil := func(k int) (int, bool) {
		var c int
		found := false
		ref.AscendGreaterOrEqual(k, func(x int) bool {
			c, found = x, true
			return false
		})
		return c, found
	}
	for k := -2; k <= 3002; k++ {
		lb := m.LowerBound(k)
		if c, ok := ceil(k); ok == lb.IsEnd() || ok && c != lb.Key() {
			t.Fatalf("LowerBound(%d) differs from btree", k)
		}
		ub := m.UpperBound(k)
		if c, ok := ceil(k + 1); ok == ub.IsEnd() || ok && c != ub.Key() {
			t.Fatalf("UpperBound(%d) differs from btree", k)
		}
		if m.Contains(k) != ref.Has(k) {
			t.Fatalf("Contains(%d) differs from btree", k)
		}
	}
}

func TestTreeMap_Random(t *testing.T) {
	m := New[int, int]()
	ref := make(map[int]int)
	for i := range 20000 {
		k := rg.Intn(2000)
		switch rg.Intn(4) {
		case 0:
			if _, in := ref[k]; m.Delete(k) != in {
				t.Fatalf("Delete(%d) disagrees with the reference", k)
			}
			delete(ref, k)
		case 1:
			m.InsertOrAssign(k, i)
			ref[k] = i
		default:
			if _, ok := m.Insert(k, i); ok {
				ref[k] = i
			}
		}
	}
	if m.Size() != uint(len(ref)) {
		t.Fatalf("size is %d, want %d", m.Size(), len(ref))
	}
	if !maps.Equal(maps.Collect(m.All()), ref) {
		t.Errorf("contents differ from the reference")
	}
	if got, want := slices.Collect(m.Keys()), slices.Sorted(maps.Keys(ref)); !slices.Equal(got, want) {
		t.Errorf("keys are out of order")
	}
	if d := m.Dump(); !strings.Contains(d, "[B]") {
		t.Errorf("dump has no black root: %s", d)
	}
}
