package comparisons

import (
	"sync/atomic"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-containers/Maps"
	"github.com/puzpuzpuz/xsync/v3"
)

// compares the ordered TreeMap with the hash maps https://github.com/cornelk/hashmap, https://github.com/alphadose/haxmap
// and https://github.com/puzpuzpuz/xsync on concurrent reads, the only concurrent use a TreeMap allows.
const (
	benchmarkItemCount = 1 << 12
	hits, misses       = benchmarkItemCount, benchmarkItemCount / 4
)

var sideEff bool

func setupTreeMap(b *testing.B) *Maps.TreeMap[uint, uint] {
	b.Helper()
	m := Maps.New[uint, uint]()
	for i := range uint(benchmarkItemCount) {
		m.Insert(i, i)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[uint, uint] {
	b.Helper()
	m := hashmap.New[uint, uint]()
	for i := range uint(benchmarkItemCount) {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uint, uint] {
	b.Helper()
	m := haxmap.New[uint, uint]()
	for i := range uint(benchmarkItemCount) {
		m.Set(i, i)
	}
	return m
}

func setupXSyncMap(b *testing.B) *xsync.MapOf[uint, uint] {
	b.Helper()
	m := xsync.NewMapOf[uint, uint]()
	for i := range uint(benchmarkItemCount) {
		m.Store(i, i)
	}
	return m
}

func BenchmarkTreeMap_Load(b *testing.B) {
	m := setupTreeMap(b)
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			sideEff = m.Contains(uint(count.Add(1)-1) % (hits + misses))
		}
	})
}

func BenchmarkHashMap_Load(b *testing.B) {
	m := setupHashMap(b)
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, sideEff = m.Get(uint(count.Add(1)-1) % (hits + misses))
		}
	})
}

func BenchmarkHaxMap_Load(b *testing.B) {
	m := setupHaxMap(b)
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, sideEff = m.Get(uint(count.Add(1)-1) % (hits + misses))
		}
	})
}

func BenchmarkXSyncMap_Load(b *testing.B) {
	m := setupXSyncMap(b)
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, sideEff = m.Load(uint(count.Add(1)-1) % (hits + misses))
		}
	})
}

// ordered iteration is free for the TreeMap; the hash maps have to sort.
func BenchmarkTreeMap_Ascend(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		prev := uint(0)
		for k := range m.Keys() {
			sideEff = k < prev
			prev = k
		}
	}
}

func TestLookupAgreement(t *testing.T) {
	tm, hm, hx, xs := Maps.New[uint, uint](), hashmap.New[uint, uint](), haxmap.New[uint, uint](), xsync.NewMapOf[uint, uint]()
	for i := range uint(256) {
		v := i * 7 % 256
		tm.InsertOrAssign(v, i)
		hm.Set(v, i)
		hx.Set(v, i)
		xs.Store(v, i)
	}
	for k := range uint(300) {
		want, err := tm.At(k)
		for name, get := range map[string]func(uint) (uint, bool){
			"hashmap": hm.Get, "haxmap": hx.Get, "xsync": xs.Load,
		} {
			if got, ok := get(k); ok != (err == nil) || ok && got != want {
				t.Errorf("%s disagrees with TreeMap on key %d", name, k)
			}
		}
	}
}
