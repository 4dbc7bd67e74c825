package main

import (
	"context"
	"encoding/binary"
	"runtime"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/gernest/dynarray/array"
	"github.com/gernest/dynarray/internal/checksum"
	"github.com/gernest/dynarray/internal/pools"
	"github.com/google/btree"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// runner executes one workload over n elements and returns the digest of the
// final contents.
type runner func(n int) uint64

type workload struct {
	name    string
	runners []namedRunner
}

type namedRunner struct {
	name string
	run  runner
}

var arrays = pools.NewArrays[int](0)

func digest(s array.Sequence[int]) uint64 {
	return checksum.Sequence(s, func(b []byte, v int) []byte {
		return binary.LittleEndian.AppendUint64(b, uint64(v))
	})
}

// ints adapts a plain slice to array.Sequence.
type ints []int

func (s ints) Len() int { return len(s) }

func (s ints) Get(i int) (int, error) {
	if i < 0 || i >= len(s) {
		return 0, errors.Wrapf(array.ErrIndexOutOfRange, "index %d with size %d", i, len(s))
	}
	return s[i], nil
}

type list struct {
	l *immutable.List[int]
}

func (s list) Len() int { return s.l.Len() }

func (s list) Get(i int) (int, error) {
	if i < 0 || i >= s.l.Len() {
		return 0, errors.Wrapf(array.ErrIndexOutOfRange, "index %d with size %d", i, s.l.Len())
	}
	return s.l.Get(i), nil
}

type item struct {
	pos, v int
}

func newTree() *btree.BTreeG[item] {
	return btree.NewG(32, func(a, b item) bool { return a.pos < b.pos })
}

func treeDigest(t *btree.BTreeG[item]) uint64 {
	o := make(ints, 0, t.Len())
	t.Ascend(func(it item) bool {
		o = append(o, it.v)
		return true
	})
	return digest(o)
}

var workloads = []workload{
	{
		name: "append",
		runners: []namedRunner{
			{"array", func(n int) uint64 {
				a := arrays.Get()
				defer arrays.Put(a)
				for i := range n {
					a.Add(i)
				}
				return digest(a)
			}},
			{"slice", func(n int) uint64 {
				var s ints
				for i := range n {
					s = append(s, i)
				}
				return digest(s)
			}},
			{"immutable", func(n int) uint64 {
				l := immutable.NewList[int]()
				for i := range n {
					l = l.Append(i)
				}
				return digest(list{l})
			}},
			{"btree", func(n int) uint64 {
				t := newTree()
				for i := range n {
					t.ReplaceOrInsert(item{pos: i, v: i})
				}
				return treeDigest(t)
			}},
		},
	},
	{
		name: "prepend",
		runners: []namedRunner{
			{"array", func(n int) uint64 {
				a := arrays.Get()
				defer arrays.Put(a)
				for i := range n {
					a.Insert(0, i)
				}
				return digest(a)
			}},
			{"slice", func(n int) uint64 {
				var s ints
				for i := range n {
					s = append(s, 0)
					copy(s[1:], s)
					s[0] = i
				}
				return digest(s)
			}},
			{"immutable", func(n int) uint64 {
				l := immutable.NewList[int]()
				for i := range n {
					l = l.Prepend(i)
				}
				return digest(list{l})
			}},
			{"btree", func(n int) uint64 {
				t := newTree()
				for i := range n {
					t.ReplaceOrInsert(item{pos: -i, v: i})
				}
				return treeDigest(t)
			}},
		},
	},
	{
		// splice rotates the sequence by moving its back half to the front.
		name: "splice",
		runners: []namedRunner{
			{"array", func(n int) uint64 {
				a := arrays.Get()
				defer arrays.Put(a)
				for i := range n {
					a.Add(i)
				}
				for r := range rounds(n) {
					s, err := a.SplitSuffix(cut(n, r))
					if err != nil {
						panic(err)
					}
					a.InsertAll(0, s)
				}
				return digest(a)
			}},
			{"slice", func(n int) uint64 {
				s := make(ints, n)
				for i := range n {
					s[i] = i
				}
				for r := range rounds(n) {
					c := cut(n, r)
					s = append(append(make(ints, 0, n), s[c:]...), s[:c]...)
				}
				return digest(s)
			}},
		},
	},
}

func rounds(n int) int { return max(1, n/1024) }

func cut(n, r int) int {
	if n == 0 {
		return 0
	}
	return (n/2 + r) % n
}

func lookup(name string) (workload, bool) {
	for _, w := range workloads {
		if w.name == name {
			return w, true
		}
	}
	return workload{}, false
}

type result struct {
	workload, container string
	elapsed             time.Duration
	digest              uint64
}

type config struct {
	N         int
	Reps      int
	Workloads []string
}

// run executes the selected workloads. Container runs are spread over an
// errgroup, each owning its own data.
func run(ctx context.Context, c config) ([]model, error) {
	var selected []workload
	for _, name := range c.Workloads {
		w, ok := lookup(name)
		if !ok {
			return nil, errors.Errorf("unknown workload %q", name)
		}
		selected = append(selected, w)
	}
	var total int
	for _, w := range selected {
		total += len(w.runners)
	}
	results := make([]result, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	var slot int
	for _, w := range selected {
		for _, r := range w.runners {
			res := &results[slot]
			slot++
			g.Go(func() error {
				res.workload, res.container = w.name, r.name
				for range max(1, c.Reps) {
					if err := ctx.Err(); err != nil {
						return err
					}
					start := time.Now()
					d := r.run(c.N)
					took := time.Since(start)
					if res.elapsed == 0 || took < res.elapsed {
						res.elapsed = took
					}
					res.digest = d
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := verify(results); err != nil {
		return nil, err
	}
	return models(selected, results), nil
}

// verify checks that every container finished a workload with the same
// contents.
func verify(results []result) error {
	want := map[string]result{}
	for _, r := range results {
		w, ok := want[r.workload]
		if !ok {
			want[r.workload] = r
			continue
		}
		if w.digest != r.digest {
			return errors.Errorf("%s: %s digest %x does not match %s digest %x",
				r.workload, r.container, r.digest, w.container, w.digest)
		}
	}
	return nil
}

func models(selected []workload, results []result) []model {
	o := make([]model, 0, len(selected))
	for _, w := range selected {
		m := model{Name: w.name, Unit: "µs"}
		for _, r := range results {
			if r.workload != w.name {
				continue
			}
			m.Entries = append(m.Entries, entry{
				Name:  r.container,
				Value: float64(r.elapsed.Microseconds()),
			})
		}
		m.Step = step(m.Entries)
		o = append(o, m)
	}
	return o
}
