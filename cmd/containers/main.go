// Package main runs the container scenarios and logs what they observe.
// Pass -logtostderr to see the output and -v=2 to also see buffer growth.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Dicts"
	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/golang/glog"
)

func main() {
	scenario := flag.String("scenario", "all", "One of bst, heap, pq, dict or all")
	n := flag.Int("n", 32, "The number of random items per scenario")
	seed := flag.Int64("seed", 0, "The random seed")
	flag.Parse()
	defer glog.Flush()

	if err := run(*scenario, *n, *seed); err != nil {
		glog.Fatalf("scenario %s failed: %v", *scenario, err)
	}
}

var scenarios = map[string]func(n int, rg *rand.Rand) error{
	"bst":  bst,
	"heap": heap,
	"pq":   pq,
	"dict": dict,
}

func run(scenario string, n int, seed int64) error {
	rg := rand.New(rand.NewSource(seed))
	if scenario == "all" {
		for _, name := range []string{"bst", "heap", "pq", "dict"} {
			if err := scenarios[name](n, rg); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
		return nil
	}
	f, ok := scenarios[scenario]
	if !ok {
		return fmt.Errorf("unknown scenario %q", scenario)
	}
	return f(n, rg)
}

func bst(n int, rg *rand.Rand) error {
	t := Trees.New[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		t.Add(v)
	}
	glog.Infof("bst: %v, height %d", t, t.Height())
	t.Remove(50)
	root, err := t.RootData()
	if err != nil {
		return err
	}
	if root != 60 {
		return fmt.Errorf("root after removing 50 is %d, want 60", root)
	}
	glog.Infof("bst: removed 50, new root %d", root)

	for range n {
		t.Add(rg.Intn(n << 1))
	}
	if t.Corrupt() {
		return fmt.Errorf("order violated: %v", t)
	}
	glog.Infof("bst: %d items, height %d", t.Size(), t.Height())
	return nil
}

func heap(n int, rg *rand.Rand) error {
	h := Heaps.NewMaxHeap[int]()
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h.Add(v)
	}
	for !h.Empty() {
		v, err := h.Pop()
		if err != nil {
			return err
		}
		glog.Infof("heap: popped %d, %d left", v, h.Size())
	}
	if _, err := h.PeekTop(); !errors.Is(err, Go_Containers.ErrEmptyStructure) {
		return fmt.Errorf("PeekTop on an empty heap returned %v", err)
	}

	for range n {
		h.Add(rg.Int())
	}
	if h.Corrupt() {
		return fmt.Errorf("heap order violated")
	}
	glog.Infof("heap: %d items, height %d, capacity %d", h.Size(), h.Height(), h.Cap())
	return nil
}

func pq(n int, rg *rand.Rand) error {
	byHeap, byList := Queues.NewHeapPQ[int](), Queues.NewOrderedListPQ[int]()
	for range n {
		v := rg.Intn(n)
		byHeap.Add(v)
		byList.Add(v)
	}
	for !byHeap.Empty() {
		a, err := byHeap.Peek()
		if err != nil {
			return err
		}
		b, err := byList.Peek()
		if err != nil {
			return err
		}
		if a != b {
			return fmt.Errorf("heap queue has %d, list queue has %d", a, b)
		}
		byHeap.Remove()
		byList.Remove()
	}
	if !byList.Empty() {
		return fmt.Errorf("list queue outlived the heap queue")
	}
	glog.Infof("pq: %d items came out in the same order", n)
	return nil
}

func dict(n int, rg *rand.Rand) error {
	ds := []Dicts.Dictionary[int, int]{Dicts.NewTreeDict[int, int](), Dicts.NewArrayDict[int, int](), Dicts.NewBTreeDict[int, int]()}
	for i := range n {
		k := rg.Intn(n)
		for _, d := range ds {
			d.Add(k, i)
		}
	}
	want := ds[0].String()
	for _, d := range ds[1:] {
		if d.Size() != ds[0].Size() {
			return fmt.Errorf("sizes differ: %d and %d", ds[0].Size(), d.Size())
		}
		if got := fmt.Sprint(d.Values()); got != fmt.Sprint(ds[0].Values()) {
			return fmt.Errorf("values differ: %s and %s", want, d)
		}
	}
	glog.Infof("dict: %d distinct keys, %s", ds[0].Size(), want)
	return nil
}
