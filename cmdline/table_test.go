package cmdline

import (
	"sync"
	"sync/atomic"
	"testing"
)

func countingTable() (*Table, *atomic.Int32) {
	var calls atomic.Int32

	t := NewTable()
	t.parse = func(s string) []Option {
		calls.Add(1)

		return Parse(s)
	}

	return t, &calls
}

func TestTable_TokenizesOncePerText(t *testing.T) {
	table, calls := countingTable()

	for range 3 {
		table.Options("-a=1 -b")
	}

	if n := calls.Load(); n != 1 {
		t.Errorf("parse called %d times, want 1", n)
	}

	// Semantically equal text with different spacing is a distinct key.
	table.Options("-a=1  -b")

	if n := calls.Load(); n != 2 {
		t.Errorf("parse called %d times, want 2", n)
	}

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestTable_OptionsReturnsCopy(t *testing.T) {
	table := NewTable()

	first := table.Options("-a=1")
	first[0].Value = "mutated"

	second := table.Options("-a=1")
	if second[0].Value != "1" {
		t.Errorf("cached options were mutated: %+v", second)
	}
}

func TestTable_Has(t *testing.T) {
	table := NewTable()

	if !table.Has("-HELP", "help") {
		t.Error("Has should match names case-insensitively")
	}

	if table.Has("-genproject", "help") {
		t.Error("Has reported an absent option")
	}

	if table.Has("", "help") {
		t.Error("Has on empty command line should be false")
	}
}

func TestTable_Concurrent(t *testing.T) {
	table, calls := countingTable()

	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			opt, p := table.Lookup("-maxConcurrency=8 -verbose", "maxconcurrency")
			if p != Valued || opt.Value != "8" {
				t.Errorf("Lookup = %+v (%v), want value 8", opt, p)
			}
		}()
	}

	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("parse called %d times under contention, want 1", n)
	}
}

func TestTable_Reset(t *testing.T) {
	table, calls := countingTable()

	table.Options("-a")
	table.Reset()
	table.Options("-a")

	if n := calls.Load(); n != 2 {
		t.Errorf("parse called %d times, want 2 after Reset", n)
	}
}
