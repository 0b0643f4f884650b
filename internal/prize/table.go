// Package prize holds the weighted payout table used by the spin wheel.
//
// A Table is immutable once built. The active table is owned by a Holder and
// replaced as a whole, so readers never observe a partially applied update.
package prize

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"wager-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// WeightTolerance is the allowed deviation of the weight sum from 1.
var WeightTolerance = decimal.New(1, -3)

type Table struct {
	version  int64
	spinCost int64
	entries  []model.PrizeEntry
	bounds   []decimal.Decimal
	ev       decimal.Decimal
}

// New validates the entries and builds a table. The house edge must stay positive.
func New(version, spinCost int64, entries []model.PrizeEntry) (*Table, error) {
	if spinCost <= 0 {
		return nil, fmt.Errorf("%w: spin cost must be positive", model.ErrInvalidConfiguration)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: prize table is empty", model.ErrInvalidConfiguration)
	}

	t := &Table{
		version:  version,
		spinCost: spinCost,
		entries:  make([]model.PrizeEntry, len(entries)),
		bounds:   make([]decimal.Decimal, len(entries)),
	}
	copy(t.entries, entries)

	sum := decimal.Zero
	ev := decimal.Zero
	for i, e := range t.entries {
		if e.Payout < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative payout %d", model.ErrInvalidConfiguration, i, e.Payout)
		}
		if e.Weight.IsNegative() {
			return nil, fmt.Errorf("%w: entry %d has negative weight %s", model.ErrInvalidConfiguration, i, e.Weight)
		}
		sum = sum.Add(e.Weight)
		t.bounds[i] = sum
		ev = ev.Add(decimal.NewFromInt(e.Payout).Mul(e.Weight))
	}

	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(WeightTolerance) {
		return nil, fmt.Errorf("%w: weights sum to %s, want 1 +/- %s", model.ErrInvalidConfiguration, sum, WeightTolerance)
	}
	if !decimal.NewFromInt(spinCost).GreaterThan(ev) {
		return nil, fmt.Errorf("%w: expected value %s must stay below spin cost %d",
			model.ErrInvalidConfiguration, ev.StringFixed(4), spinCost)
	}
	t.ev = ev
	return t, nil
}

func FromConfig(cfg *model.PrizeTableConfig) (*Table, error) {
	return New(cfg.Version, cfg.SpinCost, cfg.Entries)
}

// Parse reads the "payout:weight,payout:weight" form used in configuration.
func Parse(s string) ([]model.PrizeEntry, error) {
	var entries []model.PrizeEntry
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		payoutStr, weightStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: prize entry %q is not payout:weight", model.ErrInvalidConfiguration, part)
		}
		payout, err := strconv.ParseInt(strings.TrimSpace(payoutStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: payout %q: %v", model.ErrInvalidConfiguration, payoutStr, err)
		}
		weight, err := decimal.NewFromString(strings.TrimSpace(weightStr))
		if err != nil {
			return nil, fmt.Errorf("%w: weight %q: %v", model.ErrInvalidConfiguration, weightStr, err)
		}
		entries = append(entries, model.PrizeEntry{Payout: payout, Weight: weight})
	}
	return entries, nil
}

func (t *Table) Version() int64  { return t.version }
func (t *Table) SpinCost() int64 { return t.spinCost }
func (t *Table) Len() int        { return len(t.entries) }

func (t *Table) Payout(index int) int64 {
	return t.entries[index].Payout
}

func (t *Table) Entries() []model.PrizeEntry {
	out := make([]model.PrizeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Boundaries returns the cumulative weights in table order.
func (t *Table) Boundaries() []decimal.Decimal {
	out := make([]decimal.Decimal, len(t.bounds))
	copy(out, t.bounds)
	return out
}

// ExpectedValue is the mean payout of one spin in minor units.
func (t *Table) ExpectedValue() decimal.Decimal {
	return t.ev
}

// ExpectedProfit is the house margin over n spins. Reporting only.
func (t *Table) ExpectedProfit(n int64) decimal.Decimal {
	return decimal.NewFromInt(t.spinCost).Sub(t.ev).Mul(decimal.NewFromInt(n))
}

// WithWeights builds the next version of the table with new weights and the same payouts.
func (t *Table) WithWeights(weights []decimal.Decimal) (*Table, error) {
	if len(weights) != len(t.entries) {
		return nil, fmt.Errorf("%w: got %d weights for %d prizes", model.ErrInvalidConfiguration, len(weights), len(t.entries))
	}
	entries := make([]model.PrizeEntry, len(t.entries))
	for i, e := range t.entries {
		entries[i] = model.PrizeEntry{Payout: e.Payout, Weight: weights[i]}
	}
	return New(t.version+1, t.spinCost, entries)
}

func (t *Table) Config() *model.PrizeTableConfig {
	return &model.PrizeTableConfig{
		Version:  t.version,
		SpinCost: t.spinCost,
		Entries:  t.Entries(),
	}
}

// Holder owns the active table for one process.
type Holder struct {
	current atomic.Pointer[Table]
}

func NewHolder(t *Table) *Holder {
	h := &Holder{}
	h.current.Store(t)
	return h
}

func (h *Holder) Current() *Table {
	return h.current.Load()
}

// Adopt installs t if it is newer than the active table.
func (h *Holder) Adopt(t *Table) bool {
	for {
		cur := h.current.Load()
		if cur != nil && cur.Version() >= t.Version() {
			return false
		}
		if h.current.CompareAndSwap(cur, t) {
			return true
		}
	}
}
