package prize

import (
	"sync"
	"testing"
	"wager-ledger/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(t *testing.T, def string) []model.PrizeEntry {
	t.Helper()
	e, err := Parse(def)
	require.NoError(t, err)
	return e
}

func weights(ws ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ws))
	for i, w := range ws {
		out[i] = decimal.RequireFromString(w)
	}
	return out
}

func TestNew_ExpectedValueAndProfit(t *testing.T) {
	table, err := New(1, 100, entries(t, "0:0.5,50:0.3,150:0.2"))
	require.NoError(t, err)

	// 0*0.5 + 50*0.3 + 150*0.2 = 45
	assert.True(t, table.ExpectedValue().Equal(decimal.NewFromInt(45)))
	assert.True(t, table.ExpectedProfit(1000).Equal(decimal.NewFromInt(55000)))
	assert.Equal(t, []string{"0.5", "0.8", "1"}, boundsStrings(table))
}

func TestNew_RejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		cost int64
		def string
	}{
		{name: "empty", cost: 100, def: ""},
		{name: "sum too low", cost: 100, def: "0:0.5,50:0.3"},
		{name: "sum too high", cost: 100, def: "0:0.6,50:0.6"},
		{name: "negative weight", cost: 100, def: "0:1.2,50:-0.2"},
		{name: "negative payout", cost: 100, def: "-10:0.5,50:0.5"},
		{name: "house edge not positive", cost: 100, def: "0:0.5,200:0.5"},
		{name: "zero cost", cost: 0, def: "0:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.def)
			require.NoError(t, err)
			_, err = New(1, tt.cost, e)
			assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
		})
	}
}

func TestNew_AcceptsSumWithinTolerance(t *testing.T) {
	_, err := New(1, 100, entries(t, "0:0.5,50:0.3,150:0.1995"))
	assert.NoError(t, err)
}

func TestParse_Malformed(t *testing.T) {
	for _, def := range []string{"10", "x:0.5", "10:abc"} {
		_, err := Parse(def)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration, def)
	}
}

func TestWithWeights(t *testing.T) {
	table, err := New(1, 100, entries(t, "0:0.5,50:0.3,150:0.2"))
	require.NoError(t, err)

	next, err := table.WithWeights(weights("0.6", "0.3", "0.1"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version())
	assert.True(t, next.ExpectedValue().Equal(decimal.NewFromInt(30)))
	assert.Equal(t, int64(1), table.Version())
	assert.True(t, table.ExpectedValue().Equal(decimal.NewFromInt(45)))
}

func TestWithWeights_Rejected(t *testing.T) {
	table, err := New(1, 100, entries(t, "0:0.5,50:0.3,150:0.2"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		weights []decimal.Decimal
	}{
		{name: "length mismatch", weights: weights("0.5", "0.5")},
		{name: "bad sum", weights: weights("0.5", "0.3", "0.3")},
		{name: "expected value above cost", weights: weights("0", "0", "1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.WithWeights(tt.weights)
			assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
		})
	}
}

func TestHolder_ConcurrentReadersSeeWholeTables(t *testing.T) {
	table, err := New(1, 100, entries(t, "0:0.5,50:0.3,150:0.2"))
	require.NoError(t, err)
	h := NewHolder(table)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				next, err := h.Current().WithWeights(weights("0.6", "0.3", "0.1"))
				if assert.NoError(t, err) {
					h.Adopt(next)
				}
				return
			}
			for j := 0; j < 100; j++ {
				cur := h.Current()
				b := cur.Boundaries()
				assert.True(t, b[len(b)-1].Equal(decimal.NewFromInt(1)))
			}
		}(i)
	}
	wg.Wait()
	assert.GreaterOrEqual(t, h.Current().Version(), int64(2))
}

func TestHolder_Adopt(t *testing.T) {
	v1, err := New(1, 100, entries(t, "0:0.5,50:0.3,150:0.2"))
	require.NoError(t, err)
	v2, err := v1.WithWeights(weights("0.6", "0.3", "0.1"))
	require.NoError(t, err)

	h := NewHolder(v2)
	assert.False(t, h.Adopt(v1))
	assert.Same(t, v2, h.Current())

	v3, err := v2.WithWeights(weights("0.5", "0.3", "0.2"))
	require.NoError(t, err)
	assert.True(t, h.Adopt(v3))
	assert.Same(t, v3, h.Current())
}

func boundsStrings(t *Table) []string {
	var out []string
	for _, b := range t.Boundaries() {
		out = append(out, b.String())
	}
	return out
}
