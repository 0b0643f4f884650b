package fairness

import (
	"testing"
	"wager-ledger/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds(bs ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(bs))
	for i, b := range bs {
		out[i] = decimal.RequireFromString(b)
	}
	return out
}

func TestDrawValue_KnownVectors(t *testing.T) {
	assert.Equal(t, "0.557329478117705168216389211011119186878204345703125",
		DrawValue("server-seed", "client-seed", 1, 42).String())
	assert.Equal(t, "0.4911499708749234027749253073125146329402923583984375",
		DrawValue("server-seed", "client-seed", 2, 42).String())
}

func TestDrawValue_Reproducible(t *testing.T) {
	first := DrawValue("abc", "def", 7, 1001)
	for i := 0; i < 100; i++ {
		assert.True(t, first.Equal(DrawValue("abc", "def", 7, 1001)))
	}
}

func TestDrawValue_InRange(t *testing.T) {
	one := decimal.NewFromInt(1)
	for nonce := int64(1); nonce <= 500; nonce++ {
		d := DrawValue("seed", "client", nonce, 3)
		require.False(t, d.IsNegative())
		require.True(t, d.LessThan(one))
	}
}

func TestDrawValue_EveryInputMatters(t *testing.T) {
	base := DrawValue("s", "c", 1, 1)
	assert.False(t, base.Equal(DrawValue("s2", "c", 1, 1)))
	assert.False(t, base.Equal(DrawValue("s", "c2", 1, 1)))
	assert.False(t, base.Equal(DrawValue("s", "c", 2, 1)))
	assert.False(t, base.Equal(DrawValue("s", "c", 1, 2)))
}

func TestSelectIndex(t *testing.T) {
	b := bounds("0.5", "0.8", "1")

	tests := []struct {
		name string
		draw string
		want int
	}{
		{name: "zero", draw: "0", want: 0},
		{name: "just below first boundary", draw: "0.4999", want: 0},
		{name: "on first boundary goes to next", draw: "0.5", want: 1},
		{name: "middle bucket", draw: "0.79", want: 1},
		{name: "top bucket", draw: "0.95", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, fallback := SelectIndex(decimal.RequireFromString(tt.draw), b)
			assert.Equal(t, tt.want, idx)
			assert.False(t, fallback)
		})
	}
}

func TestSelectIndex_ZeroWeightBucketIsSkipped(t *testing.T) {
	idx, _ := SelectIndex(decimal.RequireFromString("0.5"), bounds("0.5", "0.5", "1"))
	assert.Equal(t, 2, idx)
}

func TestSelectIndex_FallbackToLast(t *testing.T) {
	idx, fallback := SelectIndex(decimal.RequireFromString("0.9997"), bounds("0.5", "0.8", "0.9995"))
	assert.Equal(t, 2, idx)
	assert.True(t, fallback)
}

func TestCommitAndCheck(t *testing.T) {
	c := Commit("server-seed")
	assert.Equal(t, "91024ec49c5bec0b689e42892526320fce08337205c91de94c7a588c20d08eeb", c)
	assert.NoError(t, CheckCommitment("server-seed", c))
	assert.ErrorIs(t, CheckCommitment("other-seed", c), model.ErrFairnessViolation)
}

func TestNewSeeds(t *testing.T) {
	s1, err := NewServerSeed()
	require.NoError(t, err)
	s2, err := NewServerSeed()
	require.NoError(t, err)
	assert.Len(t, s1, 64)
	assert.NotEqual(t, s1, s2)

	c, err := NewClientSeed()
	require.NoError(t, err)
	assert.True(t, ValidClientSeed(c))
}

func TestValidClientSeed(t *testing.T) {
	assert.True(t, ValidClientSeed("lucky_seed-01"))
	assert.False(t, ValidClientSeed(""))
	assert.False(t, ValidClientSeed("has space"))
	assert.False(t, ValidClientSeed("a:b"))
	assert.False(t, ValidClientSeed(string(make([]byte, 65))))
}

func TestResolve(t *testing.T) {
	out := Resolve("server-seed", "client-seed", 1, 42, bounds("0.5", "0.8", "1"))
	// draw 0.5573...
	assert.Equal(t, 1, out.Index)
	assert.False(t, out.Fallback)
	assert.True(t, out.Draw.Equal(DrawValue("server-seed", "client-seed", 1, 42)))
}
