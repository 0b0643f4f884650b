// Package fairness implements the commit-reveal draw behind every spin.
//
// A server seed is committed (SHA-256) before its epoch starts and revealed
// once the epoch ends. A draw is a single HMAC-SHA256 over the client seed,
// nonce and account id keyed by the server seed, so anyone holding the
// revealed seed can recompute the outcome.
package fairness

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"wager-ledger/internal/model"

	"github.com/shopspring/decimal"
)

const drawBits = 52

var (
	// 2^-52 == 5^52 * 10^-52, so draws are exact decimals.
	drawScale = new(big.Int).Exp(big.NewInt(5), big.NewInt(drawBits), nil)

	clientSeedPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)
)

// Outcome is the result of mapping one draw onto a prize table.
type Outcome struct {
	Draw     decimal.Decimal
	Index    int
	Fallback bool
}

// NewServerSeed returns 32 random bytes, hex encoded.
func NewServerSeed() (string, error) {
	return randomHex(32)
}

// NewClientSeed is used when the player does not supply a seed.
func NewClientSeed() (string, error) {
	return randomHex(16)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func ValidClientSeed(s string) bool {
	return clientSeedPattern.MatchString(s)
}

// Commit returns the public commitment for a server seed.
func Commit(serverSeed string) string {
	sum := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(sum[:])
}

// CheckCommitment fails with ErrFairnessViolation when serverSeed does not hash to commitment.
func CheckCommitment(serverSeed, commitment string) error {
	got := Commit(serverSeed)
	if subtle.ConstantTimeCompare([]byte(got), []byte(commitment)) != 1 {
		return fmt.Errorf("%w: seed hashes to %s, committed %s", model.ErrFairnessViolation, got, commitment)
	}
	return nil
}

// DrawValue maps the inputs to a value in [0,1) with 52 bits of precision.
func DrawValue(serverSeed, clientSeed string, nonce, accountID int64) decimal.Decimal {
	mac := hmac.New(sha256.New, []byte(serverSeed))
	fmt.Fprintf(mac, "%s:%d:%d", clientSeed, nonce, accountID)
	sum := mac.Sum(nil)

	v := binary.BigEndian.Uint64(sum[:8]) >> (64 - drawBits)
	n := new(big.Int).Mul(new(big.Int).SetUint64(v), drawScale)
	return decimal.NewFromBigInt(n, -drawBits)
}

// SelectIndex walks cumulative boundaries in table order and returns the first
// index whose boundary is strictly greater than draw. When no boundary matches
// the last index is returned with fallback set.
func SelectIndex(draw decimal.Decimal, boundaries []decimal.Decimal) (int, bool) {
	for i, b := range boundaries {
		if draw.LessThan(b) {
			return i, false
		}
	}
	return len(boundaries) - 1, true
}

// Resolve computes the draw and the selected index in one call.
func Resolve(serverSeed, clientSeed string, nonce, accountID int64, boundaries []decimal.Decimal) Outcome {
	draw := DrawValue(serverSeed, clientSeed, nonce, accountID)
	idx, fallback := SelectIndex(draw, boundaries)
	return Outcome{Draw: draw, Index: idx, Fallback: fallback}
}
