package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

type CounterRepo interface {
	// IncrementOrderSeq atomically bumps the per-day counter and returns
	// the post-increment value, creating the counter at 1 when missing.
	IncrementOrderSeq(ctx context.Context, dateKey string) (int, error)
}

const (
	idDateLayout  = "060102"
	idAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idRandomLen   = 8
	idSequenceLen = 3
)

// orderIDGenerator mints human-facing order identifiers:
// YYMMDD date key, 8 random characters, 3-digit base-36 day sequence.
// The date prefix keeps ids roughly sortable, the random middle defeats
// enumeration, the sequence guarantees same-day uniqueness.
type orderIDGenerator struct {
	counters CounterRepo
	now      func() time.Time
}

func NewOrderIDGenerator(counters CounterRepo) *orderIDGenerator {
	return &orderIDGenerator{counters: counters, now: time.Now}
}

func (g *orderIDGenerator) GenerateOrderID(ctx context.Context) (string, error) {
	dateKey := g.now().Format(idDateLayout)

	seq, err := g.counters.IncrementOrderSeq(ctx, dateKey)
	if err != nil {
		return "", fmt.Errorf("failed to issue order sequence: %w", err)
	}

	random, err := randomSegment(idRandomLen)
	if err != nil {
		return "", fmt.Errorf("failed to generate random segment: %w", err)
	}

	// Sequences past 3 base-36 digits (46655 orders a day) would widen the
	// suffix; accepted as a practical limit.
	suffix := strings.ToUpper(strconv.FormatInt(int64(seq), 36))
	for len(suffix) < idSequenceLen {
		suffix = "0" + suffix
	}

	return dateKey + random + suffix, nil
}

func randomSegment(n int) (string, error) {
	max := big.NewInt(int64(len(idAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = idAlphabet[idx.Int64()]
	}
	return string(b), nil
}
