package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Money is an exact non-float decimal amount backed by big.Rat.
type Money struct {
	rat *big.Rat
}

// NewMoneyFromRat creates a Money from a copy of rat. Nil means zero.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// NewMoneyFromInt creates a whole-unit Money.
func NewMoneyFromInt(units int64) *Money {
	return &Money{rat: big.NewRat(units, 1)}
}

// ParseMoney parses a decimal string such as "4500000" or "12500.50".
func ParseMoney(s string) (*Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return &Money{rat: rat}, nil
}

// Rat returns a copy of the underlying value, for storage.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the amount with two decimals.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// MarshalJSON encodes the amount as a JSON number.
func (m *Money) MarshalJSON() ([]byte, error) {
	return []byte(m.rat.FloatString(2)), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return fmt.Errorf("invalid amount %s", data)
	}
	m.rat = rat
	return nil
}
