package money

import (
	"database/sql/driver"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point BRL amount. Arithmetic is exact; rounding to the
// currency's two decimals happens only when formatting for display.
type Money struct {
	d decimal.Decimal
}

func Zero() Money { return Money{} }

func FromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

func FromFloat(v float64) Money {
	return Money{d: decimal.NewFromFloat(v)}
}

// Parse accepts plain decimal strings ("59.90").
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d: d}, nil
}

func (m Money) Add(o Money) Money     { return Money{d: m.d.Add(o.d)} }
func (m Money) Sub(o Money) Money     { return Money{d: m.d.Sub(o.d)} }
func (m Money) MulQty(qty int) Money  { return Money{d: m.d.Mul(decimal.NewFromInt(int64(qty)))} }
func (m Money) Cmp(o Money) int       { return m.d.Cmp(o.d) }
func (m Money) LessThan(o Money) bool { return m.d.Cmp(o.d) < 0 }
func (m Money) IsZero() bool          { return m.d.IsZero() }
func (m Money) IsNegative() bool      { return m.d.IsNegative() }

func (m Money) Decimal() decimal.Decimal { return m.d }

func (m Money) Float64() float64 {
	f, _ := m.d.Round(2).Float64()
	return f
}

// String renders the plain two-decimal form, e.g. "132.70".
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// BRL renders the pt-BR currency form, e.g. "R$ 1.234,56".
func (m Money) BRL() string {
	fixed := m.d.Round(2).StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	// thousands separator every three digits
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Value/Scan let Money live directly in a numeric column.
func (m Money) Value() (driver.Value, error) {
	return m.d.Value()
}

func (m *Money) Scan(src any) error {
	return m.d.Scan(src)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*m = Money{}
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.d = d
	return nil
}
