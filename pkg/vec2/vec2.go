package vec2

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Vec represents a 2D vector with exact decimal components
type Vec struct {
	X decimal.Decimal `yaml:"x" json:"x"`
	Y decimal.Decimal `yaml:"y" json:"y"`
}

// New creates a new Vec from decimal components
func New(x, y decimal.Decimal) Vec {
	return Vec{X: x, Y: y}
}

// NewFromInt creates a new Vec from integer components
func NewFromInt(x, y int64) Vec {
	return Vec{X: decimal.NewFromInt(x), Y: decimal.NewFromInt(y)}
}

// NewFromStrings creates a new Vec from string components
func NewFromStrings(x, y string) (Vec, error) {
	dx, err := decimal.NewFromString(x)
	if err != nil {
		return Vec{}, fmt.Errorf("invalid x component %q: %w", x, err)
	}
	dy, err := decimal.NewFromString(y)
	if err != nil {
		return Vec{}, fmt.Errorf("invalid y component %q: %w", y, err)
	}
	return Vec{X: dx, Y: dy}, nil
}

// Dot returns the dot product x1*x2 + y1*y2
func (v Vec) Dot(other Vec) decimal.Decimal {
	return v.X.Mul(other.X).Add(v.Y.Mul(other.Y))
}

// Cross returns the scalar 2D cross product x1*y2 - y1*x2
func (v Vec) Cross(other Vec) decimal.Decimal {
	return v.X.Mul(other.Y).Sub(v.Y.Mul(other.X))
}

// Add adds another vector component-wise
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X.Add(other.X), Y: v.Y.Add(other.Y)}
}

// Sub subtracts another vector component-wise
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X.Sub(other.X), Y: v.Y.Sub(other.Y)}
}

// Scale multiplies both components by a decimal factor
func (v Vec) Scale(factor decimal.Decimal) Vec {
	return Vec{X: v.X.Mul(factor), Y: v.Y.Mul(factor)}
}

// Neg returns the vector with both components negated
func (v Vec) Neg() Vec {
	return Vec{X: v.X.Neg(), Y: v.Y.Neg()}
}

// NormSquared returns the squared Euclidean length (kept exact; no square root)
func (v Vec) NormSquared() decimal.Decimal {
	return v.Dot(v)
}

// Equal checks if both components equal another vector's
func (v Vec) Equal(other Vec) bool {
	return v.X.Equal(other.X) && v.Y.Equal(other.Y)
}

// IsZero checks if both components are zero
func (v Vec) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero()
}

// IsInteger checks if both components are integer-valued
func (v Vec) IsInteger() bool {
	return v.X.IsInteger() && v.Y.IsInteger()
}

// Zero returns the zero vector
func Zero() Vec {
	return Vec{X: decimal.Zero, Y: decimal.Zero}
}

// String renders the vector as "(x,y)" with no padding
func (v Vec) String() string {
	return fmt.Sprintf("(%s,%s)", v.X, v.Y)
}

// DotExpression renders the full product expression "(x1,y1)·(x2,y2) = r"
func (v Vec) DotExpression(other Vec) string {
	return fmt.Sprintf("%s·%s = %s", v, other, v.Dot(other))
}
