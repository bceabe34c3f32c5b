/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package bigint provides the arbitrary-precision non-negative integer
// arithmetic required by the chain keyspace and the mixed-radix candidate
// materializer: addition, subtraction, multiply-by-small, divide-by-small,
// modulo-small, comparison and base-10 I/O. It is a thin, purpose-built
// wrapper around math/big.Int that exposes only the operations the PRINCE
// generator needs.
package bigint

import (
	"errors"
	"math/big"
)

// Value is an arbitrary-precision non-negative integer.
// The zero Value is a valid representation of 0.
type Value struct {
	v big.Int
}

// Zero returns a new Value representing 0.
func Zero() *Value {
	return &Value{}
}

// FromUint64 creates a Value from a native 64-bit unsigned integer.
func FromUint64(n uint64) *Value {
	res := &Value{}
	res.v.SetUint64(n)
	return res
}

// Parse decodes a base-10 string into a Value. Returns an error if the
// string is not a valid non-negative base-10 integer.
func Parse(s string) (*Value, error) {
	res := &Value{}

	if _, ok := res.v.SetString(s, 10); !ok {
		return nil, errors.New("invalid base-10 integer: " + s)
	}

	if res.v.Sign() < 0 {
		return nil, errors.New("negative value not allowed: " + s)
	}

	return res, nil
}

// Clone returns an independent copy of this Value.
func (this *Value) Clone() *Value {
	res := &Value{}
	res.v.Set(&this.v)
	return res
}

// Add returns this + other as a new Value. Neither operand is mutated.
func (this *Value) Add(other *Value) *Value {
	res := &Value{}
	res.v.Add(&this.v, &other.v)
	return res
}

// Sub returns this - other as a new Value. Panics if the result would be
// negative: the PRINCE keyspace arithmetic never subtracts past zero.
func (this *Value) Sub(other *Value) *Value {
	res := &Value{}
	res.v.Sub(&this.v, &other.v)

	if res.v.Sign() < 0 {
		panic("bigint: subtraction produced a negative value")
	}

	return res
}

// MulSmall returns this * n as a new Value.
func (this *Value) MulSmall(n uint64) *Value {
	res := &Value{}
	var factor big.Int
	factor.SetUint64(n)
	res.v.Mul(&this.v, &factor)
	return res
}

// DivModSmall returns (this / n, this % n). Panics if n == 0.
func (this *Value) DivModSmall(n uint64) (*Value, uint64) {
	if n == 0 {
		panic("bigint: division by zero")
	}

	var divisor, rem big.Int
	divisor.SetUint64(n)
	q := &Value{}
	q.v.DivMod(&this.v, &divisor, &rem)
	return q, rem.Uint64()
}

// Cmp compares this to other: -1, 0 or 1 as this is less than, equal to,
// or greater than other.
func (this *Value) Cmp(other *Value) int {
	return this.v.Cmp(&other.v)
}

// IsZero reports whether this Value is 0.
func (this *Value) IsZero() bool {
	return this.v.Sign() == 0
}

// Uint64 returns this Value as a uint64. The caller must ensure the Value
// fits (e.g. it is the result of a min() against an already-64-bit bound);
// callers in this module only ever do so after a Cmp against a uint64-sized
// bound, per the emission driver's iter_max computation.
func (this *Value) Uint64() uint64 {
	return this.v.Uint64()
}

// Fits64 reports whether this Value fits in a uint64.
func (this *Value) Fits64() bool {
	return this.v.IsUint64()
}

// String renders this Value in base 10.
func (this *Value) String() string {
	return this.v.String()
}

// Min returns the smaller of a and b. Neither operand is mutated.
func Min(a, b *Value) *Value {
	if a.Cmp(b) <= 0 {
		return a
	}

	return b
}
