package cli

import (
	"math/big"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/eigenkit/number"
)

// ratValue is a pflag.Value holding an exact rational. It accepts every
// literal number.ParseRat does, so "-a 0.1" means exactly 1/10.
type ratValue struct {
	r *big.Rat
}

var _ pflag.Value = (*ratValue)(nil)

func newRatValue(def *big.Rat) *ratValue {
	return &ratValue{r: new(big.Rat).Set(def)}
}

func (v *ratValue) String() string {
	if v == nil || v.r == nil {
		return "0"
	}

	return v.r.RatString()
}

func (v *ratValue) Set(s string) error {
	r, err := number.ParseRat(s)
	if err != nil {
		return err
	}
	v.r = r

	return nil
}

func (v *ratValue) Type() string { return "rational" }

// Rat returns a copy of the parsed value.
func (v *ratValue) Rat() *big.Rat { return new(big.Rat).Set(v.r) }
