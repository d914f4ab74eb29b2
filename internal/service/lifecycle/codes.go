package lifecycle

import (
	"math/rand/v2"
	"strconv"

	"service-gestor/internal/domain"
)

const (
	codeMin = 1000
	codeMax = 9999
)

// CodeGenerator produces short numeric verification codes.
type CodeGenerator interface {
	Generate() string
}

// RandomCodes draws codes uniformly from [1000, 9999].
type RandomCodes struct {
	intn func(n int) int
}

// NewRandomCodes returns a generator backed by math/rand/v2.
func NewRandomCodes() RandomCodes {
	return RandomCodes{intn: rand.IntN}
}

// Generate returns a 4-digit code.
func (g RandomCodes) Generate() string {
	intn := g.intn
	if intn == nil {
		intn = rand.IntN
	}
	return strconv.Itoa(codeMin + intn(codeMax-codeMin+1))
}

// ensureCodes fills missing codes and never touches existing ones.
func ensureCodes(o *domain.Order, g CodeGenerator, withDelivery bool) {
	if o.PickupCode == "" {
		o.PickupCode = g.Generate()
	}
	if withDelivery && o.DeliveryCode == "" {
		o.DeliveryCode = g.Generate()
	}
}
