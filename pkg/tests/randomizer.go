package tests

import (
	"math/rand"
	"time"

	"github.com/rs/xid"
)

// Randomizer генерирует случайные тестовые значения.
type Randomizer struct {
	random *rand.Rand
}

func NewRandomizer() Randomizer {
	return Randomizer{
		random: rand.New(rand.NewSource(time.Now().Unix())), //nolint:gosec // for tests
	}
}

func (r Randomizer) Name() string {
	return "item-" + xid.New().String()
}

// Price цена от 1 до limit включительно.
func (r Randomizer) Price(limit int) float64 {
	return float64(r.random.Intn(limit) + 1)
}

func (r Randomizer) Bool() bool {
	return r.random.Intn(2) == 0 //nolint:mnd // skip
}
