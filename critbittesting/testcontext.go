package critbittesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated keys are the same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// DistinctKeys returns n distinct keys in random order, spread over the whole
// 64 bit range.
func (c *TestContext) DistinctKeys(n int) []uint64 {
	seen := make(map[uint64]struct{}, n)
	keys := make([]uint64, 0, n)
	for len(keys) < n {
		k := c.Rand.Uint64()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// Shuffled returns the keys [0, n) in random order.
func (c *TestContext) Shuffled(n int) []uint64 {
	keys := make([]uint64, n)
	for i, j := range c.Rand.Perm(n) {
		keys[i] = uint64(j)
	}
	return keys
}
