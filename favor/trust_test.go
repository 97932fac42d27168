package favor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type trustTierTestCase struct {
	count    int
	expected TrustTier
}

func TestTrustTierOf(t *testing.T) {
	cases := []trustTierTestCase{
		{0, TierNew},
		{-1, TierNew},
		{1, TierBronze},
		{4, TierBronze},
		{5, TierSilver},
		{9, TierSilver},
		{10, TierGold},
		{250, TierGold},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, TrustTierOf(c.count), "count %d", c.count)
	}
}

func TestTierForSumsPostedAndAccepted(t *testing.T) {
	assert.Equal(t, TierNew, TierFor(0, 0))
	assert.Equal(t, TierBronze, TierFor(1, 0))
	assert.Equal(t, TierSilver, TierFor(3, 2))
	assert.Equal(t, TierGold, TierFor(4, 6))
}
