package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateStrengthEmpty(t *testing.T) {
	est := EstimateStrength("")
	assert.Equal(t, 0, est.Score)
	assert.Equal(t, "instant", est.CrackTime)
}

func TestEstimateStrengthOrdersPasswords(t *testing.T) {
	weak := EstimateStrength("password")
	strong := EstimateStrength("q7#Vz!pL2@xR9&mK")

	assert.Less(t, weak.Score, strong.Score)
	assert.Less(t, weak.Entropy, strong.Entropy)
	assert.NotEmpty(t, strong.CrackTime)
}

func TestEstimateStrengthScoreRange(t *testing.T) {
	for _, pw := range []string{"a", "aaaaaaaaaaaa", "Ab3!Ab3!Ab3!", strings.Repeat("xY7!", 60)} {
		est := EstimateStrength(pw)
		assert.GreaterOrEqual(t, est.Score, 0)
		assert.LessOrEqual(t, est.Score, 4)
	}
}

func TestEstimateStrengthTruncatesLongPasswords(t *testing.T) {
	head := strings.Repeat("q7#Vz!pL2@", maxEstimateLength/10)
	assert.Equal(t, EstimateStrength(head), EstimateStrength(head+"trailing-ignored"))
}
