package passgen

import zxcvbn "github.com/ccojocar/zxcvbn-go"

// maxEstimateLength bounds the input handed to zxcvbn, whose matching cost grows quickly with length.
const maxEstimateLength = 100

// Estimate is a pattern-aware guessability estimate of a password.
type Estimate struct {
	Score     int // 0..4
	Entropy   float64
	CrackTime string
}

// EstimateStrength runs zxcvbn over the first maxEstimateLength runes of the password.
func EstimateStrength(password string) Estimate {
	if password == "" {
		return Estimate{CrackTime: "instant"}
	}

	runes := []rune(password)
	if len(runes) > maxEstimateLength {
		password = string(runes[:maxEstimateLength])
	}

	result := zxcvbn.PasswordStrength(password, nil)
	return Estimate{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}
