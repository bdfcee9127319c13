package model

// GenerateRequest represents a password generation request.
type GenerateRequest struct {
	Length   int
	Alphabet string
}

// GenerateResponse represents a generated password with its strength.
type GenerateResponse struct {
	Password string
	Length   int
	Strength StrengthResponse
}

// StrengthResponse holds both strength views of a password.
type StrengthResponse struct {
	Score    int
	Rating   string
	Estimate EstimateResponse
}

// EstimateResponse is the zxcvbn guessability estimate.
type EstimateResponse struct {
	Score     int
	Entropy   float64
	CrackTime string
}
