package passgen

import (
	"strings"
	"unicode/utf8"
)

const (
	strongLength = 12
	specialChars = `!@#$%^&*(),.?"':{}|<>`
)

// Rating is the coarse strength label of a password.
type Rating int

const (
	Weak Rating = iota
	Medium
	Good
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Good:
		return "Good"
	case Excellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// Score counts how many of the six strength rules the password satisfies.
func Score(password string) int {
	score := 0

	if utf8.RuneCountInString(password) >= strongLength {
		score++
	}
	if containsRange(password, 'A', 'Z') {
		score++
	}
	if containsRange(password, 'a', 'z') {
		score++
	}
	if containsRange(password, '0', '9') {
		score++
	}
	if strings.ContainsAny(password, specialChars) {
		score++
	}
	if !hasAdjacentRepeat(password) {
		score++
	}

	return score
}

// Evaluate rates the password from its Score.
//
// Score never exceeds 6, so Excellent is unreachable. The four-tier ladder is
// kept as is.
func Evaluate(password string) Rating {
	return RatingFor(Score(password))
}

// RatingFor maps a score onto a Rating.
func RatingFor(score int) Rating {
	switch {
	case score <= 2:
		return Weak
	case score <= 4:
		return Medium
	case score <= 6:
		return Good
	default:
		return Excellent
	}
}

func containsRange(s string, lo, hi rune) bool {
	for _, r := range s {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}

// hasAdjacentRepeat reports whether two equal characters sit next to each other.
// A pair of newlines does not count.
func hasAdjacentRepeat(s string) bool {
	prev := rune(-1)
	for _, r := range s {
		if r == prev && r != '\n' {
			return true
		}
		prev = r
	}
	return false
}
