package service

import (
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/passgen"
)

// GeneratorService handles password generation and strength checks.
type GeneratorService struct {
	gen *passgen.Generator
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src passgen.Source) *GeneratorService {
	return &GeneratorService{gen: passgen.NewGenerator(src)}
}

// Generate produces a password for the request and rates it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	password, err := s.gen.Generate(req.Length, req.Alphabet)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   utf8.RuneCountInString(password),
		Strength: s.Check(password),
	}, nil
}

// Check rates an arbitrary password.
func (s *GeneratorService) Check(password string) model.StrengthResponse {
	score := passgen.Score(password)
	est := passgen.EstimateStrength(password)

	return model.StrengthResponse{
		Score:  score,
		Rating: passgen.RatingFor(score).String(),
		Estimate: model.EstimateResponse{
			Score:     est.Score,
			Entropy:   est.Entropy,
			CrackTime: est.CrackTime,
		},
	}
}
