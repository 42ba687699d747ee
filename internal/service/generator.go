package service

import (
	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/model"
)

// GeneratorService handles one-shot password generation.
type GeneratorService struct {
	src crypto.Source
}

// NewGeneratorService creates a new GeneratorService drawing from src.
func NewGeneratorService(src crypto.Source) *GeneratorService {
	return &GeneratorService{src: src}
}

// Generate validates the request and produces a password. The length is
// checked before the pool is built, so an invalid length never reaches the core.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if req.Length == nil {
		return model.GenerateResponse{}, form.RequiredError()
	}
	if err := form.CheckLength(*req.Length); err != nil {
		return model.GenerateResponse{}, err
	}

	pool := crypto.BuildPool(crypto.Classes{
		Upper:   req.Uppercase,
		Lower:   req.Lowercase,
		Numbers: req.Numbers,
		Symbols: req.Symbols,
	})

	password, err := crypto.Generate(pool, *req.Length, s.src)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		PoolSize: len(pool),
	}, nil
}
