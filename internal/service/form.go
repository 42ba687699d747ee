package service

import (
	"fmt"
	"time"

	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/form"
	"github.com/passform/passform-go/internal/model"
)

// FormService applies form actions to a state decoded from a form token and
// signs the resulting state into a new token. It keeps no state of its own.
type FormService struct {
	src    crypto.Source
	secret string
	expiry time.Duration
}

// NewFormService creates a new FormService.
func NewFormService(src crypto.Source, secret string, expiry time.Duration) *FormService {
	return &FormService{src: src, secret: secret, expiry: expiry}
}

// Open starts an empty form.
func (s *FormService) Open() (model.FormResponse, error) {
	return s.respond(form.New())
}

// Show re-signs the given state without changing it.
func (s *FormService) Show(state model.FormState) (model.FormResponse, error) {
	return s.respond(form.Restore(state))
}

// SetLength stores the raw length input.
func (s *FormService) SetLength(state model.FormState, input string) (model.FormResponse, error) {
	f := form.Restore(state)
	f.SetLength(input)
	return s.respond(f)
}

// Toggle flips the named character class.
func (s *FormService) Toggle(state model.FormState, class string) (model.FormResponse, error) {
	c, err := crypto.ParseClass(class)
	if err != nil {
		return model.FormResponse{}, fmt.Errorf("%w: %q", err, class)
	}

	f := form.Restore(state)
	f.Toggle(c)
	return s.respond(f)
}

// Submit runs the Generate action. When it fails, the returned response still
// carries a signed token recording the error message alongside the error.
func (s *FormService) Submit(state model.FormState) (model.FormResponse, error) {
	f := form.Restore(state)
	submitErr := f.Submit(s.src)

	resp, err := s.respond(f)
	if err != nil {
		return model.FormResponse{}, err
	}
	return resp, submitErr
}

// Reset clears the form back to the input view.
func (s *FormService) Reset(state model.FormState) (model.FormResponse, error) {
	f := form.Restore(state)
	f.Reset()
	return s.respond(f)
}

func (s *FormService) respond(f *form.Form) (model.FormResponse, error) {
	snapshot := f.Snapshot()
	token, err := crypto.GenerateFormToken(snapshot, s.secret, s.expiry)
	if err != nil {
		return model.FormResponse{}, fmt.Errorf("signing form token: %w", err)
	}

	return model.FormResponse{
		Token: token,
		View:  f.View().String(),
		Form:  snapshot,
	}, nil
}
