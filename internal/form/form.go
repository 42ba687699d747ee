// Package form holds the state of a single password form: the raw length
// input, the four class toggles and the last generated password.
package form

import (
	"github.com/passform/passform-go/internal/crypto"
	"github.com/passform/passform-go/internal/model"
)

// View is which part of the form is on display.
type View int

const (
	ViewInput View = iota
	ViewResult
)

func (v View) String() string {
	if v == ViewResult {
		return "result"
	}
	return "input"
}

// Form is owned by exactly one caller; it is not safe for concurrent use.
type Form struct {
	length    string
	classes   crypto.Classes
	password  string
	generated bool
	errMsg    string
}

// New returns an empty form in the input view.
func New() *Form {
	return &Form{}
}

// Restore rebuilds a form from a snapshot.
func Restore(s model.FormState) *Form {
	return &Form{
		length: s.Length,
		classes: crypto.Classes{
			Upper:   s.Uppercase,
			Lower:   s.Lowercase,
			Numbers: s.Numbers,
			Symbols: s.Symbols,
		},
		password:  s.Password,
		generated: s.Generated && s.Password != "",
		errMsg:    s.Error,
	}
}

// Snapshot returns the serializable state of the form.
func (f *Form) Snapshot() model.FormState {
	return model.FormState{
		Length:    f.length,
		Uppercase: f.classes.Upper,
		Lowercase: f.classes.Lower,
		Numbers:   f.classes.Numbers,
		Symbols:   f.classes.Symbols,
		Password:  f.password,
		Generated: f.generated,
		Error:     f.errMsg,
	}
}

// SetLength stores the raw text of the length field. Validation happens on submit.
func (f *Form) SetLength(input string) {
	f.length = input
}

// Length returns the raw length input.
func (f *Form) Length() string {
	return f.length
}

// Toggle flips one character class.
func (f *Form) Toggle(c crypto.Class) {
	f.classes.Toggle(c)
}

// Classes returns the current toggle state.
func (f *Form) Classes() crypto.Classes {
	return f.classes
}

// Submit validates the length, builds the pool and generates a password.
// On failure the error message is recorded and the displayed result, if any,
// is left as it was.
func (f *Form) Submit(src crypto.Source) error {
	n, err := ParseLength(f.length)
	if err != nil {
		f.errMsg = err.Error()
		return err
	}

	password, err := crypto.Generate(crypto.BuildPool(f.classes), n, src)
	if err != nil {
		f.errMsg = err.Error()
		return err
	}

	f.password = password
	f.generated = true
	f.errMsg = ""
	return nil
}

// Reset clears the length input, every toggle and the result.
func (f *Form) Reset() {
	*f = Form{}
}

// Password returns the generated password and whether one is on display.
func (f *Form) Password() (string, bool) {
	return f.password, f.generated
}

// Err returns the message from the last failed submit, or "".
func (f *Form) Err() string {
	return f.errMsg
}

// View reports which view the form is in.
func (f *Form) View() View {
	if f.generated {
		return ViewResult
	}
	return ViewInput
}
