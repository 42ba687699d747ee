package model

// FormState is the serializable state of a password form. It travels inside
// the signed form token, so it holds everything the form needs to resume.
type FormState struct {
	Length    string `json:"length"`
	Uppercase bool   `json:"uppercase"`
	Lowercase bool   `json:"lowercase"`
	Numbers   bool   `json:"numbers"`
	Symbols   bool   `json:"symbols"`
	Password  string `json:"password,omitempty"`
	Generated bool   `json:"generated"`
	Error     string `json:"error,omitempty"`
}

// SetLengthRequest carries the raw text of the length field.
type SetLengthRequest struct {
	Length string `json:"length"`
}

// FormResponse is returned by every form endpoint.
type FormResponse struct {
	Token string    `json:"token"`
	View  string    `json:"view"`
	Form  FormState `json:"form"`
}
