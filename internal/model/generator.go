package model

// GenerateRequest represents a one-shot password generation request.
// Length is a pointer so a missing field can be told apart from zero.
type GenerateRequest struct {
	Length    *int `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	PoolSize int    `json:"pool_size"`
}
