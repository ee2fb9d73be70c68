package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// CounterResponse valor de un contador tras incrementarlo (clics, interesados).
type CounterResponse struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// TransitionResponse resultado de una escritura en dos fases (pendiente → confirmada | revertida).
type TransitionResponse struct {
	State    string `json:"state"`
	Previous any    `json:"previous"`
	Proposed any    `json:"proposed"`
	Current  any    `json:"current"`
	Error    string `json:"error,omitempty"`
}
