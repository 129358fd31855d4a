package types

type ErrorPayload struct {
	Error string `json:"error"`
}

type MessagePayload struct {
	Message string `json:"message"`
}
