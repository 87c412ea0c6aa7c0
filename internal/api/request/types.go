package request

// SubmitWordRequest is the request body for submitting a word
type SubmitWordRequest struct {
	Word string `json:"word"`
}
