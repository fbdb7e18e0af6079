package dto

// StockUpdateRequest is the body of POST /stock/:symbol. Amount may be
// negative to decrease the purchased amount.
type StockUpdateRequest struct {
	Amount int `json:"amount"`
}

// MessageResponse is the generic message envelope used by the stock
// endpoints for success and client-error bodies.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries an internal failure description.
type ErrorResponse struct {
	Error string `json:"error"`
}
