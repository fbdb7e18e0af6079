package dto

// DailyOpenCloseResponse is the JSON body of GET /v1/open-close/{symbol}/{date}.
type DailyOpenCloseResponse struct {
	Status     string  `json:"status"`
	From       string  `json:"from"`
	Symbol     string  `json:"symbol"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	Volume     float64 `json:"volume"`
	AfterHours float64 `json:"afterHours"`
	PreMarket  float64 `json:"preMarket"`
	Message    string  `json:"message"`
}
