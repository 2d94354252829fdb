package dto

// SearchRequest is the body of a search submission.
type SearchRequest struct {
	Keyword string `json:"keyword" form:"keyword"`
}

// EmailReportForm is the body of an email report submission.
type EmailReportForm struct {
	Keyword   string `json:"keyword" form:"keyword"`
	Email     string `json:"email" form:"email"`
	StartDate string `json:"start_date" form:"start_date"`
	EndDate   string `json:"end_date" form:"end_date"`
}

// AcceptedResponse acknowledges an operation that completes asynchronously.
type AcceptedResponse struct {
	Status string `json:"status"`
}
