package entity

// EmailReportMaxRecords is the record cap sent with every email report request.
const EmailReportMaxRecords = 1000

// EmailReportRequest asks the backend to build and email a report asynchronously.
type EmailReportRequest struct {
	Keyword    string `json:"keyword"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Email      string `json:"email"`
	MaxRecords int    `json:"max_records"`
}

// NewEmailReportRequest builds a request with the fixed record cap.
func NewEmailReportRequest(keyword, startDate, endDate, email string) *EmailReportRequest {
	return &EmailReportRequest{
		Keyword:    keyword,
		StartDate:  startDate,
		EndDate:    endDate,
		Email:      email,
		MaxRecords: EmailReportMaxRecords,
	}
}
