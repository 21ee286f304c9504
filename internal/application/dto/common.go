package dto

// DateLayout formato de fechas de calendario (contactDate, meetingDate) en el
// API del backend.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error del backend.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
