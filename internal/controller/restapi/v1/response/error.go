package response

// UnknownErrorMessage is returned for every pipeline failure; the precise
// cause is only logged.
const UnknownErrorMessage = "An unknown error occurred."

type Error struct {
	ErrorCode int    `json:"error_code" example:"500"`
	Message   string `json:"message" example:"An unknown error occurred."`
}
