package response

import "github.com/andreyxaxa/GreenPass-Analyzer/internal/entity"

const SuccessMessage = "Success!"

type Analysis struct {
	Status  int                 `json:"status" example:"200"`
	Message string              `json:"message" example:"Success!"`
	Data    *entity.Certificate `json:"data"`
}
