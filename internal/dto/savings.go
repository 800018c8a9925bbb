package dto

type ActivateSavingsRequestDTO struct {
	Percentage int `json:"percentage" validate:"required,min=1,max=100" example:"10"`
}

type ActivateSavingsResponseDTO struct {
	Message string `json:"message"`
}
