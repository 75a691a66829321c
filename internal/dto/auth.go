package dto

type RegisterRequestDTO struct {
	Login    string `json:"login" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
	FullName string `json:"full_name" example:"Ana Souza"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"ana@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
