package dto

type PaymentMethodsDTO struct {
	PixKey  string `json:"pix_key"`
	Holder  string `json:"holder"`
	City    string `json:"city"`
	Payload string `json:"payload"`
}

type UpdatePaymentMethodsRequest struct {
	PixKey string `json:"pix_key" validate:"required"`
	Holder string `json:"holder" validate:"required,max=25"`
	City   string `json:"city" validate:"required,max=15"`
}
