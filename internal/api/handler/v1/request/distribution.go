package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDistributionRequest struct {
	Reference string `json:"reference"`
}

func (req *CreateDistributionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Reference, validation.Required, validation.Length(1, 100)),
	)
}
