package product

// ProductDTO carries the create/update form.
type ProductDTO struct {
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Price    float64 `json:"prezzo"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d ProductDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "nome is required"}
	}
	if d.Price < 0 {
		return ValidationError{Msg: "prezzo must not be negative"}
	}
	return nil
}

type ProductsResponse struct {
	Products []*Product `json:"products"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}
