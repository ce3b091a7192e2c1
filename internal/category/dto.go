package category

// CategoryDTO carries the create/rename form. The field name matches the
// storefront client.
type CategoryDTO struct {
	Name string `json:"nome"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CategoryDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "nome is required"}
	}
	return nil
}

type CategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}
