package usecasecontract

// IValidator validates raw input before it reaches a repository.
type IValidator interface {
	ValidateID(id string) error
	ValidateTitle(title string) error
}
