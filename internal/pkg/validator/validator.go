package validator

// Validator validates structs using tag-based rules.
type Validator interface {
	// Validate returns nil when data passes validation, otherwise an error
	// describing the failed fields.
	Validate(data any) error
}
