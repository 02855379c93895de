package registry

// setString adds a column to a partial-update change set when the request
// actually carried the field. Nil pointers mean "leave untouched".
func setString(changes map[string]any, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}

// setBool is the boolean counterpart of setString
func setBool(changes map[string]any, column string, value *bool) {
	if value != nil {
		changes[column] = *value
	}
}
