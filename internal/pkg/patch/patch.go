package patch

// Coalesce returns *field when field is set, otherwise current.
// Used to fold optional update fields onto an existing record.
func Coalesce[T any](field *T, current T) T {
	if field != nil {
		return *field
	}
	return current
}
