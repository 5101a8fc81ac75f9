package datagrid

import "errors"

// Common errors returned by the datagrid package.
var (
	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrInvalidFilter is returned when a filter expression is invalid.
	ErrInvalidFilter = errors.New("invalid filter expression")

	// ErrTypeMismatch is returned when a value cannot be assigned to a field.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNoDataSource is returned when a required data source is nil.
	ErrNoDataSource = errors.New("data source is nil")

	// ErrNotSlice is returned when items are not passed as a slice or array.
	ErrNotSlice = errors.New("items are not a slice")

	// ErrFieldNotFound is returned when an item has no field with the given name.
	ErrFieldNotFound = errors.New("field not found")

	// ErrReadOnlyField is returned when a field cannot be written.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrNotSortable is returned when sorting by a column that does not allow it.
	ErrNotSortable = errors.New("column is not sortable")

	// ErrInvalidProperty is raised when an observable property is declared incorrectly.
	ErrInvalidProperty = errors.New("invalid property declaration")
)
