package log

import "bills/internal/core"

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldErrorType   = "error_type"
	FieldOperation   = "operation"
	FieldBillID      = "bill_id"
	FieldBillName    = "bill_name"
	FieldAmount      = "amount"
	FieldDueDate     = "due_date"
	FieldCategory    = "category"
	FieldPaid        = "paid"
	FieldRecurring   = "recurring"
	FieldCount       = "count"
	FieldBackend     = "backend"
	FieldSnapshotKey = "snapshot_key"
	FieldPath        = "path"
	FieldRefDate     = "ref_date"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentStorage  = "storage"
	ComponentBackend  = "backend"
	ComponentReminder = "reminder"
	ComponentView     = "view"
	ComponentMetrics  = "metrics"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpToggle   = "toggle_paid"
	OpDelete   = "delete"
	OpLoad     = "load"
	OpSave     = "save"
	OpSeed     = "seed"
	OpValidate = "validate"
	OpStartup  = "startup"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
	ErrorTypeNotFound      = "not_found_error"
	ErrorTypePersistence   = "persistence_error"
	ErrorTypeInternal      = "internal_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithComponent adds component field
func (f LogFields) WithComponent(component string) LogFields {
	f[FieldComponent] = component
	return f
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithErrorType adds the error category field
func (f LogFields) WithErrorType(errorType string) LogFields {
	f[FieldErrorType] = errorType
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithBill adds the identifying fields of a bill
func (f LogFields) WithBill(b core.Bill) LogFields {
	f[FieldBillID] = b.ID
	f[FieldBillName] = b.Name
	f[FieldAmount] = b.Amount.String()
	f[FieldDueDate] = b.DueDate.String()
	f[FieldCategory] = string(b.Category)
	f[FieldPaid] = b.IsPaid
	return f
}

// WithCount adds count field
func (f LogFields) WithCount(n int) LogFields {
	f[FieldCount] = n
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
