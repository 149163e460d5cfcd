package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldDirectory   = "directory"
	FieldCategory    = "category"
	FieldDestination = "destination"
	FieldExtension   = "extension"
	FieldURL         = "url"
	FieldFormat      = "format"
	FieldOutputFile  = "output_file"
	FieldRecipient   = "recipient"
	FieldCondition   = "condition"
	FieldAttempt     = "attempt"
	FieldStatus      = "status"
	FieldReason      = "reason"
	FieldOperation   = "operation"
	FieldCount       = "count"
)
