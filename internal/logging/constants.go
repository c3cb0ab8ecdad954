package logging

// Standardized field names for structured logging.
const (
	FieldFile        = "file_path"
	FieldCategory    = "category"
	FieldConfidence  = "confidence"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldKeyword     = "keyword"
	FieldVariant     = "variant"
	FieldBackend     = "backend"
	FieldReason      = "reason"
	FieldStatus      = "status"
	FieldDuration    = "duration_ms"
	FieldCount       = "count"
	FieldDelimiter   = "delimiter"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
	FieldCorrection  = "correction_id"
)
