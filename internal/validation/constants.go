package validation

// Error messages
const (
	ErrMsgReadDataFmt      = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFmt    = "failed to load schema %s: %w"
	ErrMsgParseDataFmt     = "failed to parse JSON data: %w"
	ErrMsgReadSchemaFmt    = "failed to read schema: %w"
	ErrMsgParseSchemaFmt   = "failed to parse schema JSON: %w"
	ErrMsgAddResourceFmt   = "failed to add schema resource: %w"
	ErrMsgCompileSchemaFmt = "failed to compile schema: %w"
	ErrMsgValidationFailed = "schema validation failed"
)
