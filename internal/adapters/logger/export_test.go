package logger

// Export internal functions for white-box testing from the logger_test package.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
