package errors

// Convenience functions for common error patterns

// Date and document errors

func DateParse(path string, cause error) *BlogError {
	return Wrap(cause, CategoryParse, SeverityFatal, "cannot derive date").
		WithContext("path", path)
}

// Config errors

func ConfigNotFound(path string) *BlogError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(field, reason string) *BlogError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func PageSizeInvalid(size int) *BlogError {
	return New(CategoryConfig, SeverityFatal, "page size must be a positive integer").
		WithContext("page_size", size)
}

// Collaborator errors

func RepositoryFailure(cause error) *BlogError {
	return Wrap(cause, CategoryRepository, SeverityFatal, "document repository failed")
}

func TemplateMissing(group, name string) *BlogError {
	return New(CategoryTemplate, SeverityFatal, "template does not resolve").
		WithContext("group", group).
		WithContext("name", name)
}

// Output errors

func RenderFailed(path string, cause error) *BlogError {
	return Wrap(cause, CategoryRender, SeverityFatal, "page render failed").
		WithContext("path", path)
}

func OutputError(operation string, cause error) *BlogError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output operation failed").
		WithContext("operation", operation)
}
