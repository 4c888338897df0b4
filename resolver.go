package scaladoc

// DocsResolver discovers locally generated documentation for a file.
type DocsResolver interface {
	// FindLocalDocs returns the API directory of the newest locally built
	// docs for the project containing path. The second return value is
	// false when no project or no docs were found.
	FindLocalDocs(path string) (string, bool)
}
