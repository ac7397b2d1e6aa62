package document

type implRenderer struct {
	tempDir string
}

// New creates a Renderer that stages files in tempDir while saving.
func New(tempDir string) Renderer {
	return &implRenderer{tempDir: tempDir}
}
