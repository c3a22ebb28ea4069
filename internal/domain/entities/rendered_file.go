package entities

// RenderedFile is a named PDF ready to be packaged.
type RenderedFile struct {
	Name    string
	OrderID string
	Content []byte
}
