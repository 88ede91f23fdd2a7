package services

// Renderer converts Markdown source to HTML.
type Renderer interface {
	Render(source string) (string, error)
}
