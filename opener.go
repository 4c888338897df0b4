package scaladoc

// Opener shows a URL to the user, typically in a web browser.
type Opener interface {
	Open(url string) error
}
