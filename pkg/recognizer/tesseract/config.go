package tesseract

type Option func(*Client)

func WithLanguages(languages ...string) Option {
	return func(c *Client) {
		c.languages = languages
	}
}
