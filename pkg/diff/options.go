package diff

// Option is a functional option for configuring a Differ
type Option func(*differ)

// WithTranslator sets the name translator used for function lookups
func WithTranslator(t *Translator) Option {
	return func(d *differ) {
		if t != nil {
			d.translator = t
		}
	}
}
