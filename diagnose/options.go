package diagnose

import "fmt"

// Option is a function that configures a Pipeline during construction
type Option func(*Pipeline) error

// WithValidator registers a validator for a single schema variant.
// Registering a second validator for the same variant replaces the first.
func WithValidator(v Variant, fn ValidateFunc) Option {
	return func(p *Pipeline) error {
		if !v.IsValid() {
			return fmt.Errorf("unknown variant %d", int(v))
		}
		if fn == nil {
			return fmt.Errorf("nil validator for variant %s", v)
		}
		p.validators[v] = fn
		return nil
	}
}

// WithValidators registers validators for several variants at once.
func WithValidators(validators map[Variant]ValidateFunc) Option {
	return func(p *Pipeline) error {
		for v, fn := range validators {
			if err := WithValidator(v, fn)(p); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = NopLogger{}
		}
		p.logger = logger
		return nil
	}
}
