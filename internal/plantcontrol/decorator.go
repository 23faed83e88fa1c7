package plantcontrol

import "fmt"

// Decorator passes every call to its inner control. Concrete decorators
// embed it and override what they change.
type Decorator struct {
	Control
}

func NewDecorator(inner Control) *Decorator {
	return &Decorator{Control: inner}
}

// Inner returns the wrapped control.
func (d *Decorator) Inner() Control { return d.Control }

// DecoratorFunc wraps a control.
type DecoratorFunc func(inner Control) (Control, error)

// Decorate applies fns in order, each wrapping the result of the previous
// one, and returns the outermost control.
func Decorate(base Control, fns ...DecoratorFunc) (Control, error) {
	current := base
	for i, fn := range fns {
		next, err := fn(current)
		if err == nil && next == nil {
			err = fmt.Errorf("returned nil: %w", ErrInconsistentConfiguration)
		}
		if err != nil {
			// undo registrations made by the decorators already built
			current.TurnOff()
			return nil, fmt.Errorf("decorator %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}
