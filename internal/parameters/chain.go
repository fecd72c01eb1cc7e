package parameters

import "errors"

type chain []Reader

// Chain returns a Reader that consults readers in order and returns the
// first value found. A reader failing with anything other than
// ErrParameterNotFound stops the lookup and its error is returned.
func Chain(readers ...Reader) Reader {
	out := make(chain, 0, len(readers))
	for _, r := range readers {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (c chain) ReadText(key string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}

	for _, r := range c {
		value, err := r.ReadText(key)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrParameterNotFound) {
			return "", err
		}
	}
	return "", notFound(key)
}
