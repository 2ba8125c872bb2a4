package iso20022

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// ErrDuplicateKey is returned when a JSON object repeats a key. A repeated
// element would otherwise be dropped silently, and a choice object could
// smuggle in a second alternative.
var ErrDuplicateKey = errors.New("iso20022: duplicate JSON key")

type dupFrame struct {
	object       bool
	path         pathRef
	keys         map[string]struct{}
	expectingKey bool
	key          string
	n            int
}

// checkDuplicateKeys walks data once and reports the first repeated key with
// its JSON Pointer.
func checkDuplicateKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []dupFrame
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				p := advance(stack)
				stack = append(stack, dupFrame{object: d == '{', path: p, keys: map[string]struct{}{}, expectingKey: true})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
			continue
		}
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if key, ok := tok.(string); ok && top.object && top.expectingKey {
				if _, dup := top.keys[key]; dup {
					return fmt.Errorf("%w %q at %s", ErrDuplicateKey, key, top.path.Field(key).Pointer())
				}
				top.keys[key] = struct{}{}
				top.key = key
				top.expectingKey = false
				continue
			}
		}
		advance(stack)
	}
}

// advance returns the path of the value starting in the innermost container
// and moves that container past it.
func advance(stack []dupFrame) pathRef {
	if len(stack) == 0 {
		return pathRef{}
	}
	top := &stack[len(stack)-1]
	if top.object {
		top.expectingKey = true
		return top.path.Field(top.key)
	}
	p := top.path.Index(top.n)
	top.n++
	return p
}
