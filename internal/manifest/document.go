// Package manifest reads, rewrites and checks microfrontend package.json
// files. Documents keep their key order so rewritten manifests diff cleanly.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	json "github.com/virtuald/go-ordered-json"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
)

// FileName is the manifest file name inside a microfrontend.
const FileName = "package.json"

// Document is an order-preserving JSON object.
type Document struct {
	members json.OrderedObject
}

// Parse decodes a JSON object. Numbers keep their source text.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseOrderedObject()
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decoding manifest: unexpected data after top-level object")
	}

	obj, ok := v.(json.OrderedObject)
	if !ok {
		return nil, fmt.Errorf("decoding manifest: top-level value is %T, want an object", v)
	}
	return &Document{members: obj}, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, mfeerrors.NewNotFoundError("manifest not found", path, "")
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, &mfeerrors.DetailError{
			Type:     "invalid manifest",
			Message:  err.Error(),
			Location: path,
			Cause:    mfeerrors.ErrValidation,
		}
	}
	return doc, nil
}

// Marshal encodes the document with two-space indentation and without
// HTML escaping. The output has no trailing newline.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	members := d.members
	if members == nil {
		members = json.OrderedObject{}
	}
	if err := enc.Encode(members); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.members))
	for i, m := range d.members {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (interface{}, bool) {
	for _, m := range d.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// String returns the string value stored under key, or "".
func (d *Document) String(key string) string {
	v, _ := d.Get(key)
	s, _ := v.(string)
	return s
}

// Set replaces the value under key in place, or appends it.
func (d *Document) Set(key string, value interface{}) {
	for i, m := range d.members {
		if m.Key == key {
			d.members[i].Value = value
			return
		}
	}
	d.members = append(d.members, json.Member{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (d *Document) Delete(key string) bool {
	for i, m := range d.members {
		if m.Key == key {
			d.members = append(d.members[:i], d.members[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{members: cloneValue(d.members).(json.OrderedObject)}
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case json.OrderedObject:
		out := make(json.OrderedObject, len(val))
		for i, m := range val {
			out[i] = json.Member{Key: m.Key, Value: cloneValue(m.Value)}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return val
	}
}

// object builds an ordered object from alternating keys and values.
func object(kv ...interface{}) json.OrderedObject {
	obj := make(json.OrderedObject, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		obj = append(obj, json.Member{Key: kv[i].(string), Value: kv[i+1]})
	}
	return obj
}

// truthy reports whether a decoded JSON value counts as set: non-empty
// strings, non-zero numbers, true, and any object or array.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
