package oauth1

import (
	"sort"
	"strings"
)

// RequestParameters is an ordered mapping of parameter name to value with
// unique keys. A set is built fresh for every signed request and never
// reused once its signature has been computed and appended.
type RequestParameters struct {
	keys   []string
	values map[string]string
}

func NewRequestParameters() *RequestParameters {
	return &RequestParameters{values: map[string]string{}}
}

// Set inserts the key or overwrites its value, keeping the original
// insertion position.
func (p *RequestParameters) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// SetIfAbsent inserts the key only when it is not already present and
// reports whether it did.
func (p *RequestParameters) SetIfAbsent(key, value string) bool {
	if _, ok := p.values[key]; ok {
		return false
	}
	p.Set(key, value)
	return true
}

func (p *RequestParameters) Get(key string) (string, bool) {
	value, ok := p.values[key]
	return value, ok
}

func (p *RequestParameters) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for index, existing := range p.keys {
		if existing == key {
			p.keys = append(p.keys[:index], p.keys[index+1:]...)
			break
		}
	}
}

func (p *RequestParameters) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *RequestParameters) Keys() []string {
	return append([]string(nil), p.keys...)
}

// sortedKeys returns the keys ordered by ascending comparison of their
// percent-encoded form. The base string mandates this ordering regardless
// of insertion order.
func (p *RequestParameters) sortedKeys() []string {
	keys := append([]string(nil), p.keys...)
	sort.Slice(keys, func(i, j int) bool {
		return percentEncode(keys[i]) < percentEncode(keys[j])
	})
	return keys
}

// Encode serializes the set as a percent-encoded query string in sorted key
// order, ready to be appended to the base URL.
func (p *RequestParameters) Encode() string {
	pairs := make([]string, 0, len(p.keys))
	for _, key := range p.sortedKeys() {
		pairs = append(pairs, percentEncode(key)+"="+percentEncode(p.values[key]))
	}
	return strings.Join(pairs, "&")
}
