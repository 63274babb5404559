package npm

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotObject   = errors.New("not a JSON object")
)

// parseDocument validates b and returns its top-level object.
func parseDocument(b []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(b) {
		return gjson.Result{}, errInvalidJSON
	}
	doc := gjson.ParseBytes(b)
	if !doc.IsObject() {
		return gjson.Result{}, errNotObject
	}
	return doc, nil
}

// eachMember calls fn for every member of obj in document order, repeated
// keys included. Any value other than an object yields nothing.
func eachMember(obj gjson.Result, fn func(key string, v gjson.Result)) {
	if !obj.IsObject() {
		return
	}
	obj.ForEach(func(k, v gjson.Result) bool {
		fn(k.String(), v)
		return true
	})
}

// hasMembers reports whether obj is an object with at least one member.
// Only the first member is scanned.
func hasMembers(obj gjson.Result) bool {
	if !obj.IsObject() {
		return false
	}
	found := false
	obj.ForEach(func(_, _ gjson.Result) bool {
		found = true
		return false
	})
	return found
}

// looseString returns v as a Go string when it is a JSON string and ""
// for any other value.
func looseString(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return ""
}
