package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary keys into random readable names. It leaks memory,
// but generates the names lazily, so it's not a problem unless you're actually
// using it. Vertex clones share a label, so a readable name is a lot easier to
// follow across fragment dumps than an id.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Keys must be comparable. Nil pointers, maps and the like are all "Ø".
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}
	switch value := reflect.ValueOf(key); value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		if value.IsNil() {
			return "Ø"
		}
	}

	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[key] = r
	return r
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
