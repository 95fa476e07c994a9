// Package must turns errors into panics, for setup code that
// cannot go on after an error, such as loading embedded data.
package must

// Do panics if err is not nil.
func Do(err error) {
	if err != nil {
		panic(err)
	}
}

// Get returns v, or panics if err is not nil.
//
//	f := must.Get(os.Open(name))
func Get[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Get2 is Get for functions returning two values and an error.
func Get2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	if err != nil {
		panic(err)
	}
	return v1, v2
}
