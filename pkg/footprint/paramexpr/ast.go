package paramexpr

// File is a whole override document
type File struct {
	Entries []*Entry `( @@ | Sep )*`
}

// Entry is one assignment
// Example: Pins.pin count = 60
type Entry struct {
	Page  []string `@Ident+ Dot`
	Key   []string `@Ident+ Equals`
	Value *Value   `@@`
}

// Value is the right-hand side of an assignment
type Value struct {
	String *string  `  @String`
	Float  *float64 `| @Float`
	Int    *int64   `| @Int`
	Bool   *Boolean `| @( "true" | "false" )`
	Word   *string  `| @Ident`
}

// Boolean captures true/false keywords
type Boolean bool

func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Any returns the Go value held by v
func (v *Value) Any() any {
	switch {
	case v.String != nil:
		return *v.String
	case v.Float != nil:
		return *v.Float
	case v.Int != nil:
		return int(*v.Int)
	case v.Bool != nil:
		return bool(*v.Bool)
	case v.Word != nil:
		return *v.Word
	}
	return nil
}
