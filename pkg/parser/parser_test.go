package parser

// testContext is a minimal Context for exercising parsers directly; none of
// the built-in parsers consult it, but passing a real value keeps these tests
// honest about the interface.
type testContext struct {
	sender     string
	suggesting bool
}

func (c testContext) Sender() string           { return c.sender }
func (c testContext) Suggesting() bool         { return c.suggesting }
func (c testContext) Value(string) (any, bool) { return nil, false }
