package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxiomsBuiltinTypesAreDistinct(t *testing.T) {
	a := NewAxioms()
	assert.NotSame(t, a.IntegerType(), a.DecimalType())
	assert.NotSame(t, a.IntegerType(), a.TextType())
	assert.NotSame(t, a.IntegerType(), a.EmptyType())
}

func TestAxiomsPointerTypeMemoizesByElementIdentity(t *testing.T) {
	a := NewAxioms()

	p1 := a.PointerType(a.IntegerType())
	p2 := a.PointerType(a.IntegerType())
	assert.Same(t, p1, p2, "two requests for ptr<integer> must return the same declaration")

	p3 := a.PointerType(a.DecimalType())
	assert.NotSame(t, p1, p3, "ptr<integer> and ptr<decimal> must be distinct declarations")
}

func TestAxiomsPointerTypeOfNilIsNil(t *testing.T) {
	a := NewAxioms()
	assert.Nil(t, a.PointerType(nil))
}
