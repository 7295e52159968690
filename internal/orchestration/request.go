package orchestration

import (
	"fmt"
	"strings"

	"github.com/agbru/bigint"
	apperrors "github.com/agbru/bigint/internal/errors"
)

// Request is a parsed calculator operation. X and Y are always set; M is set
// only for modpow.
type Request struct {
	Op string
	X  *bigint.Int
	Y  *bigint.Int
	M  *bigint.Int
}

// canonicalOps maps accepted operation spellings to their canonical name.
var canonicalOps = map[string]string{
	"add": "add", "+": "add",
	"sub": "sub", "-": "sub",
	"mul": "mul", "*": "mul", "x": "mul",
	"div": "div", "/": "div",
	"rem": "rem", "%": "rem",
	"divmod": "divmod",
	"gcd":    "gcd",
	"modpow": "modpow", "powmod": "modpow",
	"cmp": "cmp",
}

// opArity gives the operand count of each canonical operation.
var opArity = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "rem": 2,
	"divmod": 2, "gcd": 2, "cmp": 2,
	"modpow": 3,
}

// OpNames returns the canonical operation names in display order.
func OpNames() []string {
	return []string{"add", "sub", "mul", "div", "rem", "divmod", "gcd", "modpow", "cmp"}
}

// ParseRequest parses tokens of the form "op x y [m]" into a Request. The
// operands are parsed in the given base (0 infers the base from prefixes).
// Unknown operations and arity mismatches yield a ValidationError; malformed
// operands pass through the bigint parse errors unchanged.
func ParseRequest(tokens []string, base int) (Request, error) {
	if len(tokens) == 0 {
		return Request{}, apperrors.ValidationError{Field: "expression", Message: "empty expression"}
	}

	op, ok := canonicalOps[strings.ToLower(tokens[0])]
	if !ok {
		return Request{}, apperrors.ValidationError{
			Field:   "operation",
			Message: "unknown operation " + tokens[0] + " (try: " + strings.Join(OpNames(), ", ") + ")",
		}
	}

	operands := tokens[1:]
	if len(operands) != opArity[op] {
		return Request{}, apperrors.ValidationError{
			Field:   "operands",
			Message: fmt.Sprintf("%s takes %d operands, got %d", op, opArity[op], len(operands)),
		}
	}

	parsed := make([]*bigint.Int, len(operands))
	for i, tok := range operands {
		v, err := bigint.ParseInt(tok, base)
		if err != nil {
			return Request{}, apperrors.WrapError(err, "operand %d", i+1)
		}
		parsed[i] = v
	}

	req := Request{Op: op, X: parsed[0], Y: parsed[1]}
	if op == "modpow" {
		req.M = parsed[2]
	}
	return req, nil
}
