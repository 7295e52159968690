package bigint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// goldenVector mirrors the records written by cmd/generate-golden.
type goldenVector struct {
	Op   string `json:"op"`
	X    string `json:"x"`
	Y    string `json:"y"`
	M    string `json:"m,omitempty"`
	Want string `json:"want"`
	Rem  string `json:"rem,omitempty"`
}

// TestGoldenVectors replays testdata/golden.json against the engine. The
// file is produced by cmd/generate-golden with math/big as the oracle;
// regenerate it with `go run ./cmd/generate-golden`.
func TestGoldenVectors(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "golden.json"))
	if os.IsNotExist(err) {
		t.Skip("testdata/golden.json not present; run cmd/generate-golden")
	}
	if err != nil {
		t.Fatalf("read golden file: %v", err)
	}

	var vectors []goldenVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		t.Fatalf("decode golden file: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatal("golden file contains no vectors")
	}

	for i, v := range vectors {
		t.Run(v.Op, func(t *testing.T) {
			t.Parallel()
			x := mustParseGolden(t, v.X)
			y := mustParseGolden(t, v.Y)

			var got, rem *Int
			var err error
			switch v.Op {
			case "add":
				got = new(Int).Add(x, y)
			case "sub":
				got = new(Int).Sub(x, y)
			case "mul":
				got = new(Int).Mul(x, y)
			case "div":
				got, rem, err = new(Int).QuoRem(x, y, new(Int))
			case "rem":
				got, err = new(Int).Rem(x, y)
			case "gcd":
				got = new(Int).GCD(x, y)
			case "modpow":
				got, err = new(Int).ModPow(x, y, mustParseGolden(t, v.M))
			default:
				t.Fatalf("vector %d: unknown op %q", i, v.Op)
			}
			if err != nil {
				t.Fatalf("vector %d (%s %s %s): %v", i, v.Op, v.X, v.Y, err)
			}
			if got.String() != v.Want {
				t.Errorf("vector %d: %s(%s, %s) = %s, want %s", i, v.Op, v.X, v.Y, got, v.Want)
			}
			if v.Rem != "" && rem.String() != v.Rem {
				t.Errorf("vector %d: remainder = %s, want %s", i, rem, v.Rem)
			}
		})
	}
}

func mustParseGolden(t *testing.T, s string) *Int {
	t.Helper()
	n, err := ParseInt(s, 10)
	if err != nil {
		t.Fatalf("ParseInt(%q): %v", s, err)
	}
	return n
}
