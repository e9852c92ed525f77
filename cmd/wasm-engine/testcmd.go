package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// Test manifests follow the wast2json layout: a command list referencing
// binary modules in the manifest's directory.

type manifest struct {
	Commands []command `json:"commands"`
}

type command struct {
	Type     string     `json:"type"`
	Line     int        `json:"line"`
	Filename string     `json:"filename"`
	Action   *action    `json:"action"`
	Expected []argValue `json:"expected"`
	Text     string     `json:"text"`
}

type action struct {
	Type  string     `json:"type"`
	Field string     `json:"field"`
	Args  []argValue `json:"args"`
}

type argValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func testCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <manifest.json>",
		Short: "Run a wast2json-style test manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var mf manifest
			if err := json.Unmarshal(data, &mf); err != nil {
				return err
			}

			r := &testRunner{dir: filepath.Dir(args[0])}
			passed, failed := 0, 0
			for _, c := range mf.Commands {
				if err := r.run(c); err != nil {
					failed++
					fmt.Printf("%s line %d: %v\n", styled(errorStyle, "FAIL"), c.Line, err)
				} else {
					passed++
				}
			}
			fmt.Printf("%s %d passed, %d failed\n",
				styled(titleStyle, "tests"), passed, failed)
			if failed > 0 {
				return fmt.Errorf("%d test commands failed", failed)
			}
			return nil
		},
	}
}

type testRunner struct {
	dir   string
	store *runtime.Store
	inst  *runtime.Instance
}

func (r *testRunner) run(c command) error {
	switch c.Type {
	case "module":
		data, err := os.ReadFile(filepath.Join(r.dir, c.Filename))
		if err != nil {
			return err
		}
		r.store = runtime.NewStore(interp.New())
		mod, err := wasm.Decode(data, r.store.Types())
		if err != nil {
			return err
		}
		r.inst, err = r.store.Instantiate(mod, nil)
		return err

	case "assert_return":
		results, err := r.invoke(c.Action)
		if err != nil {
			return err
		}
		if len(results) != len(c.Expected) {
			return fmt.Errorf("got %d results, want %d", len(results), len(c.Expected))
		}
		for i, want := range c.Expected {
			if !valueMatches(results[i], want) {
				return fmt.Errorf("result %d = %v, want %s:%s", i, results[i], want.Type, want.Value)
			}
		}
		return nil

	case "assert_trap", "assert_exhaustion":
		_, err := r.invoke(c.Action)
		if err == nil {
			return fmt.Errorf("expected trap %q, call succeeded", c.Text)
		}
		if _, ok := err.(*runtime.Trap); !ok {
			return fmt.Errorf("expected trap, got %v", err)
		}
		return nil

	case "action":
		_, err := r.invoke(c.Action)
		return err

	default:
		// Linking and registration commands are outside the driver's
		// scope; skip them rather than failing whole manifests.
		return nil
	}
}

func (r *testRunner) invoke(a *action) ([]types.Value, error) {
	if r.inst == nil {
		return nil, fmt.Errorf("no module instantiated")
	}
	if a == nil || a.Type != "invoke" {
		return nil, fmt.Errorf("unsupported action")
	}
	args := make([]types.Value, len(a.Args))
	for i, raw := range a.Args {
		v, err := manifestValue(raw)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return r.inst.Invoke(a.Field, args...)
}

func manifestValue(v argValue) (types.Value, error) {
	switch v.Type {
	case "i32":
		u, err := strconv.ParseUint(v.Value, 10, 32)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewI32(int32(uint32(u))), nil
	case "i64":
		u, err := strconv.ParseUint(v.Value, 10, 64)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewI64(int64(u)), nil
	case "f32":
		u, err := strconv.ParseUint(v.Value, 10, 32)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewF32(math.Float32frombits(uint32(u))), nil
	case "f64":
		u, err := strconv.ParseUint(v.Value, 10, 64)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewF64(math.Float64frombits(u)), nil
	default:
		return types.Value{}, fmt.Errorf("unsupported value type %q", v.Type)
	}
}

func valueMatches(got types.Value, want argValue) bool {
	switch want.Type {
	case "i32":
		u, err := strconv.ParseUint(want.Value, 10, 32)
		return err == nil && uint32(got.I32()) == uint32(u)
	case "i64":
		u, err := strconv.ParseUint(want.Value, 10, 64)
		return err == nil && uint64(got.I64()) == u
	case "f32":
		if want.Value == "nan:canonical" || want.Value == "nan:arithmetic" {
			return got.Kind() == types.KindF32 && math.IsNaN(float64(got.F32()))
		}
		u, err := strconv.ParseUint(want.Value, 10, 32)
		return err == nil && math.Float32bits(got.F32()) == uint32(u)
	case "f64":
		if want.Value == "nan:canonical" || want.Value == "nan:arithmetic" {
			return got.Kind() == types.KindF64 && math.IsNaN(got.F64())
		}
		u, err := strconv.ParseUint(want.Value, 10, 64)
		return err == nil && math.Float64bits(got.F64()) == u
	default:
		return false
	}
}
