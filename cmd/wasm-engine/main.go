// Command wasm-engine runs WebAssembly modules on the engine: execute an
// exported function, run a JSON test manifest, or dump translated
// bytecode.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/translator"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"

	"github.com/wippyai/wasm-engine/bytecode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// plain reports whether styled output should be suppressed.
func plain() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func styled(s lipgloss.Style, text string) string {
	if plain() {
		return text
	}
	return s.Render(text)
}

func main() {
	root := &cobra.Command{
		Use:           "wasm-engine",
		Short:         "WebAssembly virtual machine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			logger, err := zap.NewDevelopment()
			if err == nil {
				runtime.SetLogger(logger)
			}
		}
	}

	root.AddCommand(runCmd(), testCmd(), dumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styled(errorStyle, "error: "+err.Error()))
		os.Exit(1)
	}
}

func loadInstance(path string) (*runtime.Store, *runtime.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	store := runtime.NewStore(interp.New())
	mod, err := wasm.Decode(data, store.Types())
	if err != nil {
		return nil, nil, err
	}
	inst, err := store.Instantiate(mod, nil)
	if err != nil {
		return nil, nil, err
	}
	return store, inst, nil
}

func runCmd() *cobra.Command {
	var (
		funcName    string
		list        bool
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "run <module.wasm> [args...]",
		Short: "Instantiate a module and invoke an exported function",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, inst, err := loadInstance(args[0])
			if err != nil {
				return err
			}

			if interactive {
				return runInteractive(inst, args[0])
			}
			if list || funcName == "" {
				listExports(inst)
				return nil
			}

			fn, err := inst.ExportedFunction(funcName)
			if err != nil {
				return err
			}
			vals, err := parseArgs(fn.Type(), args[1:])
			if err != nil {
				return err
			}
			results, err := inst.Invoke(funcName, vals...)
			if err != nil {
				return err
			}
			fmt.Println(styled(resultStyle, formatResults(results)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&funcName, "func", "f", "", "function to invoke")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list exports and exit")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "interactive invoke TUI")
	return cmd
}

func listExports(inst *runtime.Instance) {
	fmt.Println(styled(titleStyle, "exports"))
	for _, e := range inst.Module().Exports {
		switch e.Kind {
		case wasm.KindFunc:
			ext, _ := inst.Export(e.Name)
			fmt.Printf("  func %s%s\n", e.Name, signatureOf(ext.Func.Type()))
		case wasm.KindMemory:
			fmt.Printf("  memory %s\n", e.Name)
		case wasm.KindTable:
			fmt.Printf("  table %s\n", e.Name)
		case wasm.KindGlobal:
			fmt.Printf("  global %s\n", e.Name)
		case wasm.KindTag:
			fmt.Printf("  tag %s\n", e.Name)
		}
	}
}

func signatureOf(ft *types.FunctionType) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range ft.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if len(ft.Results) > 0 {
		b.WriteString(" -> (")
		for i, r := range ft.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.String())
		}
		b.WriteByte(')')
	}
	return b.String()
}

func parseArgs(ft *types.FunctionType, raw []string) ([]types.Value, error) {
	if len(raw) != len(ft.Params) {
		return nil, fmt.Errorf("function takes %d arguments, got %d", len(ft.Params), len(raw))
	}
	vals := make([]types.Value, len(raw))
	for i, s := range raw {
		v, err := parseValue(ft.Params[i], s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseValue(t types.ValType, s string) (types.Value, error) {
	switch t.Kind {
	case types.KindI32:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewI32(int32(v)), nil
	case types.KindI64:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewI64(v), nil
	case types.KindF32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewF32(float32(v)), nil
	case types.KindF64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.Value{}, err
		}
		return types.NewF64(v), nil
	default:
		return types.Value{}, fmt.Errorf("cannot parse %s argument from the command line", t)
	}
}

func formatResults(results []types.Value) string {
	if len(results) == 0 {
		return "()"
	}
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-bytecode <module.wasm>",
		Short: "Translate a module and print its bytecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ts := types.NewTypeStore()
			mod, err := wasm.Decode(data, ts)
			if err != nil {
				return err
			}
			compiled, err := translator.CompileModule(mod)
			if err != nil {
				return err
			}
			for _, c := range compiled {
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("func[%d]", c.FuncIndex)
				}
				fmt.Println(styled(titleStyle, name))
				fmt.Printf("  frame=%d scratch=%d try-blocks=%d\n",
					c.FrameSize, c.ScratchSize, len(c.TryTable))
				fmt.Print(indent(bytecode.Disassemble(c.Code), "  "))
			}
			return nil
		},
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}
