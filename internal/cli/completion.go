package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation. All
// shells generate from the same registry, so adding a new flag only requires
// appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without the dash (e.g. "base")
	Short     string   // short alias without the dash (e.g. "b")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g. "radix", "duration")
	IsFile    bool     // the flag takes a file path
	IsBackend bool     // values come from the backend registry (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion
// generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "base", Short: "b", Help: "Input/output radix", Values: []string{"0", "2", "8", "10", "16", "36"}, ValueName: "radix"},
	{Long: "timeout", Help: "Maximum evaluation time", Values: []string{"1s", "30s", "1m", "5m", "1h"}, ValueName: "duration"},
	{Long: "backend", Help: "Arithmetic backend", IsBackend: true, ValueName: "backend"},
	{Long: "karatsuba-threshold", Help: "Schoolbook/Karatsuba crossover in limbs", Values: []string{"20", "40", "80", "160"}, ValueName: "limbs"},
	{Long: "parallel-threshold", Help: "Parallel recursion threshold in limbs", Values: []string{"2048", "4096", "8192", "16384"}, ValueName: "limbs"},
	{Long: "truncate", Help: "Max digits shown on the terminal", Values: []string{"0", "80", "200", "1000"}, ValueName: "digits"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Prometheus metrics listen address", ValueName: "address"},
	{Long: "verbose", Short: "v", Help: "Debug-level logging"},
	{Long: "quiet", Short: "q", Help: "Result-only output"},
	{Long: "tui", Help: "Full-screen interactive mode"},
	{Long: "calibrate", Help: "Calibrate multiplication thresholds"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for the given shell.
// backends is the live backend registry, completed for the -backend flag.
func GenerateCompletion(out io.Writer, shell string, backends []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, backends)
	case "zsh":
		return generateZshCompletion(out, backends)
	case "fish":
		return generateFishCompletion(out, backends)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// flagValues resolves the completion values of a flag, expanding the dynamic
// backend list.
func flagValues(f FlagCompletion, backends []string) []string {
	if f.IsBackend {
		return backends
	}
	return f.Values
}

// allFlagSpellings returns every accepted spelling (-x, -long) of the
// registered flags, for the top-level suggestion list.
func allFlagSpellings() []string {
	var names []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			names = append(names, "-"+f.Long)
		}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
	}
	return names
}

func generateBashCompletion(out io.Writer, backends []string) error {
	fmt.Fprintf(out, "# bash completion for bigcalc\n")
	fmt.Fprintf(out, "# Install: source <(bigcalc -completion bash)\n\n")
	fmt.Fprintf(out, "_bigcalc() {\n")
	fmt.Fprintf(out, "    local cur prev\n")
	fmt.Fprintf(out, "    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(out, "    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	fmt.Fprintf(out, "    case \"$prev\" in\n")
	for _, f := range flagRegistry {
		values := flagValues(f, backends)
		if len(values) == 0 && !f.IsFile {
			continue
		}
		spellings := "-" + f.Long
		if f.Short != "" {
			spellings += "|-" + f.Short
		}
		if f.IsFile {
			fmt.Fprintf(out, "        %s)\n            COMPREPLY=( $(compgen -f -- \"$cur\") )\n            return 0\n            ;;\n", spellings)
			continue
		}
		fmt.Fprintf(out, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n            return 0\n            ;;\n",
			spellings, strings.Join(values, " "))
	}
	fmt.Fprintf(out, "    esac\n\n")
	fmt.Fprintf(out, "    if [[ \"$cur\" == -* ]]; then\n")
	fmt.Fprintf(out, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(allFlagSpellings(), " "))
	fmt.Fprintf(out, "        return 0\n    fi\n}\n\n")
	fmt.Fprintf(out, "complete -F _bigcalc bigcalc\n")
	return nil
}

func generateZshCompletion(out io.Writer, backends []string) error {
	fmt.Fprintf(out, "#compdef bigcalc\n")
	fmt.Fprintf(out, "# zsh completion for bigcalc\n")
	fmt.Fprintf(out, "# Install: bigcalc -completion zsh > \"${fpath[1]}/_bigcalc\"\n\n")
	fmt.Fprintf(out, "_bigcalc() {\n")
	fmt.Fprintf(out, "    _arguments \\\n")
	for _, f := range flagRegistry {
		values := flagValues(f, backends)
		spec := "'-" + f.Long + "[" + zshEscape(f.Help) + "]"
		if len(values) > 0 {
			spec += ":" + f.ValueName + ":(" + strings.Join(values, " ") + ")"
		} else if f.IsFile {
			spec += ":" + f.ValueName + ":_files"
		}
		spec += "'"
		fmt.Fprintf(out, "        %s \\\n", spec)
	}
	fmt.Fprintf(out, "        '*:expression:'\n")
	fmt.Fprintf(out, "}\n\n_bigcalc \"$@\"\n")
	return nil
}

// zshEscape protects help text inside single-quoted _arguments specs.
func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", "'\\''")
	return strings.ReplaceAll(s, "[", "\\[")
}

func generateFishCompletion(out io.Writer, backends []string) error {
	fmt.Fprintf(out, "# fish completion for bigcalc\n")
	fmt.Fprintf(out, "# Install: bigcalc -completion fish > ~/.config/fish/completions/bigcalc.fish\n\n")
	for _, f := range flagRegistry {
		line := "complete -c bigcalc -o " + f.Long
		if f.Short != "" {
			line += " -o " + f.Short
		}
		line += " -d '" + strings.ReplaceAll(f.Help, "'", "\\'") + "'"
		if values := flagValues(f, backends); len(values) > 0 {
			line += " -x -a '" + strings.Join(values, " ") + "'"
		} else if f.IsFile {
			line += " -r"
		}
		fmt.Fprintf(out, "%s\n", line)
	}
	return nil
}
