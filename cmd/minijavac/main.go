// Command minijavac compiles and runs Mini-Java source files.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"minijavac/compiler"
	"minijavac/vm"
)

var (
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	okStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

var usage = heredoc.Doc(`
	minijavac compiles and runs Mini-Java programs.

	Usage:
	  minijavac -source prog.java -mode full       compile, write .obj, then run
	  minijavac -source prog.java -mode compile    compile only
	  minijavac -object prog.obj  -mode execute     run only

	Flags:
`)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("minijavac", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var (
		sourcePath string
		objectPath string
		mode       string
		trace      bool
	)
	fs.StringVar(&sourcePath, "source", "", "path to a .java source file")
	fs.StringVar(&objectPath, "object", "", "path to a .obj object file")
	fs.StringVar(&mode, "mode", "full", "one of: full, compile, execute")
	fs.BoolVar(&trace, "trace", false, "write a per-instruction execution trace to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch mode {
	case "full":
		return runFull(sourcePath, trace)
	case "compile":
		return runCompile(sourcePath)
	case "execute":
		return runExecute(objectPath, trace)
	default:
		fmt.Fprintln(os.Stderr, errStyle.Render(fmt.Sprintf("unknown mode %q", mode)))
		return 2
	}
}

func runCompile(sourcePath string) int {
	result, err := compileFile(sourcePath)
	if err != nil {
		reportError(err)
		return 1
	}
	objPath, err := writeObjectFile(sourcePath, result)
	if err != nil {
		reportError(err)
		return 1
	}
	fmt.Println(okStyle.Render(fmt.Sprintf("compiled %s -> %s", sourcePath, objPath)))
	return 0
}

func runFull(sourcePath string, trace bool) int {
	result, err := compileFile(sourcePath)
	if err != nil {
		reportError(err)
		return 1
	}
	objPath, err := writeObjectFile(sourcePath, result)
	if err != nil {
		reportError(err)
		return 1
	}
	return runExecute(objPath, trace)
}

func runExecute(objectPath string, trace bool) int {
	f, err := os.Open(objectPath)
	if err != nil {
		reportError(err)
		return 1
	}
	defer f.Close()

	prog, err := vm.Load(f)
	if err != nil {
		reportError(err)
		return 1
	}

	machine := vm.NewMachine(prog, os.Stdin, os.Stdout)
	cfg, err := loadMachineConfig(objectPath, machine)
	if err != nil {
		reportError(err)
		return 1
	}
	if trace || cfg.Trace {
		runID := uuid.New().String()
		fmt.Fprintf(os.Stderr, "# trace run %s\n", runID)
		machine.Trace = os.Stderr
	}
	if err := machine.Run(); err != nil {
		reportError(err)
		return 1
	}
	return 0
}

func compileFile(sourcePath string) (*compiler.Result, error) {
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, err
	}
	log.Println("minijavac: compiling", sourcePath)
	return compiler.Compile(string(src))
}

// loadMachineConfig reads minijavac.toml next to path (source or object
// file), applies the limits it sets to machine before Run, and returns the
// parsed config so callers can act on the remaining knobs (trace).
func loadMachineConfig(path string, machine *vm.Machine) (compiler.VMConfig, error) {
	cfg, err := compiler.LoadVMConfig(filepath.Dir(path))
	if err != nil {
		return compiler.VMConfig{}, err
	}
	machine.StackLimit = cfg.StackLimit
	machine.MemoryLimit = cfg.MemoryLimit
	return cfg, nil
}

func writeObjectFile(sourcePath string, result *compiler.Result) (string, error) {
	objPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".obj"
	f, err := os.Create(objPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buildID := uuid.New().String()
	if err := compiler.WriteObjectProgram(f, result.Instructions, buildID); err != nil {
		return "", err
	}
	return objPath, nil
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
}
