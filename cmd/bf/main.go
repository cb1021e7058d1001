package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	bf "nickandperla.net/brainfuck"
)

var configPath *string = flag.String("config", "", "Optional toml config for the bf tool. See ToolConfig")

var expectPath *string = flag.String("expect", "", "Path to a reference output. After the run, an output fidelity score [0-100] is reported")

var verbose *bool = flag.Bool("verbose", false, "Enable debug logging")

// countingWriter tracks how many bytes the program emitted, for run records.
type countingWriter struct {
	w io.Writer
	n int
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += n
	return n, err
}

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	toolConfig := bf.DefaultToolConfig()
	if *configPath != "" {
		loaded, err := bf.LoadToolConfig(*configPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		toolConfig = loaded.Clone()
	}
	if *verbose {
		toolConfig.Verbose = true
	}
	if *expectPath != "" {
		toolConfig.Expect = *expectPath
	}
	if toolConfig.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	var source io.Reader
	var sourceName string
	var machineInput io.Reader = os.Stdin

	if flag.NArg() > 0 {
		sourceName = flag.Arg(0)
		sourceFile, err := os.Open(sourceName)
		if err != nil {
			log.Fatalf("Unable to open program source [%s]: %v", sourceName, err)
		}
		defer sourceFile.Close()
		source = sourceFile
	} else {
		// Program text arrives on stdin, so the program itself gets no input
		// stream.
		sourceName = "<stdin>"
		source = os.Stdin
		machineInput = strings.NewReader("")
	}

	program, err := bf.Translate(source)
	if err != nil {
		log.Errorf("Translation of [%s] failed: %v", sourceName, err)
		os.Exit(1)
	}
	log.Debugf("Translated [%s] into [%d] instructions", sourceName, len(program))

	output := &countingWriter{w: os.Stdout}
	var captured *bytes.Buffer
	if toolConfig.Expect != "" {
		captured = &bytes.Buffer{}
		output.w = io.MultiWriter(os.Stdout, captured)
	}

	machine := bf.NewMachine(program, &bf.MachineConfig{
		Input:  machineInput,
		Output: output,
	})

	start := time.Now()
	runErr := machine.Run()
	elapsed := time.Since(start)

	log.Debugf("Executed [%d] instructions in [%s]", machine.InstructionCount, elapsed)

	if toolConfig.Persistence != nil {
		recordRun(toolConfig.Persistence, &bf.RunRecord{
			Source:               sourceName,
			ProgramLength:        len(program),
			InstructionsExecuted: machine.InstructionCount,
			OutputBytes:          output.n,
			ElapsedMs:            elapsed.Milliseconds(),
			Completed:            runErr == nil,
			MachineError:         errText(runErr),
		})
	}

	if toolConfig.Expect != "" {
		expected, err := os.ReadFile(toolConfig.Expect)
		if err != nil {
			log.Errorf("Unable to read expected output [%s]: %v", toolConfig.Expect, err)
			os.Exit(1)
		}
		fidelity := bf.OutputFidelity(expected, captured.Bytes())
		log.Infof("Output fidelity [%d] against [%s]", fidelity, toolConfig.Expect)
	}

	if runErr != nil {
		log.Errorf("Execution of [%s] failed: %v", sourceName, runErr)
		os.Exit(1)
	}
}

func recordRun(config *bf.PersistenceConfig, record *bf.RunRecord) {
	persist, err := bf.NewPersistence(config)
	if err != nil {
		log.Errorf("Failed to create or initialize Persistence: %v", err)
		return
	}
	defer persist.Shutdown()

	if err := persist.LogRun(record); err != nil {
		log.Errorf("Failed to persist run record: %v", err)
	}
}

func errText(err error) *string {
	if err == nil {
		return nil
	}
	msg := err.Error()
	return &msg
}
