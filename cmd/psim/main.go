// Command psim is a small driver around the Heisenberg-picture Pauli
// simulator, grounded on the teacher's src/examples/main.go command
// dispatch (os.Args switch, printUsage, log.Fatal on setup errors).
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hydraresearch/psim"
	"github.com/hydraresearch/psim/internal/randcircuit"
)

// Environment-driven defaults, read in main after an optional .env file
// is loaded, the same way the teacher's binding layer would load
// deployment configuration; the simulator core itself takes no
// environment dependency (SPEC_FULL.md's AMBIENT STACK).
var (
	defaultQubits    int
	defaultThreshold float64
	defaultDecay     float64
)

func main() {
	_ = godotenv.Load()
	defaultQubits = envInt("PSIM_QUBITS", 2)
	defaultThreshold = envFloat("PSIM_THRESHOLD", 1e-6)
	defaultDecay = envFloat("PSIM_DECAY", 1.0)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "demo":
		runDemo()
	case "bench":
		runBench()
	case "repr":
		runRepr()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("psim — Heisenberg-picture Pauli-path quantum circuit simulator")
	fmt.Println()
	fmt.Println("Usage: psim <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  demo   - run a small single-gate circuit and print its expectation-value trace")
	fmt.Println("  bench  - run a seeded random circuit and report pruning behavior")
	fmt.Println("  repr   - print a demo circuit's repr() dump")
	fmt.Println("  help   - show this help message")
	fmt.Println()
	fmt.Println("Configuration (optional .env): PSIM_QUBITS, PSIM_THRESHOLD, PSIM_DECAY")
}

// runDemo builds the scenario S4 single-gate circuit from spec.md §8
// and prints its expectation-value trace.
func runDemo() {
	sim, err := psim.NewSimulator(defaultQubits)
	if err != nil {
		log.Fatal("failed to construct simulator: ", err)
	}

	if err := sim.AddGate(psim.PauliDescription{{Code: 'X', Pos: 0}}, 0.3); err != nil {
		log.Fatal("failed to add gate: ", err)
	}

	trace, err := sim.Execute(psim.PauliDescription{{Code: 'Z', Pos: 0}}, 4, defaultThreshold, defaultDecay)
	if err != nil {
		log.Fatal("execute failed: ", err)
	}

	fmt.Println("layer averages:")
	for l, v := range trace {
		fmt.Printf("  layer %d: %v\n", l, v)
	}
}

// runBench drives a seeded random circuit through execute() at a few
// threshold values and reports how many terms survive pruning,
// exercising internal/randcircuit's reproducible sampling.
func runBench() {
	sim, err := psim.NewSimulator(defaultQubits)
	if err != nil {
		log.Fatal("failed to construct simulator: ", err)
	}

	seed := []byte("psim-bench-seed-v1")
	gates, err := randcircuit.Circuit(seed, sim.Width(), sim.QubitsNumber(), 12)
	if err != nil {
		log.Fatal("failed to sample random circuit: ", err)
	}
	for _, g := range gates {
		desc := pauliDescriptionFromString(g.PauliString().String())
		if err := sim.AddGate(desc, g.Time()); err != nil {
			log.Fatal("failed to add random gate: ", err)
		}
	}

	for _, threshold := range []float64{0, 1e-3, 1e-1} {
		trace, err := sim.Execute(psim.PauliDescription{{Code: 'Z', Pos: 0}}, 3, threshold, defaultDecay)
		if err != nil {
			log.Fatal("execute failed: ", err)
		}
		fmt.Printf("threshold=%v final average=%v\n", threshold, trace[len(trace)-1])
	}
}

func runRepr() {
	sim, err := psim.NewSimulator(defaultQubits)
	if err != nil {
		log.Fatal("failed to construct simulator: ", err)
	}
	if err := sim.AddGate(psim.PauliDescription{{Code: 'X', Pos: 0}}, 0.3); err != nil {
		log.Fatal("failed to add gate: ", err)
	}
	fmt.Println(sim.String())
}

// pauliDescriptionFromString turns a rendered Pauli string back into
// a (code, position) description for AddGate, skipping I positions.
func pauliDescriptionFromString(s string) psim.PauliDescription {
	var desc psim.PauliDescription
	for i := 0; i < len(s); i++ {
		if s[i] != 'I' {
			desc = append(desc, psim.LetterAt{Code: s[i], Pos: i})
		}
	}
	return desc
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
