package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/marcelsud/hookdash/config"
	"github.com/marcelsud/hookdash/plans"
)

/* validate-plans - Standalone CLI tool to validate plans.yaml
 * Usage: go run cmd/validate-plans/main.go [plans.yaml]
 * Exit codes: 0 = valid, 1 = invalid
 */

func main() {
	plansFile := "plans.yaml"
	if len(os.Args) > 1 {
		plansFile = os.Args[1]
	}

	fmt.Printf("Validating plans file: %s\n", plansFile)
	fmt.Println(strings.Repeat("-", 50))

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader := plans.NewLoader(plans.Defaults(cfg)...)
	if err := loader.Load(plansFile); err != nil {
		fmt.Fprintf(os.Stderr, "❌ VALIDATION FAILED\n\n")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loaded := loader.List()
	fmt.Printf("✓ VALIDATION PASSED\n\n")
	fmt.Printf("Loaded %d plan(s):\n", len(loaded))
	for i, p := range loaded {
		fmt.Printf("\n%d. Plan: %s\n", i+1, p.Name)
		fmt.Printf("   Max Endpoints: %d\n", p.MaxEndpoints)
	}

	fmt.Printf("\n✓ All plans are valid!\n")
	os.Exit(0)
}
