package convert_test

import (
	"fmt"

	"github.com/walteh/cssvar/pkg/convert"
	"github.com/walteh/cssvar/pkg/rules"
)

func ExampleConverter_Convert() {
	// Build a converter from the built-in mapping table
	conv, err := convert.New(rules.DefaultTable())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	content := ".card { background-color: #ffffff; color: #1a1f2d }"

	// Apply the table
	converted, count := conv.Convert(content)

	fmt.Printf("Converted: %s\n", converted)
	fmt.Printf("Replacements: %d\n", count)

	// A second pass finds nothing left to rewrite
	_, count = conv.Convert(converted)
	fmt.Printf("Second pass: %d\n", count)

	// Output:
	// Converted: .card { background-color: var(--color-bg-secondary); color: var(--color-text-primary) }
	// Replacements: 2
	// Second pass: 0
}

func Example_customRule() {
	table := []rules.Rule{
		{
			Property:    "outline-color",
			Value:       "#ff0000",
			Replacement: "var(--color-focus)",
		},
	}

	conv, err := convert.New(table)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	converted, count := conv.Convert("outline-color: #ff0000;")
	fmt.Printf("Converted: %s\n", converted)
	fmt.Printf("Replacements: %d\n", count)

	// Output:
	// Converted: outline-color: var(--color-focus);
	// Replacements: 1
}
