package main

import (
	"fmt"
	"os"

	"github.com/Urethramancer/i8086/cpu"
)

// mon86 loads a flat binary image into the machine and shows the resulting
// bus interface state: segment registers, the fetch address and the first
// bytes waiting in the prefetch queue. It decodes and executes nothing.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <imagefile>\n", os.Args[0])
		os.Exit(1)
	}

	code, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image file: %v\n", err)
		os.Exit(1)
	}

	// Load at 1000:0100 and fill the queue to the hardware's six-byte
	// prefetch depth, or the image size if smaller.
	c := cpu.New(cpu.Minimum)
	c.LoadCode(0x1000, 0x0100, code)

	depth := 6
	if len(code) < depth {
		depth = len(code)
	}
	for i := 0; i < depth; i++ {
		c.BIU.Prefetch()
	}

	fmt.Printf("Loaded %d bytes at %04X:%04X\n\n", len(code), c.BIU.CS, 0x0100)
	dumpState(c)
}

func dumpState(c *cpu.CPU) {
	fmt.Println("--- Bus Interface Unit ---")
	fmt.Printf("CS=%04X  DS=%04X  SS=%04X  ES=%04X  IP=%04X\n",
		c.BIU.CS, c.BIU.DS, c.BIU.SS, c.BIU.ES, c.BIU.IP)
	fmt.Printf("Next fetch address: %05X\n", c.BIU.FetchAddress())

	fmt.Printf("Prefetch queue (%d bytes):", c.BIU.QueueLen())
	for {
		b, ok := c.BIU.PopInstruction()
		if !ok {
			break
		}
		fmt.Printf(" %02X", b)
	}
	fmt.Println()

	fmt.Println("\n--- Execution Unit ---")
	fmt.Printf("AX=%04X  BX=%04X  CX=%04X  DX=%04X\n",
		c.EU.AX.Get(), c.EU.BX.Get(), c.EU.CX.Get(), c.EU.DX.Get())
	fmt.Printf("SP=%04X  BP=%04X  SI=%04X  DI=%04X\n",
		c.EU.SP, c.EU.BP, c.EU.SI, c.EU.DI)
}
