// Command frontdesk serves the contact form application.
package main

import (
	"fmt"
	"os"

	"github.com/xy-planning-network/frontdesk/ranger"
)

func main() {
	rng, err := ranger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Error(err.Error(), nil)
		os.Exit(1)
	}
}
