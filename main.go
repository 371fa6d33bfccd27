package main

import (
	"os"

	"github.com/mweagle/keygen/cmd"
)

// //////////////////////////////////////////////////////////////////////////////
//
// _ __  __ _(_)_ _
// | '  \/ _` | | ' \
// |_|_|_\__,_|_|_||_|
//
// //////////////////////////////////////////////////////////////////////////////
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
