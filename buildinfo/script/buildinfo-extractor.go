//go:build ignore

package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Writes buildinfo.go into the directory named by the only argument, stamping
// the current short git revision as the keygen version.
func main() {
	nowTime := time.Now().Format(time.RFC3339)
	if len(os.Args) < 2 {
		log.Fatalf("Provide output directory as only command line argument")
	}
	absOutputPath, absOutputPathErr := filepath.Abs(os.Args[1])
	if absOutputPathErr != nil {
		log.Fatalf("Failed to get absolute output path. Error: %s", absOutputPathErr)
	}
	revision, revisionErr := exec.Command("git", "rev-parse", "--short", "HEAD").CombinedOutput()
	if revisionErr != nil {
		log.Fatalf("git rev-parse failed: %s", revisionErr)
	}

	outFileContents := fmt.Sprintf(`//go:generate go run ./script/buildinfo-extractor.go .
//
// Generated: %s
package buildinfo

var VERSION_INFO = "%s"

func BuildInfo() string {
	return VERSION_INFO
}
`,
		nowTime,
		strings.TrimSpace(string(revision)))

	outputFile := filepath.Join(absOutputPath, "buildinfo.go")
	if writeErr := os.WriteFile(outputFile, []byte(outFileContents), 0644); writeErr != nil {
		log.Fatalf("Failed to write %s. Error: %s", outputFile, writeErr)
	}
	log.Printf("Created output file: %s", outputFile)
}
