//go:generate go run ./script/buildinfo-extractor.go .
//
// Regenerated with the short git revision by `go generate ./buildinfo`.
package buildinfo

var VERSION_INFO = "dev"

func BuildInfo() string {
	return VERSION_INFO
}
