// Package detect provides stateless predicates for identifying common data
// formats from raw content.
//
// Detection is based on the content itself — magic bytes for binary formats,
// syntactic validity for JSON — never on file names or extensions, so renamed
// files cannot spoof their type.
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/murcoder/helperkit/pkg/detect"
//
// Example:
//
//	data, _ := os.ReadFile("upload.bin")
//	if detect.IsGzip(data) {
//	    // decompress before further processing
//	}
//
// All functions are pure and safe for concurrent use.
package detect
