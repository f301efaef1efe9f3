// Package scan surveys a data root for every dataset kind at once.
//
// # Scanner
//
// The Scanner runs one locator per kind concurrently and reports, per kind:
//
//  1. Participants with a complete file set
//  2. Candidates whose companion files are missing
//
// # Basic Usage
//
//	scanner := scan.NewScanner(dataset.Kinds(), func(event scan.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	reports, err := scanner.Scan(ctx, "/data/study")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reports come back in the order the kinds were given, regardless of which
// goroutine finished first.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// The callback is never invoked concurrently.
package scan
