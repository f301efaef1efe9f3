// Package dataset locates per-participant physiological recording files
// under a data root directory.
//
// # Kinds
//
// Each dataset kind fixes a filename convention and the set of files that
// must coexist for a participant to count as complete:
//
//	EDA  12345.txt
//	ERN  sart_12345.eeg  sart_12345.vhdr  sart_12345.vmrk
//	FAA  12345.eeg       12345.vhdr       12345.vmrk
//	HRV  rest_12345.eeg  rest_12345.vhdr  rest_12345.vmrk
//
// # Locator
//
// A Locator pairs a Kind with a root and a selected participant. Setting a
// participant validates it against the files present under the root:
//
//	eda, err := dataset.NewEDA("/data/EDA", "12345")
//	if err != nil {
//	    // errors.Is(err, dataset.ErrIncompleteData)
//	}
//	path, _ := eda.Filename() // /data/EDA/12345.txt
//
// BrainVision kinds (ERN, FAA, HRV) expose EEGFile, VHDRFile and VMRKFile.
//
// When no root is given, the locator falls back to "data" under the working
// directory at construction time. The fallback is reported by EffectiveRoot
// and never written back into the locator.
package dataset
