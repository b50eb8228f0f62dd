/*
Package ktx2 validates KTX2 texture container files against the KTX 2.0
specification, reporting every deviation through a caller-supplied sink.

Validation is a single pass over the file in memory: the header, the
index entries, the level index and the key/value metadata are checked in
order, and each diagnostic is delivered exactly once as a
types.ValidationReport. The returned code is the validation exit status:
0 when no error-severity diagnostic was emitted, 3 when an error or a
fatal diagnostic was emitted, and 2 (ExitIOFailure) when ValidateFile or
ValidateReader could not open or read the input.

Example:

	code := ktx2.ValidateFile("texture.ktx2", ktx2.Options{
		Report: func(r types.ValidationReport) {
			fmt.Printf("%s-%04d: %s\n", r.Type, r.ID, r.Message)
		},
	})
	if code != 0 {
		// the file is not a valid KTX2 file
	}

Validating bytes already in memory:

	code := ktx2.ValidateBytes(data, ktx2.Options{})
*/
package ktx2
