// Package export contains the group exporter and the pipeline driver.
//
// The exporter turns one named face group of a resolved solid into an
// STL artifact: copy each face, apply the solid's global placement to
// the copy, assemble the copies into a shape (a lone face directly, a
// shell for several), tessellate, and write the file.
//
// The pipeline composes locate → classify → export once per target
// label. A failure in any stage is recorded against its label and the
// run continues with the next one; partial success is the expected
// steady state. The run is single-threaded and performs no retries.
package export
