// Package document models CAD document snapshots and resolves target
// labels to solids.
//
// A snapshot is a JSONC file describing a document's top-level named
// objects: bodies (direct solid containers) carrying a tip feature with
// faces, per-face diffuse colors, and a global placement, and parts
// (grouping objects) holding member objects. JSONC is used because
// snapshot producers routinely annotate exports with comments; the
// tidwall/jsonc package strips them before standard JSON decoding.
//
// Label resolution follows a fixed policy: a body with the requested
// label wins outright; otherwise a part with the label is searched for
// its first body member. The outcome is expressed as a tagged
// Resolution value rather than attribute probing.
package document
