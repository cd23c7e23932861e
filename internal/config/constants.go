package config

// Canonical spellings shared by the reflector and the printer.

// SelfSegmentName is the single segment a current-unit crate root reflects
// to.
const SelfSegmentName = "self"

// PathRootSegmentName marks an explicit path root. The printer renders it
// as a leading :: rather than as a named segment.
const PathRootSegmentName = "{{root}}"

// InferTypeName is the spelling of the inference placeholder.
const InferTypeName = "_"

// NeverTypeName is the spelling of the never type.
const NeverTypeName = "!"

// UsizeSuffix is the suffix attached to reflected array-length literals.
const UsizeSuffix = "usize"

// PathSeparator joins path segments in printed output.
const PathSeparator = "::"
