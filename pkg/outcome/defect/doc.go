// Package defect provides Defect, a portable tagged value for the critical
// channel of an outcome. A Defect carries a stable machine-friendly code, a
// human message, a uuid incident id, the UTC capture time, and an optional
// wrapped cause — instead of a raw host-runtime panic object.
//
// Highlights:
// - New/Wrap: construct a Defect, with or without an underlying cause
// - Recovered: adapt a recover() value at a panic boundary
// - Error/Unwrap: plays well with the errors package
// - Causes: flatten a joined multi-error cause into its parts
package defect
