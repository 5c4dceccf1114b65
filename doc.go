// Package untag normalizes type-tagged JSON documents into plain JSON.
//
// In the tagged form every value is wrapped in a single-entry object
// whose key names the value's type: {"S": "text"}, {"N": "007"},
// {"BOOL": "true"}, {"NULL": "true"}, {"L": [...]}, {"M": {...}}. The
// wrapper carries the payload as text (for scalars) or as a nested
// collection of more tagged values (for lists and maps). Calling
// [Processor.Transform] decodes a whole document of these wrappers into
// ordinary values: numbers become numbers, booleans become booleans,
// strings are trimmed, and timestamps of the exact shape
// YYYY-MM-DDTHH:MM:SSZ become Unix epoch seconds.
//
// # Omission
//
// Decoding is best effort. A malformed wrapper, an unknown tag, an
// unparseable number, a string that trims to nothing, or a boolean
// outside the accepted vocabulary never fails the decode; the affected
// field or list element is dropped instead. A map that loses all its
// fields this way is itself dropped from its parent. The NULL tag is
// the one way to keep a field without a value: a true-ish NULL payload
// yields an explicit JSON null, while a false-ish (or unrecognized)
// payload drops the field.
//
// The only fatal conditions sit at the outer boundary: the input must
// be a syntactically valid JSON object, otherwise [Processor.Transform]
// returns [ErrInvalidDocument], and documents nested past the
// configured depth limit return [ErrDepthExceeded].
//
// # Ordering
//
// Decoded maps are ordered: their fields are sorted by key in ascending
// lexical order and [Value.MarshalJSON] writes them in that order.
// Decoded lists preserve source order.
//
// # Timestamps
//
// Matched timestamps are interpreted in the processor's configured
// [time.Location], which defaults to the system local zone. The same
// document therefore produces different epoch values in different
// zones. That is deliberate, inherited behavior; pass [WithLocation]
// with [time.UTC] if you want the literal Z suffix honored.
package untag
