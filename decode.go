package untag

import (
	"bytes"
	"cmp"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tdehart/untag/internal/json"
)

// outcome is the three-way result of decoding one tagged value. A field
// is either kept with a value, kept as an explicit null, or dropped
// entirely. Explicit null and omission are distinct on purpose: the
// NULL tag keeps the field when its payload is true-ish.
type outcome uint8

const (
	kept outcome = iota
	keptNull
	omitted
)

// timestampPattern is the strict shape that triggers epoch conversion:
// no fractional seconds, no offsets, literal Z only.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

const timestampLayout = "2006-01-02T15:04:05"

// Transform reads one tagged JSON document and decodes it into plain
// values.
//
// The result is a sequence of zero or one maps: empty when every
// top-level field decoded to omission, otherwise a single map holding
// the surviving fields in ascending lexical key order.
//
// The input must be a valid JSON object at the top level; anything else
// returns [ErrInvalidDocument]. Nesting beyond the configured limit
// returns [ErrDepthExceeded]. Every other anomaly degrades to field
// omission.
func (p *Processor) Transform(document io.Reader) ([]Value, error) {
	data, err := io.ReadAll(document)
	if err != nil {
		return nil, err
	}

	raw := json.RawMessage(bytes.TrimSpace(data))
	if !json.IsMap(raw) {
		return nil, ErrInvalidDocument
	}

	var top json.Object
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, ErrInvalidDocument
	}

	fields, err := p.object(top, 1)
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return []Value{}, nil
	}

	return []Value{Map(fields)}, nil
}

// object decodes all entries of a raw object into fields sorted by
// trimmed key. Entries with empty trimmed keys, malformed wrappers, or
// omitted values are dropped. Raw keys are visited in ascending lexical
// order so that two keys trimming to the same name resolve
// deterministically, last visit wins.
func (p *Processor) object(obj json.Object, depth int) ([]Field, error) {
	if depth > p.maxDepth {
		return nil, ErrDepthExceeded
	}

	fields := make([]Field, 0, len(obj))
	index := make(map[string]int, len(obj))

	for _, raw := range slices.Sorted(maps.Keys(obj)) {
		key := strings.TrimSpace(raw)
		if key == "" {
			continue
		}

		tag, payload, ok := wrapper(obj[raw])
		if !ok {
			p.logger.Warn("skipping malformed tagged value", "key", key)
			continue
		}

		val, disp, err := p.decode(tag, payload, depth)
		if err != nil {
			return nil, err
		}

		switch disp {
		case omitted:
			continue
		case keptNull:
			val = Null()
		}

		if i, dup := index[key]; dup {
			fields[i].Value = val
			continue
		}
		index[key] = len(fields)
		fields = append(fields, Field{Key: key, Value: val})
	}

	slices.SortStableFunc(fields, func(a, b Field) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return fields, nil
}

// decode dispatches one tagged value to its rule. Maps support the full
// tag set and recurse; the error return only carries the depth guard.
func (p *Processor) decode(tag string, payload json.RawMessage, depth int) (Value, outcome, error) {
	switch tag {
	case TagString, TagNumber, TagBool:
		v, disp := p.scalar(tag, payload)
		return v, disp, nil

	case TagNull:
		s, ok := stringPayload(payload)
		if !ok {
			return Value{}, omitted, nil
		}
		if isTrueLiteral(strings.ToLower(strings.TrimSpace(s))) {
			return Value{}, keptNull, nil
		}
		return Value{}, omitted, nil

	case TagList:
		v, disp := p.list(payload)
		return v, disp, nil

	case TagMap:
		if !json.IsMap(payload) {
			return Value{}, omitted, nil
		}
		var obj json.Object
		if err := json.Unmarshal(payload, &obj); err != nil {
			return Value{}, omitted, nil
		}
		fields, err := p.object(obj, depth+1)
		if err != nil {
			return Value{}, omitted, err
		}
		if len(fields) == 0 {
			return Value{}, omitted, nil
		}
		return Map(fields), kept, nil

	default:
		p.logger.Warn("skipping unknown type tag", "tag", tag)
		return Value{}, omitted, nil
	}
}

// scalar decodes the three scalar tags. These are the only tags allowed
// inside lists, so they share a dispatcher.
func (p *Processor) scalar(tag string, payload json.RawMessage) (Value, outcome) {
	s, ok := stringPayload(payload)
	if !ok {
		return Value{}, omitted
	}

	switch tag {
	case TagString:
		return p.str(s)
	case TagNumber:
		return number(s)
	case TagBool:
		return boolean(s)
	}
	return Value{}, omitted
}

// str trims the payload, drops it when empty, and converts strict
// timestamps to epoch seconds interpreted in the processor's zone.
func (p *Processor) str(s string) (Value, outcome) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, omitted
	}

	if timestampPattern.MatchString(s) {
		t, err := time.ParseInLocation(timestampLayout, strings.TrimSuffix(s, "Z"), p.loc)
		if err == nil {
			return Int(t.Unix()), kept
		}
		// impossible dates slip past the pattern; treat as plain text
	}

	return String(s), kept
}

// number trims, strips redundant leading zeros, and parses the literal
// as a float when it contains a decimal point and as an integer
// otherwise. Unparseable literals are dropped.
func number(s string) (Value, outcome) {
	s = stripLeadingZeros(strings.TrimSpace(s))

	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, omitted
		}
		return Float(f), kept
	}

	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, omitted
	}
	return Int(i), kept
}

// stripLeadingZeros removes leading zeros after an optional sign while
// keeping at least one digit, so "007" becomes "7", "-0" stays "-0",
// and "0.5" is untouched.
func stripLeadingZeros(s string) string {
	rest := s
	sign := ""
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		sign, rest = rest[:1], rest[1:]
	}
	for len(rest) >= 2 && rest[0] == '0' && rest[1] >= '0' && rest[1] <= '9' {
		rest = rest[1:]
	}
	return sign + rest
}

// boolean matches the six accepted literals after trimming and
// lowercasing. Anything else is dropped.
func boolean(s string) (Value, outcome) {
	lit := strings.ToLower(strings.TrimSpace(s))
	if isTrueLiteral(lit) {
		return Bool(true), kept
	}
	if isFalseLiteral(lit) {
		return Bool(false), kept
	}
	return Value{}, omitted
}

// list decodes an L payload. Only scalar elements survive: NULL, L and
// M elements, malformed wrappers, and elements whose rule omits are all
// skipped. An empty result drops the whole field.
func (p *Processor) list(payload json.RawMessage) (Value, outcome) {
	if !json.IsArray(payload) {
		return Value{}, omitted
	}

	var arr json.Array
	if err := json.Unmarshal(payload, &arr); err != nil {
		return Value{}, omitted
	}

	items := make([]Value, 0, len(arr))
	for _, el := range arr {
		tag, pl, ok := wrapper(el)
		if !ok {
			p.logger.Warn("skipping malformed list element")
			continue
		}

		switch tag {
		case TagString, TagNumber, TagBool:
			if v, disp := p.scalar(tag, pl); disp == kept {
				items = append(items, v)
			}
		}
	}

	if len(items) == 0 {
		return Value{}, omitted
	}
	return List(items), kept
}

// wrapper unpacks a tagged-value wrapper: an object with exactly one
// entry. Anything else is malformed.
func wrapper(raw json.RawMessage) (string, json.RawMessage, bool) {
	if !json.IsMap(raw) {
		return "", nil, false
	}

	var obj json.Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", nil, false
	}
	if len(obj) != 1 {
		return "", nil, false
	}

	for tag, payload := range obj {
		return tag, payload, true
	}
	return "", nil, false
}

// stringPayload decodes a scalar tag's payload, which must be a JSON
// string. Any other payload shape is a mismatch.
func stringPayload(payload json.RawMessage) (string, bool) {
	if !json.IsString(payload) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(payload, &s); err != nil {
		return "", false
	}
	return s, true
}
