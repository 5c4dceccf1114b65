package untag

// Type tags recognized on tagged-value wrappers.
const (
	TagString = "S"
	TagNumber = "N"
	TagBool   = "BOOL"
	TagNull   = "NULL"
	TagList   = "L"
	TagMap    = "M"
)

// Boolean literal vocabulary for BOOL and NULL payloads, matched after
// trimming and lowercasing.
func isTrueLiteral(s string) bool {
	switch s {
	case "1", "t", "true":
		return true
	}
	return false
}

func isFalseLiteral(s string) bool {
	switch s {
	case "0", "f", "false":
		return true
	}
	return false
}
