package off

// Version identifies one of the two supported API generations. It is fixed
// at client construction; switching versions requires a new client.
type Version int

const (
	// V0 is the legacy API: search goes through cgi/search.pl with indexed
	// triplet parameters.
	V0 Version = iota

	// V2 is the current API: search goes through api/v2/search with
	// tag-suffix parameters.
	V2
)

// String returns the wire string used in versioned URL paths ("v0", "v2").
func (v Version) String() string {
	switch v {
	case V2:
		return "v2"
	default:
		return "v0"
	}
}
