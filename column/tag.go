// Package column implements component C2, the type-specialized columns:
// one compact binary representation per recognized pattern.Kind, each able
// to accept a matched string and later reconstruct a faithful textual
// representation of it.
package column

// Tag identifies one of the 18 logical columns of a v3 container, on disk
// and in the in-memory placeholder map alike (spec.md §6.1/§3). Values are
// bit-exact with the wire format; do not renumber.
type Tag uint8

const (
	Skeleton Tag = iota
	Timestamps
	IPv4Tag
	IPv6Tag
	LogLevels
	Numbers
	UUIDs
	Emails
	URLs
	Paths
	DateDays
	DatesRaw
	TimeMs
	TimesRaw
	HexValues
	Others
	PlaceholderMap
	TimestampsRaw
)

// NumColumnTags is the fixed size of the column enumeration.
const NumColumnTags = 18

func (t Tag) String() string {
	switch t {
	case Skeleton:
		return "skeleton"
	case Timestamps:
		return "timestamps"
	case IPv4Tag:
		return "ipv4"
	case IPv6Tag:
		return "ipv6"
	case LogLevels:
		return "log_levels"
	case Numbers:
		return "numbers"
	case UUIDs:
		return "uuids"
	case Emails:
		return "emails"
	case URLs:
		return "urls"
	case Paths:
		return "paths"
	case DateDays:
		return "date_days"
	case DatesRaw:
		return "dates_raw"
	case TimeMs:
		return "time_ms"
	case TimesRaw:
		return "times_raw"
	case HexValues:
		return "hex_values"
	case Others:
		return "others"
	case PlaceholderMap:
		return "placeholder_map"
	case TimestampsRaw:
		return "timestamps_raw"
	default:
		return "unknown"
	}
}

// TagByName resolves the string names used by the query engine and CLI
// (spec.md §4.6's name_to_type) back to a Tag.
func TagByName(name string) (Tag, bool) {
	for t := Tag(0); t < NumColumnTags; t++ {
		if t.String() == name {
			return t, true
		}
	}

	return 0, false
}
