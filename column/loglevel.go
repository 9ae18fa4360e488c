package column

import "strings"

// LogLevel is the fixed log-severity enumeration of spec.md §3.
type LogLevel uint8

const (
	LevelTrace LogLevel = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelCritical
	LevelUnknown
)

// ParseLogLevel matches s case-insensitively against the fixed enumeration.
// Unrecognized input normalizes to LevelUnknown rather than failing: a log
// level column always has somewhere to put its input (spec.md §4.2).
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	case "CRITICAL":
		return LevelCritical
	default:
		return LevelUnknown
	}
}

func (l LogLevel) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// LogLevelColumn stores uint8-coded log levels (spec.md §3: 0=TRACE ..
// 7=UNKNOWN).
type LogLevelColumn struct {
	Values []uint8
}

// NewLogLevelColumn creates an empty log-level column.
func NewLogLevelColumn() *LogLevelColumn {
	return &LogLevelColumn{}
}

// Add always succeeds (unknown levels normalize to LevelUnknown) and
// returns the cell's index.
func (c *LogLevelColumn) Add(text string) int {
	c.Values = append(c.Values, uint8(ParseLogLevel(text)))

	return len(c.Values) - 1
}

// Get re-emits the canonical uppercase level name for cell idx.
func (c *LogLevelColumn) Get(idx int) string {
	return LogLevel(c.Values[idx]).String()
}

// Len returns the number of cells.
func (c *LogLevelColumn) Len() int { return len(c.Values) }
