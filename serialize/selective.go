package serialize

import (
	"fmt"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/errs"
)

// DecodeColumnStrings decodes one column's raw bytes directly into its
// canonical string cells, without requiring a full columnar.Payload or
// skeleton. This is what the query engine's select_column and
// select_columns (spec.md §4.6) run against: a single column's blob, fully
// independent of the others.
func DecodeColumnStrings(tag column.Tag, raw []byte) ([]string, error) {
	switch tag {
	case column.Timestamps:
		tmp := column.NewTimestampColumn()
		if err := decodeTimestampsInto(tmp, raw); err != nil {
			return nil, fmt.Errorf("serialize: %w: tag %d: %w", errs.ErrDeserialization, tag, err)
		}
		tmp.PrepareForRead()

		out := make([]string, tmp.Len())
		for i := range out {
			out[i] = tmp.Get(i)
		}

		return out, nil

	case column.TimestampsRaw, column.Emails, column.URLs, column.Paths,
		column.DatesRaw, column.TimesRaw, column.HexValues, column.Others:
		return decodeStrings(raw)

	case column.IPv4Tag:
		vs, err := decodeU32s(raw)
		if err != nil {
			return nil, err
		}

		return mapStrings(vs, column.FormatIPv4Value), nil

	case column.DateDays:
		vs, err := decodeU32s(raw)
		if err != nil {
			return nil, err
		}

		return mapStrings(vs, column.FormatDateDaysValue), nil

	case column.TimeMs:
		vs, err := decodeU32s(raw)
		if err != nil {
			return nil, err
		}

		return mapStrings(vs, column.FormatTimeMsValue), nil

	case column.LogLevels:
		vs, err := decodeU8s(raw)
		if err != nil {
			return nil, err
		}

		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = column.LogLevel(v).String()
		}

		return out, nil

	case column.Numbers:
		vs, err := decodeF64s(raw)
		if err != nil {
			return nil, err
		}

		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = column.FormatNumber(v)
		}

		return out, nil

	case column.IPv6Tag:
		hi, lo, err := decodeU64Pairs(raw)
		if err != nil {
			return nil, err
		}

		return mapPairStrings(hi, lo, column.FormatIPv6Value), nil

	case column.UUIDs:
		hi, lo, err := decodeU64Pairs(raw)
		if err != nil {
			return nil, err
		}

		return mapPairStrings(hi, lo, column.FormatUUIDValue), nil

	default:
		return nil, fmt.Errorf("serialize: %w: tag %d", errs.ErrUnknownColumn, tag)
	}
}

// DecodeTimestampMs decodes a Timestamps column's raw bytes into absolute
// UTC millisecond values, for typed filter comparisons (spec.md §4.6).
func DecodeTimestampMs(raw []byte) ([]int64, error) {
	tmp := column.NewTimestampColumn()
	if err := decodeTimestampsInto(tmp, raw); err != nil {
		return nil, fmt.Errorf("serialize: %w: %w", errs.ErrDeserialization, err)
	}
	tmp.PrepareForRead()

	out := make([]int64, tmp.Len())
	for i := range out {
		out[i] = tmp.AbsoluteMs(i)
	}

	return out, nil
}

// DecodeIPv4s decodes an IPv4 column's raw bytes into its uint32 cells.
func DecodeIPv4s(raw []byte) ([]uint32, error) { return decodeU32s(raw) }

// DecodeDateDays decodes a DateDays column's raw bytes into epoch-day cells.
func DecodeDateDays(raw []byte) ([]uint32, error) { return decodeU32s(raw) }

// DecodeTimeMs decodes a TimeMs column's raw bytes into millisecond-of-day
// cells.
func DecodeTimeMs(raw []byte) ([]uint32, error) { return decodeU32s(raw) }

// DecodeLogLevels decodes a LogLevels column's raw bytes.
func DecodeLogLevels(raw []byte) ([]uint8, error) { return decodeU8s(raw) }

// DecodeNumbers decodes a Numbers column's raw bytes.
func DecodeNumbers(raw []byte) ([]float64, error) { return decodeF64s(raw) }

// DecodeIPv6s decodes an IPv6 column's raw bytes into its 128-bit hi/lo
// pairs.
func DecodeIPv6s(raw []byte) (hi, lo []uint64, err error) { return decodeU64Pairs(raw) }

// DecodeUUIDs decodes a UUIDs column's raw bytes into its 128-bit hi/lo
// pairs.
func DecodeUUIDs(raw []byte) (hi, lo []uint64, err error) { return decodeU64Pairs(raw) }

func mapStrings[T any](vs []T, format func(T) string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = format(v)
	}

	return out
}

func mapPairStrings(hi, lo []uint64, format func(hi, lo uint64) string) []string {
	out := make([]string, len(hi))
	for i := range hi {
		out[i] = format(hi[i], lo[i])
	}

	return out
}
