// Package serialize implements component C4: deterministic little-endian
// byte encodings for each of the 18 column kinds (spec.md §6.2), independent
// of compression. Package container invokes this package to turn a
// columnar.Payload into raw column blobs before handing them to package
// compress, and to turn decompressed blobs back into typed cells.
package serialize

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ext-sakamoro/alicetxt/column"
	"github.com/ext-sakamoro/alicetxt/columnar"
	"github.com/ext-sakamoro/alicetxt/errs"
	"github.com/ext-sakamoro/alicetxt/internal/endian"
	"github.com/ext-sakamoro/alicetxt/internal/pool"
	"github.com/ext-sakamoro/alicetxt/pattern"
)

var le = endian.GetLittleEndianEngine()

// EncodeColumns serializes every non-empty column of p, plus the always
// present structural columns (Skeleton, PlaceholderMap), to raw
// (uncompressed) bytes. The returned rowCounts map mirrors spec.md §6.1's
// per-directory-entry row_count field.
func EncodeColumns(p *columnar.Payload) (raw map[column.Tag][]byte, rowCounts map[column.Tag]uint32, err error) {
	raw = make(map[column.Tag][]byte, column.NumColumnTags)
	rowCounts = make(map[column.Tag]uint32, column.NumColumnTags)

	raw[column.Skeleton] = encodeSkeleton(p.Tokens)
	rowCounts[column.Skeleton] = uint32(len(p.Tokens))

	raw[column.PlaceholderMap] = encodePlaceholderMap(p.PlaceholderMap)
	rowCounts[column.PlaceholderMap] = uint32(len(p.PlaceholderMap))

	putIfNonEmpty(raw, rowCounts, column.Timestamps, p.Timestamps.Len(), func() []byte { return encodeTimestamps(p.Timestamps) })
	putIfNonEmpty(raw, rowCounts, column.TimestampsRaw, p.Timestamps.RawLen(), func() []byte { return encodeStrings(p.Timestamps.Raw) })
	putIfNonEmpty(raw, rowCounts, column.IPv4Tag, p.IPv4.Len(), func() []byte { return encodeU32s(p.IPv4.Values) })
	putIfNonEmpty(raw, rowCounts, column.IPv6Tag, p.IPv6.Len(), func() []byte { return encodeU64Pairs(p.IPv6.Hi, p.IPv6.Lo) })
	putIfNonEmpty(raw, rowCounts, column.LogLevels, p.LogLevels.Len(), func() []byte { return encodeU8s(p.LogLevels.Values) })
	putIfNonEmpty(raw, rowCounts, column.Numbers, p.Numbers.Len(), func() []byte { return encodeF64s(p.Numbers.Values) })
	putIfNonEmpty(raw, rowCounts, column.UUIDs, p.UUIDs.Len(), func() []byte { return encodeU64Pairs(p.UUIDs.Hi, p.UUIDs.Lo) })
	putIfNonEmpty(raw, rowCounts, column.Emails, len(p.Emails.Values), func() []byte { return encodeStrings(p.Emails.Values) })
	putIfNonEmpty(raw, rowCounts, column.URLs, len(p.URLs.Values), func() []byte { return encodeStrings(p.URLs.Values) })
	putIfNonEmpty(raw, rowCounts, column.Paths, len(p.Paths.Values), func() []byte { return encodeStrings(p.Paths.Values) })
	putIfNonEmpty(raw, rowCounts, column.DateDays, p.DateDays.Len(), func() []byte { return encodeU32s(p.DateDays.Values) })
	putIfNonEmpty(raw, rowCounts, column.DatesRaw, len(p.DatesRaw.Values), func() []byte { return encodeStrings(p.DatesRaw.Values) })
	putIfNonEmpty(raw, rowCounts, column.TimeMs, p.TimeMs.Len(), func() []byte { return encodeU32s(p.TimeMs.Values) })
	putIfNonEmpty(raw, rowCounts, column.TimesRaw, len(p.TimesRaw.Values), func() []byte { return encodeStrings(p.TimesRaw.Values) })
	putIfNonEmpty(raw, rowCounts, column.HexValues, len(p.HexValues.Values), func() []byte { return encodeStrings(p.HexValues.Values) })
	putIfNonEmpty(raw, rowCounts, column.Others, len(p.Others.Values), func() []byte { return encodeStrings(p.Others.Values) })

	return raw, rowCounts, nil
}

func putIfNonEmpty(raw map[column.Tag][]byte, rowCounts map[column.Tag]uint32, tag column.Tag, n int, encode func() []byte) {
	if n == 0 {
		return
	}

	raw[tag] = encode()
	rowCounts[tag] = uint32(n)
}

// DecodeInto decodes one column's raw bytes, by tag, directly into the
// matching field of p. Package container calls this once per directory
// entry it reads.
func DecodeInto(p *columnar.Payload, tag column.Tag, raw []byte) error {
	var err error

	switch tag {
	case column.Skeleton:
		p.Tokens, err = decodeSkeleton(raw)
	case column.PlaceholderMap:
		p.PlaceholderMap, err = decodePlaceholderMap(raw)
	case column.Timestamps:
		err = decodeTimestampsInto(p.Timestamps, raw)
	case column.TimestampsRaw:
		p.Timestamps.Raw, err = decodeStrings(raw)
	case column.IPv4Tag:
		p.IPv4.Values, err = decodeU32s(raw)
	case column.IPv6Tag:
		p.IPv6.Hi, p.IPv6.Lo, err = decodeU64Pairs(raw)
	case column.LogLevels:
		p.LogLevels.Values, err = decodeU8s(raw)
	case column.Numbers:
		p.Numbers.Values, err = decodeF64s(raw)
	case column.UUIDs:
		p.UUIDs.Hi, p.UUIDs.Lo, err = decodeU64Pairs(raw)
	case column.Emails:
		p.Emails.Values, err = decodeStrings(raw)
	case column.URLs:
		p.URLs.Values, err = decodeStrings(raw)
	case column.Paths:
		p.Paths.Values, err = decodeStrings(raw)
	case column.DateDays:
		p.DateDays.Values, err = decodeU32s(raw)
	case column.DatesRaw:
		p.DatesRaw.Values, err = decodeStrings(raw)
	case column.TimeMs:
		p.TimeMs.Values, err = decodeU32s(raw)
	case column.TimesRaw:
		p.TimesRaw.Values, err = decodeStrings(raw)
	case column.HexValues:
		p.HexValues.Values, err = decodeStrings(raw)
	case column.Others:
		p.Others.Values, err = decodeStrings(raw)
	default:
		return fmt.Errorf("serialize: %w: tag %d", errs.ErrUnknownColumn, tag)
	}

	if err != nil {
		return fmt.Errorf("serialize: %w: tag %d: %w", errs.ErrDeserialization, tag, err)
	}

	p.Timestamps.PrepareForRead()

	return nil
}

// --- skeleton & placeholder map ---

func encodeSkeleton(tokens []pattern.SkeletonToken) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(tokens)))
	for _, tok := range tokens {
		if tok.Literal {
			bb.B = append(bb.B, 0)
			bb.B = le.AppendUint32(bb.B, uint32(len(tok.Text)))
			bb.B = append(bb.B, tok.Text...)
		} else {
			bb.B = append(bb.B, 1)
			bb.B = le.AppendUint32(bb.B, tok.PlaceholderIndex)
		}
	}

	return append([]byte(nil), bb.B...)
}

func decodeSkeleton(raw []byte) ([]pattern.SkeletonToken, error) {
	r := newReader(raw)

	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	tokens := make([]pattern.SkeletonToken, 0, count)
	for i := uint32(0); i < count; i++ {
		kind, err := r.u8()
		if err != nil {
			return nil, err
		}

		if kind == 0 {
			text, err := r.lenPrefixedString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, pattern.SkeletonToken{Literal: true, Text: text})
		} else {
			idx, err := r.u32()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, pattern.SkeletonToken{PlaceholderIndex: idx})
		}
	}

	return tokens, nil
}

func encodePlaceholderMap(refs []columnar.CellRef) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(refs)))
	for _, ref := range refs {
		bb.B = append(bb.B, byte(ref.Tag))
		bb.B = le.AppendUint32(bb.B, ref.Index)
	}

	return append([]byte(nil), bb.B...)
}

func decodePlaceholderMap(raw []byte) ([]columnar.CellRef, error) {
	r := newReader(raw)

	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	refs := make([]columnar.CellRef, 0, count)
	for i := uint32(0); i < count; i++ {
		tag, err := r.u8()
		if err != nil {
			return nil, err
		}
		idx, err := r.u32()
		if err != nil {
			return nil, err
		}
		refs = append(refs, columnar.CellRef{Tag: column.Tag(tag), Index: idx})
	}

	return refs, nil
}

// --- timestamps ---

func encodeTimestamps(c *column.TimestampColumn) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	if c.HasBase() {
		bb.B = append(bb.B, 1)
		bb.B = le.AppendUint64(bb.B, uint64(c.BaseMs()))
		bb.B = le.AppendUint32(bb.B, uint32(c.BaseOffsetSecs()))
		bb.B = append(bb.B, byte(c.BaseSurface()))
		bb.B = append(bb.B, boolByte(c.BaseHasFrac())...)
	} else {
		bb.B = append(bb.B, 0)
	}

	bb.B = le.AppendUint32(bb.B, uint32(len(c.Deltas)))
	for _, d := range c.Deltas {
		bb.B = le.AppendUint64(bb.B, uint64(d))
	}

	return append([]byte(nil), bb.B...)
}

func boolByte(b bool) []byte {
	if b {
		return []byte{1}
	}

	return []byte{0}
}

func decodeTimestampsInto(c *column.TimestampColumn, raw []byte) error {
	r := newReader(raw)

	hasBaseByte, err := r.u8()
	if err != nil {
		return err
	}

	var baseMs int64
	var baseOffsetSecs int32
	var surface int32
	var hasFrac bool

	if hasBaseByte == 1 {
		v, err := r.u64()
		if err != nil {
			return err
		}
		baseMs = int64(v)

		o, err := r.u32()
		if err != nil {
			return err
		}
		baseOffsetSecs = int32(o)

		s, err := r.u8()
		if err != nil {
			return err
		}
		surface = int32(s)

		f, err := r.u8()
		if err != nil {
			return err
		}
		hasFrac = f == 1
	}

	count, err := r.u32()
	if err != nil {
		return err
	}

	deltas := make([]int64, count)
	for i := range deltas {
		v, err := r.u64()
		if err != nil {
			return err
		}
		deltas[i] = int64(v)
	}

	*c = *column.LoadDecoded(hasBaseByte == 1, baseMs, baseOffsetSecs, surface, hasFrac, deltas, c.Raw)

	return nil
}

// --- generic primitive arrays ---

func encodeU32s(vs []uint32) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(vs)))
	for _, v := range vs {
		bb.B = le.AppendUint32(bb.B, v)
	}

	return append([]byte(nil), bb.B...)
}

func decodeU32s(raw []byte) ([]uint32, error) {
	r := newReader(raw)
	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	vs := make([]uint32, count)
	for i := range vs {
		v, err := r.u32()
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}

	return vs, nil
}

func encodeU8s(vs []uint8) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(vs)))
	bb.B = append(bb.B, vs...)

	return append([]byte(nil), bb.B...)
}

func decodeU8s(raw []byte) ([]uint8, error) {
	r := newReader(raw)
	count, err := r.u32()
	if err != nil {
		return nil, err
	}
	if uint32(len(r.b)-r.pos) < count {
		return nil, errs.ErrTruncated
	}

	vs := append([]uint8(nil), r.b[r.pos:r.pos+int(count)]...)
	r.pos += int(count)

	return vs, nil
}

func encodeF64s(vs []float64) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(vs)))
	for _, v := range vs {
		bb.B = le.AppendUint64(bb.B, math.Float64bits(v))
	}

	return append([]byte(nil), bb.B...)
}

func decodeF64s(raw []byte) ([]float64, error) {
	r := newReader(raw)
	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	vs := make([]float64, count)
	for i := range vs {
		v, err := r.u64()
		if err != nil {
			return nil, err
		}
		vs[i] = math.Float64frombits(v)
	}

	return vs, nil
}

func encodeU64Pairs(hi, lo []uint64) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(hi)))
	for i := range hi {
		bb.B = le.AppendUint64(bb.B, hi[i])
		bb.B = le.AppendUint64(bb.B, lo[i])
	}

	return append([]byte(nil), bb.B...)
}

func decodeU64Pairs(raw []byte) (hi, lo []uint64, err error) {
	r := newReader(raw)
	count, err := r.u32()
	if err != nil {
		return nil, nil, err
	}

	hi = make([]uint64, count)
	lo = make([]uint64, count)
	for i := range hi {
		h, err := r.u64()
		if err != nil {
			return nil, nil, err
		}
		l, err := r.u64()
		if err != nil {
			return nil, nil, err
		}
		hi[i] = h
		lo[i] = l
	}

	return hi, lo, nil
}

func encodeStrings(vs []string) []byte {
	bb := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bb)

	bb.B = le.AppendUint32(bb.B, uint32(len(vs)))
	for _, v := range vs {
		bb.B = le.AppendUint32(bb.B, uint32(len(v)))
		bb.B = append(bb.B, v...)
	}

	return append([]byte(nil), bb.B...)
}

func decodeStrings(raw []byte) ([]string, error) {
	r := newReader(raw)
	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	vs := make([]string, count)
	for i := range vs {
		s, err := r.lenPrefixedString()
		if err != nil {
			return nil, err
		}
		vs[i] = s
	}

	return vs, nil
}

// --- byte reader ---

type reader struct {
	b   []byte
	pos int
}

func newReader(b []byte) *reader { return &reader{b: b} }

func (r *reader) u8() (uint8, error) {
	if r.pos+1 > len(r.b) {
		return 0, errs.ErrTruncated
	}
	v := r.b[r.pos]
	r.pos++

	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.pos+4 > len(r.b) {
		return 0, errs.ErrTruncated
	}
	v := binary.LittleEndian.Uint32(r.b[r.pos : r.pos+4])
	r.pos += 4

	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if r.pos+8 > len(r.b) {
		return 0, errs.ErrTruncated
	}
	v := binary.LittleEndian.Uint64(r.b[r.pos : r.pos+8])
	r.pos += 8

	return v, nil
}

func (r *reader) lenPrefixedString() (string, error) {
	n, err := r.u32()
	if err != nil {
		return "", err
	}
	if r.pos+int(n) > len(r.b) {
		return "", errs.ErrTruncated
	}
	s := string(r.b[r.pos : r.pos+int(n)])
	r.pos += int(n)

	return s, nil
}
