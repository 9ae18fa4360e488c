package query

import (
	"bytes"
	"testing"

	"github.com/ext-sakamoro/alicetxt/compress"
	"github.com/ext-sakamoro/alicetxt/container"
)

func openSample(t *testing.T, text string) *Engine {
	t.Helper()

	w, err := container.NewWriter(container.WithLevel(compress.Balanced))
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	var buf bytes.Buffer
	if err := w.Write(&buf, text); err != nil {
		t.Fatalf("Write: %v", err)
	}

	eng, err := Open(container.NewBufferSource(buf.Bytes()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	return eng
}

const ipLogLines = "2024-01-15 10:00:00 INFO 192.168.1.1 up\n" +
	"2024-01-15 10:00:01 INFO 192.168.1.2 up\n" +
	"2024-01-15 10:00:02 ERROR 192.168.1.3 down\n" +
	"2024-01-15 10:00:03 INFO 192.168.1.4 up\n" +
	"2024-01-15 10:00:04 INFO 192.168.1.5 up"

func TestFilterOpIPv4Eq(t *testing.T) {
	eng := openSample(t, ipLogLines)

	idx, err := eng.FilterOp("ipv4", Eq, "192.168.1.3")
	if err != nil {
		t.Fatalf("FilterOp: %v", err)
	}
	if len(idx) != 1 || idx[0] != 2 {
		t.Fatalf("FilterOp(ipv4, Eq, ...) = %v, want [2]", idx)
	}
}

func TestFilterOpLogLevel(t *testing.T) {
	eng := openSample(t, ipLogLines)

	idx, err := eng.FilterOp("log_levels", Eq, "ERROR")
	if err != nil {
		t.Fatalf("FilterOp: %v", err)
	}
	if len(idx) != 1 || idx[0] != 2 {
		t.Fatalf("FilterOp(log_levels, Eq, ERROR) = %v, want [2]", idx)
	}
}

func TestSelectColumnsZipsRowsByIndex(t *testing.T) {
	eng := openSample(t, ipLogLines)

	res, err := eng.SelectColumns([]string{"ipv4", "log_levels"})
	if err != nil {
		t.Fatalf("SelectColumns: %v", err)
	}
	if len(res.Rows) != 5 {
		t.Fatalf("len(Rows) = %d, want 5", len(res.Rows))
	}
	if res.Rows[2]["log_levels"] != "ERROR" {
		t.Errorf("Rows[2][log_levels] = %q, want ERROR", res.Rows[2]["log_levels"])
	}
}

func TestSelectColumnAbsentReturnsEmpty(t *testing.T) {
	eng := openSample(t, "no recognizable structure at all")

	got, err := eng.SelectColumn("ipv4")
	if err != nil {
		t.Fatalf("SelectColumn: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestQueryShortCircuitsOnNoMatches(t *testing.T) {
	eng := openSample(t, ipLogLines)

	res, err := eng.Query([]string{"ipv4"}, "ipv4", Eq, "10.0.0.1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(res.Rows))
	}
}

func TestQueryMaterializesOnlyMatchedRows(t *testing.T) {
	eng := openSample(t, ipLogLines)

	res, err := eng.Query([]string{"ipv4", "log_levels"}, "log_levels", Eq, "ERROR")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(res.Rows))
	}
	if res.Rows[0]["ipv4"] != "192.168.1.3" {
		t.Errorf("Rows[0][ipv4] = %q, want 192.168.1.3", res.Rows[0]["ipv4"])
	}
}

func TestBuilderSelectOnly(t *testing.T) {
	eng := openSample(t, ipLogLines)

	res, err := NewBuilder(eng).Select("ipv4").Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Rows) != 5 {
		t.Fatalf("len(Rows) = %d, want 5", len(res.Rows))
	}
}

func TestBuilderWithFilter(t *testing.T) {
	eng := openSample(t, ipLogLines)

	res, err := NewBuilder(eng).Select("ipv4").Where("log_levels", Eq, "ERROR").Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("len(Rows) = %d, want 1", len(res.Rows))
	}
}
