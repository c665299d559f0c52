package ranking

import (
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
)

func makeItems(values []int64) []Item {
	items := make([]Item, 0, len(values))
	for i, v := range values {
		items = append(items, Item{
			VehicleNo: "v" + strconv.Itoa(i),
			Value:     decimal.NewFromInt(v),
		})
	}
	return items
}

func TestSortDescTieBreak(t *testing.T) {
	items := []Item{
		{VehicleNo: "566", Value: decimal.NewFromInt(100)},
		{VehicleNo: "562", Value: decimal.NewFromInt(100)},
		{VehicleNo: "570", Value: decimal.NewFromInt(200)},
	}
	SortDesc(items)
	if items[0].VehicleNo != "570" {
		t.Errorf("first should be 570, got %s", items[0].VehicleNo)
	}
	// 金额相同按车牌升序
	if items[1].VehicleNo != "562" || items[2].VehicleNo != "566" {
		t.Errorf("tie-break wrong: %s, %s", items[1].VehicleNo, items[2].VehicleNo)
	}
}

func TestSortSigned(t *testing.T) {
	items := []Item{
		{VehicleNo: "a", Value: decimal.NewFromInt(-50)},
		{VehicleNo: "b", Value: decimal.NewFromInt(10)},
		{VehicleNo: "c", Value: decimal.NewFromInt(-5)},
		{VehicleNo: "d", Value: decimal.NewFromInt(30)},
	}
	SortSigned(items)
	// 正数在前按绝对值降序：30, 10；非正数在后按绝对值降序：-50, -5
	want := []string{"d", "b", "a", "c"}
	for i, w := range want {
		if items[i].VehicleNo != w {
			t.Errorf("pos %d: got %s want %s", i, items[i].VehicleNo, w)
		}
	}
}

func TestWindowOverThreshold(t *testing.T) {
	values := make([]int64, 30)
	for i := range values {
		values[i] = int64(1000 - i)
	}
	items := makeItems(values)
	SortDesc(items)
	Number(items)

	out := Window(items, RewardPenaltyWindow)
	if len(out) != TopKeep+1+BottomKeep {
		t.Fatalf("windowed length = %d, want 24", len(out))
	}
	for i := 0; i < TopKeep; i++ {
		if out[i].Rank != i+1 || out[i].IsEllipsis {
			t.Errorf("row %d: rank=%d ellipsis=%v", i, out[i].Rank, out[i].IsEllipsis)
		}
	}
	if !out[TopKeep].IsEllipsis || out[TopKeep].Rank != 21 {
		t.Errorf("row 21 should be ellipsis with rank 21, got rank=%d ellipsis=%v", out[TopKeep].Rank, out[TopKeep].IsEllipsis)
	}
	// 末尾 3 行名次 28..30
	for i := 0; i < BottomKeep; i++ {
		got := out[TopKeep+1+i].Rank
		if got != 28+i {
			t.Errorf("bottom row %d: rank=%d want %d", i, got, 28+i)
		}
	}
}

func TestWindowUnderThreshold(t *testing.T) {
	items := makeItems([]int64{5, 4, 3, 2, 1, 10, 9, 8, 7, 6, 15, 14, 13, 12, 11, 20, 19, 18, 17, 16})
	SortDesc(items)
	Number(items)
	out := Window(items, RewardPenaltyWindow)
	if len(out) != 20 {
		t.Fatalf("length = %d, want 20", len(out))
	}
	for i := range out {
		if out[i].IsEllipsis {
			t.Errorf("row %d should not be ellipsis", i)
		}
		if out[i].Rank != i+1 {
			t.Errorf("row %d rank = %d", i, out[i].Rank)
		}
	}
}

func TestWindowExactlyThreshold(t *testing.T) {
	values := make([]int64, SingleTurnWindow)
	for i := range values {
		values[i] = int64(i + 1)
	}
	items := makeItems(values)
	SortDesc(items)
	Number(items)
	out := Window(items, SingleTurnWindow)
	if len(out) != SingleTurnWindow {
		t.Fatalf("length = %d, want %d", len(out), SingleTurnWindow)
	}
}
