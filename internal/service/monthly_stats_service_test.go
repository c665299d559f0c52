package service

import (
	"testing"

	"fleet-ledger-api/internal/constant"
	"fleet-ledger-api/internal/dto"
	mainmodel "fleet-ledger-api/internal/model/main"
)

func TestComputeMonthAggregates(t *testing.T) {
	ms := fleetOf(2) // 562, 563
	income, _, monthly, _ := newServices(ms)
	ms.schedules = append(ms.schedules, mainmodel.ConductorSchedule{
		VehicleID: 1, Year: 2025, Month: 2, ConductorID: 2, ConductorNo: "563",
	})

	// 562 出车两天，563 出车一天
	for _, req := range []dto.SaveIncomeReq{
		{StatDate: "2025-02-10", VehicleNo: "562", Turn1: strp("100"), Turn2: strp("30"), IsOvertime: true},
		{StatDate: "2025-02-11", VehicleNo: "562", Turn1: strp("80"), Turn2: strp("50"), RewardPenalty: "-5"},
		{StatDate: "2025-02-11", VehicleNo: "563", Turn1: strp("60")},
	} {
		if _, err := income.DeriveAndSave(req, "tester"); err != nil {
			t.Fatalf("save %s %s: %v", req.StatDate, req.VehicleNo, err)
		}
	}

	vo, err := monthly.ComputeMonth(2025, 2)
	if err != nil {
		t.Fatalf("ComputeMonth: %v", err)
	}

	if !vo.TotalRevenue.Equal(dec("320")) {
		t.Errorf("total revenue = %s, want 320", vo.TotalRevenue)
	}
	if !vo.TotalNetIncome.Equal(dec("315")) {
		t.Errorf("total net = %s, want 315", vo.TotalNetIncome)
	}
	if vo.RecordCount != 3 || vo.OvertimeCount != 1 {
		t.Errorf("records = %d overtime = %d, want 3 / 1", vo.RecordCount, vo.OvertimeCount)
	}
	if len(vo.Vehicles) != 2 {
		t.Fatalf("vehicles = %d, want 2 (roster order)", len(vo.Vehicles))
	}

	v562 := vo.Vehicles[0]
	if v562.VehicleNo != "562" {
		t.Fatalf("first vehicle = %s, want roster order 562 first", v562.VehicleNo)
	}
	if !v562.Revenue.Equal(dec("260")) || !v562.NetIncome.Equal(dec("255")) {
		t.Errorf("562 revenue/net = %s/%s, want 260/255", v562.Revenue, v562.NetIncome)
	}
	if v562.TurnCount != 4 {
		t.Errorf("562 turn count = %d, want 4", v562.TurnCount)
	}
	// 趟次金额取槽位最大值，不是合计
	if !v562.Turn1Max.Valid || !v562.Turn1Max.Decimal.Equal(dec("100")) {
		t.Errorf("562 turn1 max = %v, want 100", v562.Turn1Max)
	}
	if !v562.Turn2Max.Valid || !v562.Turn2Max.Decimal.Equal(dec("50")) {
		t.Errorf("562 turn2 max = %v, want 50", v562.Turn2Max)
	}
	if v562.Turn3Max.Valid {
		t.Errorf("562 turn3 max should stay null when no record filled it")
	}
	if v562.ConductorNo != "563" {
		t.Errorf("562 conductor = %s, want 563 from schedule", v562.ConductorNo)
	}
	// 2025 年 2 月 28 天
	if v562.RecordCount != 2 || v562.RestDayCount != 26 {
		t.Errorf("562 record/rest = %d/%d, want 2/26", v562.RecordCount, v562.RestDayCount)
	}
	if v562.IsOvertime != true {
		t.Errorf("562 overtime flag should be true, one record was overtime")
	}

	v563 := vo.Vehicles[1]
	if v563.RecordCount != 1 || v563.RestDayCount != 27 {
		t.Errorf("563 record/rest = %d/%d, want 1/27", v563.RecordCount, v563.RestDayCount)
	}
	if vo.RestDayCount != 26+27 {
		t.Errorf("month rest days = %d, want 53", vo.RestDayCount)
	}
}

func TestComputeMonthInvalid(t *testing.T) {
	ms := fleetOf(1)
	_, _, monthly, _ := newServices(ms)
	for _, tc := range []struct{ year, month int }{{2025, 0}, {2025, 13}, {0, 5}} {
		if _, err := monthly.ComputeMonth(tc.year, tc.month); constant.CodeOf(err) != constant.CodeMonthInvalid {
			t.Errorf("(%d,%d): code = %d, want %d", tc.year, tc.month, constant.CodeOf(err), constant.CodeMonthInvalid)
		}
	}
}

func TestComputeMonthRetiredVehicleCountsInTotalsOnly(t *testing.T) {
	ms := fleetOf(1)
	_, _, monthly, _ := newServices(ms)

	// 已停运车辆的历史记录直接落在存储里
	rec := &mainmodel.IncomeRecord{
		StatDate:  mustDate(t, "2025-02-05"),
		VehicleID: 77,
		VehicleNo: "577",
		Revenue:   dec("90"),
		NetIncome: dec("90"),
	}
	if err := ms.Save(rec); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	vo, err := monthly.ComputeMonth(2025, 2)
	if err != nil {
		t.Fatalf("ComputeMonth: %v", err)
	}
	if !vo.TotalRevenue.Equal(dec("90")) {
		t.Errorf("total revenue = %s, want 90 (history still counts)", vo.TotalRevenue)
	}
	if len(vo.Vehicles) != 1 || vo.Vehicles[0].HasIncome {
		t.Errorf("retired vehicle must not enter roster aggregates")
	}
}

func TestRevenueRankingOrderAndTail(t *testing.T) {
	ms := fleetOf(3) // 562, 563, 564
	income, _, monthly, _ := newServices(ms)

	for _, req := range []dto.SaveIncomeReq{
		{StatDate: "2025-02-10", VehicleNo: "563", Turn1: strp("200")},
		{StatDate: "2025-02-10", VehicleNo: "562", Turn1: strp("100")},
	} {
		if _, err := income.DeriveAndSave(req, "tester"); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	vo, err := monthly.ComputeMonth(2025, 2)
	if err != nil {
		t.Fatalf("ComputeMonth: %v", err)
	}

	r := vo.RevenueRanking
	if len(r) != 3 {
		t.Fatalf("ranking rows = %d, want 3", len(r))
	}
	if r[0].VehicleNo != "563" || r[0].Rank != 1 {
		t.Errorf("rank 1 = %s(%d), want 563(1)", r[0].VehicleNo, r[0].Rank)
	}
	if r[1].VehicleNo != "562" || r[1].Rank != 2 {
		t.Errorf("rank 2 = %s(%d), want 562(2)", r[1].VehicleNo, r[1].Rank)
	}
	// 无收入的车接在后面继续编号
	if r[2].VehicleNo != "564" || r[2].Rank != 3 || !r[2].Value.IsZero() {
		t.Errorf("rank 3 = %s(%d)=%s, want 564(3)=0", r[2].VehicleNo, r[2].Rank, r[2].Value)
	}
}

func TestSingleTurnRankingFlattensTurns(t *testing.T) {
	ms := fleetOf(2)
	income, _, monthly, _ := newServices(ms)

	if _, err := income.DeriveAndSave(dto.SaveIncomeReq{
		StatDate: "2025-02-10", VehicleNo: "562",
		Turn1: strp("120"), Turn2: strp("90"),
	}, "tester"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := income.DeriveAndSave(dto.SaveIncomeReq{
		StatDate: "2025-02-11", VehicleNo: "563", Turn1: strp("100"),
	}, "tester"); err != nil {
		t.Fatalf("save: %v", err)
	}

	vo, err := monthly.ComputeMonth(2025, 2)
	if err != nil {
		t.Fatalf("ComputeMonth: %v", err)
	}

	r := vo.SingleTurnRanking
	if len(r) != 3 {
		t.Fatalf("single-turn rows = %d, want 3 (one per turn, same vehicle may repeat)", len(r))
	}
	if r[0].VehicleNo != "562" || !r[0].Value.Equal(dec("120")) || r[0].TurnSlot != 1 {
		t.Errorf("row 1 = %s %s slot %d, want 562 120 slot 1", r[0].VehicleNo, r[0].Value, r[0].TurnSlot)
	}
	if r[1].VehicleNo != "563" || !r[1].Value.Equal(dec("100")) {
		t.Errorf("row 2 = %s %s, want 563 100", r[1].VehicleNo, r[1].Value)
	}
	if r[2].VehicleNo != "562" || !r[2].Value.Equal(dec("90")) || r[2].TurnSlot != 2 {
		t.Errorf("row 3 = %s %s slot %d, want 562 90 slot 2", r[2].VehicleNo, r[2].Value, r[2].TurnSlot)
	}
}

func TestRewardPenaltyRankingPositivesFirst(t *testing.T) {
	ms := fleetOf(3)
	income, _, monthly, _ := newServices(ms)

	for _, req := range []dto.SaveIncomeReq{
		{StatDate: "2025-02-10", VehicleNo: "562", Turn1: strp("10"), RewardPenalty: "-30"},
		{StatDate: "2025-02-11", VehicleNo: "563", Turn1: strp("10"), RewardPenalty: "20"},
		{StatDate: "2025-02-12", VehicleNo: "564", Turn1: strp("10")},
	} {
		if _, err := income.DeriveAndSave(req, "tester"); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	vo, err := monthly.ComputeMonth(2025, 2)
	if err != nil {
		t.Fatalf("ComputeMonth: %v", err)
	}

	r := vo.RewardPenaltyRanking
	if len(r) != 2 {
		t.Fatalf("reward rows = %d, want 2 (zero adjustments excluded)", len(r))
	}
	// 正数在前，负数按绝对值降序在后，带具体日期
	if r[0].VehicleNo != "563" || !r[0].Value.Equal(dec("20")) || r[0].StatDate != "2025-02-11" {
		t.Errorf("row 1 = %s %s %s, want 563 20 2025-02-11", r[0].VehicleNo, r[0].Value, r[0].StatDate)
	}
	if r[1].VehicleNo != "562" || !r[1].Value.Equal(dec("-30")) {
		t.Errorf("row 2 = %s %s, want 562 -30", r[1].VehicleNo, r[1].Value)
	}
}

func TestAvgPerTurnRanking(t *testing.T) {
	ms := fleetOf(2)
	income, _, monthly, _ := newServices(ms)

	// 562 共 3 趟合计 100，趟均 100/3 截断到 33.3
	for _, req := range []dto.SaveIncomeReq{
		{StatDate: "2025-02-10", VehicleNo: "562", Turn1: strp("40"), Turn2: strp("35"), Turn3: strp("25")},
	} {
		if _, err := income.DeriveAndSave(req, "tester"); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	vo, err := monthly.ComputeMonth(2025, 2)
	if err != nil {
		t.Fatalf("ComputeMonth: %v", err)
	}

	r := vo.AvgPerTurnRanking
	if len(r) != 2 {
		t.Fatalf("avg rows = %d, want 2", len(r))
	}
	if r[0].VehicleNo != "562" || !r[0].Value.Equal(dec("33.3")) {
		t.Errorf("row 1 = %s %s, want 562 33.3 (100/3 truncated)", r[0].VehicleNo, r[0].Value)
	}
	if r[1].VehicleNo != "563" || r[1].Rank != 2 {
		t.Errorf("no-turn vehicle should tail with rank 2, got %s(%d)", r[1].VehicleNo, r[1].Rank)
	}
}
