package settlement

import (
	"testing"

	"github.com/shopspring/decimal"

	"fleet-ledger-api/internal/constant"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculateAutoAverage(t *testing.T) {
	in := Input{
		TotalNetIncome: dec("10500"),
		ManagerSalary:  dec("500"),
		Vehicles: []VehicleNet{
			{VehicleID: 1, VehicleNo: "562", NetIncome: dec("4000")},
			{VehicleID: 2, VehicleNo: "563", NetIncome: dec("3500")},
			{VehicleID: 3, VehicleNo: "564", NetIncome: dec("3000")},
		},
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// (10500 - 500) / 3 = 3333.33.. -> 3333.3
	if !res.AutoAverageIncome.Equal(dec("3333.3")) {
		t.Errorf("auto average = %s, want 3333.3", res.AutoAverageIncome)
	}
	if !res.EffectiveAverageIncome.Equal(res.AutoAverageIncome) {
		t.Errorf("effective should equal auto without manual override")
	}
}

func TestCalculateSignConvention(t *testing.T) {
	in := Input{
		TotalNetIncome: dec("300"),
		ManagerSalary:  dec("0"),
		Vehicles: []VehicleNet{
			{VehicleID: 1, VehicleNo: "562", NetIncome: dec("50")},  // 低于均值 100
			{VehicleID: 2, VehicleNo: "563", NetIncome: dec("150")}, // 高于均值
			{VehicleID: 3, VehicleNo: "564", NetIncome: dec("100")}, // 恰好持平
		},
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	low := res.Details[0]
	if !low.PaymentDue.Equal(dec("50")) || !low.PaymentReceivable.IsZero() {
		t.Errorf("below average: due=%s recv=%s, want due=50 recv=0", low.PaymentDue, low.PaymentReceivable)
	}
	high := res.Details[1]
	if !high.PaymentReceivable.Equal(dec("50")) || !high.PaymentDue.IsZero() {
		t.Errorf("above average: due=%s recv=%s, want due=0 recv=50", high.PaymentDue, high.PaymentReceivable)
	}
	even := res.Details[2]
	if !even.PaymentDue.IsZero() || !even.PaymentReceivable.IsZero() {
		t.Errorf("at average: due=%s recv=%s, want both 0", even.PaymentDue, even.PaymentReceivable)
	}
}

func TestCalculateManualOverride(t *testing.T) {
	in := Input{
		TotalNetIncome:      dec("300"),
		ManagerSalary:       dec("0"),
		ManualAverageIncome: decimal.NullDecimal{Decimal: dec("120"), Valid: true},
		Vehicles: []VehicleNet{
			{VehicleID: 1, VehicleNo: "562", NetIncome: dec("50")},
			{VehicleID: 2, VehicleNo: "563", NetIncome: dec("250")},
		},
	}
	res, err := Calculate(in)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	// auto = 300/2 = 150，生效均值取手工修正 120
	if !res.AutoAverageIncome.Equal(dec("150")) {
		t.Errorf("auto = %s, want 150", res.AutoAverageIncome)
	}
	if !res.EffectiveAverageIncome.Equal(dec("120")) {
		t.Errorf("effective = %s, want 120", res.EffectiveAverageIncome)
	}
	// 两套口径同时保留
	d := res.Details[0]
	if !d.AutoPaymentDue.Equal(dec("100")) {
		t.Errorf("auto due = %s, want 100", d.AutoPaymentDue)
	}
	if !d.PaymentDue.Equal(dec("70")) {
		t.Errorf("corrected due = %s, want 70", d.PaymentDue)
	}
}

func TestCalculateEmptyRoster(t *testing.T) {
	_, err := Calculate(Input{TotalNetIncome: dec("100"), ManagerSalary: dec("0")})
	if err == nil {
		t.Fatal("expected error for empty roster")
	}
	if !constant.IsConsistency(err) {
		t.Errorf("expected consistency error, got %v", err)
	}
}
