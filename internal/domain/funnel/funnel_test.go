package funnel

import (
	"math"
	"reflect"
	"testing"
)

func TestProject_StarterExample(t *testing.T) {
	in := Inputs{
		TargetMonthlyRevenue: 50000,
		PricePerClient:       500,
		VideosPerMonth:       12,
		AvgViewsPerVideo:     1000,
		ViewToBookingRatePct: 0.8,
		ShowRatePct:          60,
		CloseRatePct:         40,
	}

	p := Project(in)

	if p.ClientsNeeded != 100 {
		t.Errorf("ClientsNeeded = %d, want 100", p.ClientsNeeded)
	}
	if p.MonthlyReach != 12000 {
		t.Errorf("MonthlyReach = %v, want 12000", p.MonthlyReach)
	}
	if math.Abs(p.BookingsPerMonth-96) > 1e-9 {
		t.Errorf("BookingsPerMonth = %v, want 96", p.BookingsPerMonth)
	}
	if math.Abs(p.ShowsPerMonth-57.6) > 1e-9 {
		t.Errorf("ShowsPerMonth = %v, want 57.6", p.ShowsPerMonth)
	}
	if math.Abs(p.NewClientsPerMonth-23.04) > 1e-9 {
		t.Errorf("NewClientsPerMonth = %v, want 23.04", p.NewClientsPerMonth)
	}
	if p.NewClientsRounded != 23 {
		t.Errorf("NewClientsRounded = %d, want 23", p.NewClientsRounded)
	}
	if p.NewMRR != 11500 {
		t.Errorf("NewMRR = %v, want 11500", p.NewMRR)
	}
	if p.MonthsToGoal == nil || *p.MonthsToGoal != 5 {
		t.Errorf("MonthsToGoal = %v, want 5", p.MonthsToGoal)
	}
}

func TestProject_AgencyExample(t *testing.T) {
	in := Inputs{
		TargetMonthlyRevenue: 50000,
		PricePerClient:       2000,
		VideosPerMonth:       12,
		AvgViewsPerVideo:     1500,
		ViewToBookingRatePct: 2,
		ShowRatePct:          70,
		CloseRatePct:         25,
	}

	p := Project(in)

	if p.ClientsNeeded != 25 {
		t.Errorf("ClientsNeeded = %d, want 25", p.ClientsNeeded)
	}
	if p.MonthlyReach != 18000 {
		t.Errorf("MonthlyReach = %v, want 18000", p.MonthlyReach)
	}
	if math.Abs(p.BookingsPerMonth-360) > 1e-9 {
		t.Errorf("BookingsPerMonth = %v, want 360", p.BookingsPerMonth)
	}
	if math.Abs(p.ShowsPerMonth-252) > 1e-9 {
		t.Errorf("ShowsPerMonth = %v, want 252", p.ShowsPerMonth)
	}
	if math.Abs(p.NewClientsPerMonth-63) > 1e-9 {
		t.Errorf("NewClientsPerMonth = %v, want 63", p.NewClientsPerMonth)
	}
	if p.NewMRR != 126000 {
		t.Errorf("NewMRR = %v, want 126000", p.NewMRR)
	}
	if p.MonthsToGoal == nil || *p.MonthsToGoal != 1 {
		t.Errorf("MonthsToGoal = %v, want 1", p.MonthsToGoal)
	}
}

func TestProject_PriceGuard(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  int // clients needed for a 1000 target
	}{
		{"zero price uses denominator 1", 0, 1000},
		{"negative price uses denominator 1", -50, 1000},
		{"fractional price below 1 uses denominator 1", 0.25, 1000},
		{"price of exactly 1", 1, 1000},
		{"normal price", 100, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := StarterDefaults
			in.TargetMonthlyRevenue = 1000
			in.PricePerClient = tt.price

			p := Project(in)
			if p.ClientsNeeded != tt.want {
				t.Errorf("ClientsNeeded = %d, want %d", p.ClientsNeeded, tt.want)
			}
			if p.ClientsNeeded < 0 {
				t.Errorf("ClientsNeeded = %d, must never be negative via the price guard", p.ClientsNeeded)
			}
		})
	}
}

func TestProject_ZeroRatesNeverReachGoal(t *testing.T) {
	fields := []struct {
		name string
		zero func(*Inputs)
	}{
		{"view to booking", func(in *Inputs) { in.ViewToBookingRatePct = 0 }},
		{"show rate", func(in *Inputs) { in.ShowRatePct = 0 }},
		{"close rate", func(in *Inputs) { in.CloseRatePct = 0 }},
		{"no videos", func(in *Inputs) { in.VideosPerMonth = 0 }},
		{"no views", func(in *Inputs) { in.AvgViewsPerVideo = 0 }},
	}

	for _, tt := range fields {
		t.Run(tt.name, func(t *testing.T) {
			in := StarterDefaults
			tt.zero(&in)

			p := Project(in)
			if p.NewClientsPerMonth != 0 {
				t.Errorf("NewClientsPerMonth = %v, want 0", p.NewClientsPerMonth)
			}
			if p.MonthsToGoal != nil {
				t.Errorf("MonthsToGoal = %d, want nil (goal never reached)", *p.MonthsToGoal)
			}
			if p.GoalReachable() {
				t.Error("GoalReachable() = true, want false")
			}
			if p.NewMRR != 0 {
				t.Errorf("NewMRR = %v, want 0", p.NewMRR)
			}
		})
	}
}

func TestProject_CeilingNeverRoundsDown(t *testing.T) {
	in := StarterDefaults
	in.TargetMonthlyRevenue = 1001
	in.PricePerClient = 500

	p := Project(in)
	if p.ClientsNeeded != 3 {
		t.Errorf("ClientsNeeded = %d, want 3 (ceil of 2.002)", p.ClientsNeeded)
	}

	// MonthsToGoal: 3 clients needed at 23.04 per month is 0.13 months,
	// which still rounds up to a full month.
	if p.MonthsToGoal == nil || *p.MonthsToGoal != 1 {
		t.Errorf("MonthsToGoal = %v, want 1", p.MonthsToGoal)
	}
}

func TestProject_MRRMatchesRoundedClients(t *testing.T) {
	// The displayed client count and MRR must agree under the
	// rounded-aligned variant for arbitrary rates.
	in := Inputs{
		TargetMonthlyRevenue: 80000,
		PricePerClient:       750,
		VideosPerMonth:       7,
		AvgViewsPerVideo:     1234,
		ViewToBookingRatePct: 1.3,
		ShowRatePct:          55,
		CloseRatePct:         33,
	}

	p := Project(in)
	if want := float64(p.NewClientsRounded) * in.PricePerClient; p.NewMRR != want {
		t.Errorf("NewMRR = %v, want %v (rounded clients * price)", p.NewMRR, want)
	}
}

func TestProject_Idempotent(t *testing.T) {
	in := AgencyDefaults

	a := Project(in)
	b := Project(in)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("Project is not idempotent: %+v vs %+v", a, b)
	}
}

func TestSanitize(t *testing.T) {
	def := StarterDefaults

	t.Run("finite values pass through", func(t *testing.T) {
		in := Inputs{
			TargetMonthlyRevenue: 1,
			PricePerClient:       2,
			VideosPerMonth:       3,
			AvgViewsPerVideo:     4,
			ViewToBookingRatePct: 5,
			ShowRatePct:          6,
			CloseRatePct:         0, // zero is a valid finite value
		}
		if got := in.Sanitize(def); got != in {
			t.Errorf("Sanitize changed finite inputs: %+v", got)
		}
	})

	t.Run("NaN falls back per field", func(t *testing.T) {
		in := def
		in.PricePerClient = math.NaN()
		got := in.Sanitize(def)
		if got.PricePerClient != def.PricePerClient {
			t.Errorf("PricePerClient = %v, want default %v", got.PricePerClient, def.PricePerClient)
		}
		if got.ShowRatePct != def.ShowRatePct {
			t.Errorf("ShowRatePct = %v, other fields must be untouched", got.ShowRatePct)
		}
	})

	t.Run("infinities fall back", func(t *testing.T) {
		in := def
		in.TargetMonthlyRevenue = math.Inf(1)
		in.CloseRatePct = math.Inf(-1)
		got := in.Sanitize(def)
		if got.TargetMonthlyRevenue != def.TargetMonthlyRevenue {
			t.Errorf("TargetMonthlyRevenue = %v, want default", got.TargetMonthlyRevenue)
		}
		if got.CloseRatePct != def.CloseRatePct {
			t.Errorf("CloseRatePct = %v, want default", got.CloseRatePct)
		}
	})
}

func TestDefaultsFor(t *testing.T) {
	if got := DefaultsFor(ProfileAgency); got.PricePerClient != 2000 {
		t.Errorf("agency PricePerClient = %v, want 2000", got.PricePerClient)
	}
	if got := DefaultsFor(ProfileStarter); got.PricePerClient != 500 {
		t.Errorf("starter PricePerClient = %v, want 500", got.PricePerClient)
	}
	if got := DefaultsFor("unknown"); got != StarterDefaults {
		t.Errorf("unknown slug should fall back to starter defaults, got %+v", got)
	}
}
