// Package funnel computes sales-funnel projections from business assumptions.
//
// The projection is a pure arithmetic transform: content volume and reach
// flow through three conversion rates (view → booking, booking → show,
// show → close) to produce a monthly client and revenue forecast, plus the
// number of months until the revenue goal is met. Project has no state and
// no I/O; it is safe to call concurrently and repeatedly.
package funnel

import "math"

// Inputs holds the seven user-editable assumptions.
//
// All values must be finite; callers are responsible for coercing missing or
// non-numeric input to defaults first (see Sanitize and queryval.Inputs).
// Rates are expressed as percentages (e.g. 60 means 60%).
type Inputs struct {
	TargetMonthlyRevenue float64 `json:"target_monthly_revenue" bson:"target_monthly_revenue"`
	PricePerClient       float64 `json:"price_per_client"       bson:"price_per_client"`
	VideosPerMonth       float64 `json:"videos_per_month"       bson:"videos_per_month"`
	AvgViewsPerVideo     float64 `json:"avg_views_per_video"    bson:"avg_views_per_video"`
	ViewToBookingRatePct float64 `json:"view_to_booking_rate_pct" bson:"view_to_booking_rate_pct"`
	ShowRatePct          float64 `json:"show_rate_pct"          bson:"show_rate_pct"`
	CloseRatePct         float64 `json:"close_rate_pct"         bson:"close_rate_pct"`
}

// Projection is the derived forecast.
//
// NewClientsPerMonth is kept unrounded; NewClientsRounded is the integer
// shown next to NewMRR. NewMRR uses the rounded client count so the two
// displayed figures always agree (NewMRR == NewClientsRounded * price).
//
// MonthsToGoal is nil when the funnel produces no clients: the goal is never
// reached, which is a distinct state rather than zero or a sentinel. In JSON
// it serializes as null.
type Projection struct {
	ClientsNeeded      int     `json:"clients_needed"`
	MonthlyReach       float64 `json:"monthly_reach"`
	BookingsPerMonth   float64 `json:"bookings_per_month"`
	ShowsPerMonth      float64 `json:"shows_per_month"`
	NewClientsPerMonth float64 `json:"new_clients_per_month"`
	NewClientsRounded  int     `json:"new_clients_rounded"`
	NewMRR             float64 `json:"new_mrr"`
	MonthsToGoal       *int    `json:"months_to_goal"`
}

// GoalReachable reports whether the current assumptions ever reach the
// revenue goal.
func (p Projection) GoalReachable() bool {
	return p.MonthsToGoal != nil
}

// Project derives the funnel projection from the given assumptions.
//
// The price denominator is floored at 1, so a zero or negative price cannot
// blow up the clients-needed division. ClientsNeeded and MonthsToGoal round
// up ("at least this many"); NewClientsPerMonth stays unrounded.
func Project(in Inputs) Projection {
	viewToBooking := in.ViewToBookingRatePct / 100
	showRate := in.ShowRatePct / 100
	closeRate := in.CloseRatePct / 100

	clientsNeeded := int(math.Ceil(in.TargetMonthlyRevenue / math.Max(1, in.PricePerClient)))

	reach := in.VideosPerMonth * in.AvgViewsPerVideo
	bookings := reach * viewToBooking
	shows := bookings * showRate
	newClients := shows * closeRate

	rounded := int(math.Round(newClients))

	p := Projection{
		ClientsNeeded:      clientsNeeded,
		MonthlyReach:       reach,
		BookingsPerMonth:   bookings,
		ShowsPerMonth:      shows,
		NewClientsPerMonth: newClients,
		NewClientsRounded:  rounded,
		NewMRR:             float64(rounded) * in.PricePerClient,
	}

	if newClients > 0 {
		months := int(math.Ceil(float64(clientsNeeded) / newClients))
		p.MonthsToGoal = &months
	}

	return p
}

// Sanitize returns a copy of in with every non-finite field replaced by the
// corresponding field of def. Finite values, including zero and negative
// ones, pass through unchanged.
func (in Inputs) Sanitize(def Inputs) Inputs {
	out := in
	if !isFinite(out.TargetMonthlyRevenue) {
		out.TargetMonthlyRevenue = def.TargetMonthlyRevenue
	}
	if !isFinite(out.PricePerClient) {
		out.PricePerClient = def.PricePerClient
	}
	if !isFinite(out.VideosPerMonth) {
		out.VideosPerMonth = def.VideosPerMonth
	}
	if !isFinite(out.AvgViewsPerVideo) {
		out.AvgViewsPerVideo = def.AvgViewsPerVideo
	}
	if !isFinite(out.ViewToBookingRatePct) {
		out.ViewToBookingRatePct = def.ViewToBookingRatePct
	}
	if !isFinite(out.ShowRatePct) {
		out.ShowRatePct = def.ShowRatePct
	}
	if !isFinite(out.CloseRatePct) {
		out.CloseRatePct = def.CloseRatePct
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
