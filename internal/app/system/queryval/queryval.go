// Package queryval decodes numeric query parameters with per-field defaults.
//
// The calculator's input contract is forgiving: a missing,
// unparsable, or non-finite query value is never an error, it just falls
// back to the field's default. Handlers therefore never see invalid numbers.
package queryval

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/z-bubblegum/nigelleadmagnet/internal/domain/funnel"
)

// Query parameter names for the calculator fields.
const (
	ParamTargetMonthlyRevenue = "target_monthly_revenue"
	ParamPricePerClient       = "price_per_client"
	ParamVideosPerMonth       = "videos_per_month"
	ParamAvgViewsPerVideo     = "avg_views_per_video"
	ParamViewToBookingRatePct = "view_to_booking_rate_pct"
	ParamShowRatePct          = "show_rate_pct"
	ParamCloseRatePct         = "close_rate_pct"
)

// Float returns the named query parameter as a finite float64, or fallback
// when the parameter is absent, empty, unparsable, NaN, or infinite.
func Float(q url.Values, name string, fallback float64) float64 {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}

// Inputs decodes the seven calculator fields from query parameters, using
// def for any field that is absent or invalid.
func Inputs(q url.Values, def funnel.Inputs) funnel.Inputs {
	return funnel.Inputs{
		TargetMonthlyRevenue: Float(q, ParamTargetMonthlyRevenue, def.TargetMonthlyRevenue),
		PricePerClient:       Float(q, ParamPricePerClient, def.PricePerClient),
		VideosPerMonth:       Float(q, ParamVideosPerMonth, def.VideosPerMonth),
		AvgViewsPerVideo:     Float(q, ParamAvgViewsPerVideo, def.AvgViewsPerVideo),
		ViewToBookingRatePct: Float(q, ParamViewToBookingRatePct, def.ViewToBookingRatePct),
		ShowRatePct:          Float(q, ParamShowRatePct, def.ShowRatePct),
		CloseRatePct:         Float(q, ParamCloseRatePct, def.CloseRatePct),
	}
}

// Encode reflects resolved inputs back into query-parameter form. The page
// uses this to build shareable URLs that reproduce the current state.
func Encode(in funnel.Inputs) url.Values {
	q := url.Values{}
	q.Set(ParamTargetMonthlyRevenue, formatFloat(in.TargetMonthlyRevenue))
	q.Set(ParamPricePerClient, formatFloat(in.PricePerClient))
	q.Set(ParamVideosPerMonth, formatFloat(in.VideosPerMonth))
	q.Set(ParamAvgViewsPerVideo, formatFloat(in.AvgViewsPerVideo))
	q.Set(ParamViewToBookingRatePct, formatFloat(in.ViewToBookingRatePct))
	q.Set(ParamShowRatePct, formatFloat(in.ShowRatePct))
	q.Set(ParamCloseRatePct, formatFloat(in.CloseRatePct))
	return q
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
