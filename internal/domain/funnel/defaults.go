package funnel

// Profile slugs for the built-in default assumption sets.
const (
	ProfileStarter = "starter"
	ProfileAgency  = "agency"
)

// StarterDefaults are the assumptions preloaded for solo creators selling a
// lower-ticket recurring offer. This is the documented default set used when
// no profile is selected.
var StarterDefaults = Inputs{
	TargetMonthlyRevenue: 50000,
	PricePerClient:       500,
	VideosPerMonth:       12,
	AvgViewsPerVideo:     1000,
	ViewToBookingRatePct: 0.8,
	ShowRatePct:          60,
	CloseRatePct:         40,
}

// AgencyDefaults are the assumptions preloaded for agencies selling a
// higher-ticket retainer.
var AgencyDefaults = Inputs{
	TargetMonthlyRevenue: 50000,
	PricePerClient:       2000,
	VideosPerMonth:       12,
	AvgViewsPerVideo:     1500,
	ViewToBookingRatePct: 2,
	ShowRatePct:          70,
	CloseRatePct:         25,
}

// Band is the suggested slider range for a rate input. It only constrains
// the UI; the engine accepts any finite value.
type Band struct {
	Min float64 `json:"min" bson:"min"`
	Max float64 `json:"max" bson:"max"`
}

// ViewToBookingBands holds the observed slider ranges for the
// view-to-booking rate per profile.
var ViewToBookingBands = map[string]Band{
	ProfileStarter: {Min: 0.5, Max: 2},
	ProfileAgency:  {Min: 0.1, Max: 5},
}

// DefaultsFor returns the built-in default set for the given profile slug.
// Unknown slugs fall back to StarterDefaults.
func DefaultsFor(slug string) Inputs {
	if slug == ProfileAgency {
		return AgencyDefaults
	}
	return StarterDefaults
}
