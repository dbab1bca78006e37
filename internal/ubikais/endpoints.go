package ubikais

import (
	"net/url"
	"strconv"
	"time"
)

// Endpoint is one fully-shaped portal request. Adapters below own the
// undocumented parameter contracts, one per upstream endpoint.
type Endpoint struct {
	Path    string
	Params  url.Values
	Referer string
}

const mainReferer = "/sysUbikais/biz/main.ubikais"

func dateYMD(t time.Time) string     { return t.Format("2006-01-02") }
func dateCompact(t time.Time) string { return t.Format("20060102") }
func dateShort(t time.Time) string   { return t.Format("060102") }
func dateRange(t time.Time, days int) (string, string) {
	return dateYMD(t.AddDate(0, 0, -days)), dateYMD(t)
}

func pagedParams(limit int) url.Values {
	return url.Values{
		"cmd":    {"get-records"},
		"limit":  {strconv.Itoa(limit)},
		"offset": {"0"},
	}
}

// MainFlights is the main-page departure/arrival board for one airport.
// depArr is "dep" or "arr".
func MainFlights(depArr, airport string) Endpoint {
	return Endpoint{
		Path:    "/main/selectIfr.fois",
		Params:  url.Values{"depArr": {depArr}, "apIcao": {airport}},
		Referer: mainReferer,
	}
}

// MainWeather is the main-page weather summary for one airport.
func MainWeather(airport string) Endpoint {
	return Endpoint{
		Path:    "/main/selectMetSpec.fois",
		Params:  url.Values{"apIcao": {airport}},
		Referer: mainReferer,
	}
}

// notamValidity fills the validity-window parameters shared by the NOTAM
// record endpoints.
func notamValidity(p url.Values, now time.Time) {
	p.Set("srchValid", dateYMD(now))
	p.Set("srchValidsh", dateShort(now)+"2359")
	p.Set("srchValidsh2", dateShort(now)+"0000")
	p.Set("srchValid2", "1")
}

// NotamFIR lists FIR-scope NOTAMs for one series (C, A, D, E, H, G, Z).
func NotamFIR(series string, now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("downloadYn", "1")
	p.Set("srchFir", "RKRR")
	p.Set("srchAd", "RKRR")
	p.Set("srchSeries", series)
	notamValidity(p, now)
	return Endpoint{Path: "/sysUbikais/biz/nps/selectNotamRecFir.fois", Params: p, Referer: mainReferer}
}

// NotamAD lists aerodrome-scope NOTAMs for one airport and series.
func NotamAD(airport, series string, now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("downloadYn", "1")
	p.Set("srchFir", "RKRR")
	p.Set("srchSeries", series)
	p.Set("srchAd", airport)
	notamValidity(p, now)
	return Endpoint{Path: "/sysUbikais/biz/nps/selectNotamRecAd.fois", Params: p, Referer: mainReferer}
}

// NotamSnow lists SNOWTAMs for the current year.
func NotamSnow(now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("downloadYn", "1")
	p.Set("printYn", "")
	p.Set("srchOriginator", "")
	p.Set("srchSeq", "")
	p.Set("srchAd", "")
	p.Set("srchValidFrom", now.Format("2006"))
	return Endpoint{Path: "/sysUbikais/biz/nps/selectNotamRecSnow.fois", Params: p, Referer: mainReferer}
}

// NotamProhibited lists off-limit airspace NOTAMs. qcode selects the zone
// class: QRP prohibited, QRR restricted, QRD danger.
func NotamProhibited(qcode string, now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("downloadYn", "1")
	p.Set("srchFir", "RKRR")
	p.Set("srchSeries", "D")
	p.Set("srchQcode", qcode)
	notamValidity(p, now)
	return Endpoint{Path: "/sysUbikais/biz/nps/selectRecOffZone.fois", Params: p, Referer: mainReferer}
}

// NotamSequence lists the NOTAM sequence for one series in the current year.
func NotamSequence(series string, now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("downloadYn", "1")
	p.Set("printYn", "")
	p.Set("srchFir", "RKRR")
	p.Set("srchSeries", series)
	p.Set("srchSeq", "")
	p.Set("srchYear", now.Format("06"))
	return Endpoint{Path: "/sysUbikais/biz/nps/selectNotamRecSeq.fois", Params: p, Referer: mainReferer}
}

// FlightPlanDepartures lists today's IFR departure plans.
func FlightPlanDepartures(now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/fpl/selectDep.fois", Params: p, Referer: mainReferer}
}

// FlightPlanArrivals lists today's IFR arrival plans.
func FlightPlanArrivals(now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/fpl/selectArr.fois", Params: p, Referer: mainReferer}
}

// FlightPlanVFR lists today's VFR plans.
func FlightPlanVFR(now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/fpl/selectVfrFpl.fois", Params: p, Referer: mainReferer}
}

// FlightPlanULP lists today's ULP/LSA plans.
func FlightPlanULP(now time.Time) Endpoint {
	p := pagedParams(1000)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/fpl/selectUlpFpl.fois", Params: p, Referer: mainReferer}
}

// Metar lists METAR/SPECI observations for one airport over the past days.
func Metar(airport string, now time.Time, days int) Endpoint {
	from, to := dateRange(now, days)
	p := pagedParams(500)
	p.Set("today", dateCompact(now))
	p.Set("srchApIcao", airport)
	p.Set("srchDateFr", from)
	p.Set("srchDateTo", to)
	return Endpoint{Path: "/sysUbikais/biz/wis/selectMetar.fois", Params: p, Referer: mainReferer}
}

// Taf lists TAF forecasts for one airport over the past days.
func Taf(airport string, now time.Time, days int) Endpoint {
	from, to := dateRange(now, days)
	p := pagedParams(500)
	p.Set("today", dateCompact(now))
	p.Set("srchApIcao", airport)
	p.Set("srchDateFr", from)
	p.Set("srchDateTo", to)
	return Endpoint{Path: "/sysUbikais/biz/wis/selectTaf.fois", Params: p, Referer: mainReferer}
}

// Sigmet lists SIGMET advisories for the past week.
func Sigmet(now time.Time) Endpoint {
	from, to := dateRange(now, 7)
	p := pagedParams(100)
	p.Set("srchDateFr", from)
	p.Set("srchDateTo", to)
	return Endpoint{Path: "/sysUbikais/biz/wis/selectSigmet.fois", Params: p, Referer: mainReferer}
}

// AirportData is the static aerodrome record for one airport.
func AirportData(airport string, now time.Time) Endpoint {
	return Endpoint{
		Path:    "/sysUbikais/biz/ais/airport/select.fois",
		Params:  url.Values{"today": {dateCompact(now)}, "srchAd": {airport}},
		Referer: mainReferer,
	}
}

// RunwayData lists runway records for one airport.
func RunwayData(airport string, now time.Time) Endpoint {
	return Endpoint{
		Path:    "/sysUbikais/biz/ais/runway/select.fois",
		Params:  url.Values{"today": {dateCompact(now)}, "srchAd": {airport}},
		Referer: mainReferer,
	}
}

// ApronData lists apron records for one airport.
func ApronData(airport string, now time.Time) Endpoint {
	return Endpoint{
		Path:    "/sysUbikais/biz/ais/apron/select.fois",
		Params:  url.Values{"today": {dateCompact(now)}, "srchAd": {airport}},
		Referer: mainReferer,
	}
}

// NavaidData lists all navigation aids.
func NavaidData(now time.Time) Endpoint {
	p := pagedParams(500)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/ais/navaid/select.fois", Params: p, Referer: mainReferer}
}

// ObstacleData lists all charted obstacles.
func ObstacleData(now time.Time) Endpoint {
	p := pagedParams(500)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/ais/obst/select.fois", Params: p, Referer: mainReferer}
}

// ATFMDailyPlan lists the air traffic flow management daily plan.
func ATFMDailyPlan(now time.Time) Endpoint {
	p := pagedParams(100)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/atfms/selectAdp.fois", Params: p, Referer: mainReferer}
}

// ATFMMessages lists air traffic flow management messages.
func ATFMMessages(now time.Time) Endpoint {
	p := pagedParams(100)
	p.Set("today", dateCompact(now))
	return Endpoint{Path: "/sysUbikais/biz/atfms/selectDfl.fois", Params: p, Referer: mainReferer}
}
