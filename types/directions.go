package types

// DirectionsReq binds the single-segment routing query. Coordinates are
// pointers so a missing parameter is distinguishable from 0.
type DirectionsReq struct {
	StartLat    *float64 `form:"start_lat"`
	StartLng    *float64 `form:"start_lng"`
	EndLat      *float64 `form:"end_lat"`
	EndLng      *float64 `form:"end_lng"`
	Mode        string   `form:"mode"`
	PathType    int      `form:"path_type"`
	RouteOption string   `form:"route_option"`
	CarType     int      `form:"car_type"`
	FuelType    string   `form:"fuel_type"`
	Waypoints   string   `form:"waypoints"`
}

type DirectionsResp struct {
	Mode    string         `json:"mode"`
	Transit *TransitResult `json:"transit,omitempty"`
	Driving *DrivingRoute  `json:"driving,omitempty"`
}

// DrivingRoute is the flattened form of one Naver Directions strategy result.
type DrivingRoute struct {
	Summary  DrivingSummary   `json:"summary"`
	Path     [][]float64      `json:"path"`
	Sections []DrivingSection `json:"sections"`
}

type DrivingSummary struct {
	Distance     int    `json:"distance"`
	Duration     int    `json:"duration"`
	DurationText string `json:"durationText"`
	DistanceText string `json:"distanceText"`
	TollFare     int    `json:"tollFare"`
	TaxiFare     int    `json:"taxiFare"`
	FuelPrice    int    `json:"fuelPrice"`
}

type DrivingSection struct {
	Name       string `json:"name"`
	Distance   int    `json:"distance"`
	Congestion int    `json:"congestion"`
	Speed      int    `json:"speed"`
}

// TransitResult carries the provider's ranked itinerary paths.
type TransitResult struct {
	Paths []TransitPath `json:"paths"`
}

type TransitPath struct {
	PathType      int          `json:"pathType"`
	TotalTime     int          `json:"totalTime"`
	TotalDistance int          `json:"totalDistance"`
	Payment       int          `json:"payment"`
	TransferCount int          `json:"transferCount"`
	Legs          []TransitLeg `json:"legs"`
}

// TransitLeg is one homogeneous-mode slice of a transit path. Walking legs
// have no provider coordinates; they are inferred from adjacent legs and stay
// nil when inference is impossible.
type TransitLeg struct {
	TrafficType  int         `json:"trafficType"`
	Mode         string      `json:"mode"`
	SectionTime  int         `json:"sectionTime"`
	Distance     int         `json:"distance"`
	StationCount int         `json:"stationCount,omitempty"`
	StartName    string      `json:"startName,omitempty"`
	EndName      string      `json:"endName,omitempty"`
	StartLat     *float64    `json:"startLat"`
	StartLng     *float64    `json:"startLng"`
	EndLat       *float64    `json:"endLat"`
	EndLng       *float64    `json:"endLng"`
	Lane         *LaneInfo   `json:"lane,omitempty"`
	Geometry     [][]float64 `json:"geometry,omitempty"`
}

// LaneInfo names the transit line serving a leg.
type LaneInfo struct {
	Name       string `json:"name"`
	BusNo      string `json:"busNo,omitempty"`
	BusID      int    `json:"busId,omitempty"`
	SubwayCode int    `json:"subwayCode,omitempty"`
}

// CourseSegment is one directed hop between consecutive course stops. A
// failed adapter call keeps its Error in-band instead of aborting the trip.
type CourseSegment struct {
	Index    int            `json:"index"`
	FromName string         `json:"fromName"`
	ToName   string         `json:"toName"`
	FromLat  float64        `json:"fromLat"`
	FromLng  float64        `json:"fromLng"`
	ToLat    float64        `json:"toLat"`
	ToLng    float64        `json:"toLng"`
	Error    string         `json:"error,omitempty"`
	Transit  *TransitResult `json:"transit,omitempty"`
	Driving  *DrivingRoute  `json:"driving,omitempty"`
}

// TripSummary totals are summed over non-errored segments only. Fare fields
// apply to transit, toll/fuel fields to driving.
type TripSummary struct {
	TotalTime         int    `json:"totalTime"`
	TotalTimeText     string `json:"totalTimeText"`
	TotalDistance     int    `json:"totalDistance"`
	TotalDistanceText string `json:"totalDistanceText"`
	TotalFare         int    `json:"totalFare,omitempty"`
	TotalFareText     string `json:"totalFareText,omitempty"`
	TotalTollFare     int    `json:"totalTollFare,omitempty"`
	TotalFuelPrice    int    `json:"totalFuelPrice,omitempty"`
}

type CourseDirectionsResp struct {
	CourseID      int64           `json:"courseId"`
	CourseName    string          `json:"courseName"`
	Mode          string          `json:"mode"`
	TotalSegments int             `json:"totalSegments"`
	Segments      []CourseSegment `json:"segments"`
	Summary       TripSummary     `json:"summary"`
}
