package ds

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ShipRequest используется и для создания, и для обновления корабля.
type ShipRequest struct {
	Name       string  `json:"name" validate:"notblank"`
	LaunchDate Date    `json:"launchDate" validate:"required"`
	ShipType   string  `json:"shipType" validate:"notblank"`
	Tonnage    float64 `json:"tonnage" validate:"required,gt=0"`
}

type ShipResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	LaunchDate  Date    `json:"launchDate"`
	ShipType    string  `json:"shipType"`
	Tonnage     float64 `json:"tonnage"`
	ReportCount int     `json:"reportCount"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
}

type LocationReportRequest struct {
	ReportDate Date   `json:"reportDate" validate:"required"`
	Country    string `json:"country" validate:"notblank"`
	Port       string `json:"port" validate:"notblank"`
}

type LocationReportResponse struct {
	ID         uint   `json:"id"`
	ReportDate Date   `json:"reportDate"`
	Country    string `json:"country"`
	Port       string `json:"port"`
}

func (s *Ship) ToResponse(reportCount int) ShipResponse {
	return ShipResponse{
		ID:          s.ShipID,
		Name:        s.Name,
		LaunchDate:  s.LaunchDate,
		ShipType:    s.ShipType,
		Tonnage:     s.Tonnage,
		ReportCount: reportCount,
		PhotoURL:    s.PhotoURL,
	}
}

func (r *LocationReport) ToResponse() LocationReportResponse {
	return LocationReportResponse{
		ID:         r.ReportID,
		ReportDate: r.ReportDate,
		Country:    r.Country,
		Port:       r.Port,
	}
}
