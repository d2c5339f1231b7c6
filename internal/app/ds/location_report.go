package ds

// LocationReport — судно замечено в порту страны в указанную дату.
// Журнал append-only: отчёты не меняются и не удаляются.
type LocationReport struct {
	ReportID   uint   `gorm:"primaryKey;column:report_id" json:"id"`
	ShipID     uint   `gorm:"column:ship_id;not null;index" json:"-"`
	ReportDate Date   `gorm:"column:report_date;not null" json:"reportDate"`
	Country    string `gorm:"column:country;not null" json:"country"`
	Port       string `gorm:"column:port;not null" json:"port"`
}

func (LocationReport) TableName() string {
	return "location_reports"
}
