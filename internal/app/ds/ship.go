package ds

// Ship — отслеживаемое судно
type Ship struct {
	ShipID     uint    `gorm:"primaryKey;column:ship_id" json:"id"`
	Name       string  `gorm:"column:name;not null" json:"name"`
	LaunchDate Date    `gorm:"column:launch_date;not null" json:"launchDate"`
	ShipType   string  `gorm:"column:ship_type;not null" json:"shipType"`
	Tonnage    float64 `gorm:"column:tonnage;type:numeric(12,2);not null" json:"tonnage"`
	PhotoURL   string  `gorm:"column:photo_url" json:"photoUrl,omitempty"`

	// Корабль владеет своими отчётами: удаление корабля каскадно удаляет отчёты
	LocationReports []LocationReport `gorm:"foreignKey:ShipID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Ship) TableName() string {
	return "ships"
}
