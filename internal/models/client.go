package models

// Client is the stored form of a client record.
type Client struct {
	ClientID        string `json:"-"`
	OwnerName       string `json:"ownerName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	WifiName        string `json:"wifiName"`
	WifiPassword    string `json:"wifiPassword"`
	AlarmCode       string `json:"alarmCode"`
	KeyBoxCode      string `json:"keyBoxCode"`
	KeyCount        int    `json:"keyCount"`
	WaterShutoff    string `json:"waterShutoff"`
	ElectricShutoff string `json:"electricShutoff"`
	GarbageSchedule string `json:"garbageSchedule"`
	PoolSchedule    string `json:"poolSchedule"`
	GardenSchedule  string `json:"gardenSchedule"`
	ContractType    string `json:"contractType"`
	Notes           string `json:"notes"`
	AuditFields
}

// Mission is the stored form of a mission. Date is kept as YYYY-MM-DD so it sorts as text.
type Mission struct {
	MissionID   string `json:"-"`
	ClientID    string `json:"clientID"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Description string `json:"description"`
	AuditFields
}
