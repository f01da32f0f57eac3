package domain

// Client represents a property owner served by the concierge.
// Invoices and missions reference a client by ClientID; deleting a client
// leaves those records in place.
type Client struct {
	ClientID        string `json:"clientID"`
	OwnerName       string `json:"ownerName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	WifiName        string `json:"wifiName"`
	WifiPassword    string `json:"wifiPassword"`
	AlarmCode       string `json:"alarmCode"`
	KeyBoxCode      string `json:"keyBoxCode"`
	KeyCount        int    `json:"keyCount"`
	WaterShutoff    string `json:"waterShutoff"`    // location of the water shutoff valve
	ElectricShutoff string `json:"electricShutoff"` // location of the electrical panel
	GarbageSchedule string `json:"garbageSchedule"`
	PoolSchedule    string `json:"poolSchedule"`
	GardenSchedule  string `json:"gardenSchedule"`
	ContractType    string `json:"contractType"`
	Notes           string `json:"notes"`
	AuditFields
}
