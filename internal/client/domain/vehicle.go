package domain

// Vehicle is the summary row returned from GET /vehicle/.
type Vehicle struct {
	UUID                 string `json:"uuid"`
	VehicleType          string `json:"vehicleType"`
	Model                string `json:"model"`
	ProductionYear       int    `json:"productionYear"`
	Registration         string `json:"registration"`
	LastRegistrationDate string `json:"lastRegistrationDate,omitempty"`
	ValidUntil           string `json:"validUntil,omitempty"`
}

// VehicleDetails is the full record returned from GET /vehicle/{uuid}.
type VehicleDetails struct {
	Vehicle

	ChassisNumber    string `json:"chassisNumber,omitempty"`
	EnginePower      int    `json:"enginePower,omitempty"`
	EngineVolume     int    `json:"engineVolume,omitempty"`
	FuelType         string `json:"fuelType,omitempty"`
	Color            string `json:"color,omitempty"`
	OwnerUUID        string `json:"ownerUuid,omitempty"`
	FirstRegistered  string `json:"firstRegistered,omitempty"`
	TechnicalValidTo string `json:"technicalValidTo,omitempty"`
}
