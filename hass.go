package hadatetime

// Fixed path template of the Home Assistant state-query endpoint
const statesPath = "/api/states/"

// Entity object returned by the states endpoint; everything besides State
// is decoded and ignored
type SensorState struct {
	EntityID    string         `json:"entity_id"`
	State       *string        `json:"state"` // nil when the field is absent
	Attributes  map[string]any `json:"attributes"`
	LastChanged string         `json:"last_changed"`
	LastUpdated string         `json:"last_updated"`
}
