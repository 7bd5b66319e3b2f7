package common

// --------------------------------------------------------------------------
// Envelope Structures
// --------------------------------------------------------------------------

// RequestEnvelope is the unit sent to the vision controller.
// Parameters are opaque structured data, the engine only transports them
type RequestEnvelope struct {
	Command    string         `json:"command"`
	CallerID   string         `json:"callerid"`
	Parameters map[string]any `json:"parameters"`
}

// RemoteError is the error reported by the vision controller
type RemoteError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ResponseEnvelope is the reply of the vision controller.
// Exactly one of Error or Result is populated on the wire
type ResponseEnvelope struct {
	Error  *RemoteError `json:"error,omitempty"`
	Result any          `json:"result"`
}

// --------------------------------------------------------------------------
// Envelope Factory Functions
// --------------------------------------------------------------------------

// NewRequest creates a new request envelope, a nil parameter map is sent as {}
func NewRequest(command, callerID string, parameters map[string]any) RequestEnvelope {
	if parameters == nil {
		parameters = map[string]any{}
	}
	return RequestEnvelope{
		Command:    command,
		CallerID:   callerID,
		Parameters: parameters,
	}
}

// NewResultResponse creates a successful response
func NewResultResponse(result any) ResponseEnvelope {
	return ResponseEnvelope{Result: result}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, description string) ResponseEnvelope {
	return ResponseEnvelope{Error: &RemoteError{Code: code, Description: description}}
}

// --------------------------------------------------------------------------
// System State
// --------------------------------------------------------------------------

// SystemState is used by the vision controller to select the profile a vision task uses.
// Empty fields are not sent
type SystemState struct {
	SensorType            string `json:"sensorType,omitempty"`
	SensorName            string `json:"sensorName,omitempty"`
	SensorLinkName        string `json:"sensorLinkName,omitempty"`
	VisionTaskType        string `json:"visionTaskType,omitempty"`
	LocationName          string `json:"locationName,omitempty"`
	PartType              string `json:"partType,omitempty"`
	GraspSetName          string `json:"graspSetName,omitempty"`
	ObjectType            string `json:"objectType,omitempty"`
	ObjectMaterialType    string `json:"objectMaterialType,omitempty"`
	ScenarioID            string `json:"scenarioId,omitempty"`
	ApplicationType       string `json:"applicationType,omitempty"`
	DetectionTriggerType  string `json:"detectionTriggerType,omitempty"`
	DetectionState        string `json:"detectionState,omitempty"`
	SensorUsageType       string `json:"sensorUsageType,omitempty"`
	OrchestratorUsageType string `json:"orchestratorUsageType,omitempty"`
}

// ToMap converts the system state into a parameter value
func (s SystemState) ToMap() map[string]any {
	m := make(map[string]any)
	add := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}
	add("sensorType", s.SensorType)
	add("sensorName", s.SensorName)
	add("sensorLinkName", s.SensorLinkName)
	add("visionTaskType", s.VisionTaskType)
	add("locationName", s.LocationName)
	add("partType", s.PartType)
	add("graspSetName", s.GraspSetName)
	add("objectType", s.ObjectType)
	add("objectMaterialType", s.ObjectMaterialType)
	add("scenarioId", s.ScenarioID)
	add("applicationType", s.ApplicationType)
	add("detectionTriggerType", s.DetectionTriggerType)
	add("detectionState", s.DetectionState)
	add("sensorUsageType", s.SensorUsageType)
	add("orchestratorUsageType", s.OrchestratorUsageType)
	return m
}
