package tools

// Controller describes a bus controller attached to an ECU.
type Controller struct {
	Type  string `json:"type" jsonschema_description:"Controller type, e.g. CAN."`
	Count int    `json:"count" jsonschema_description:"Number of controllers of this type."`
}

// Memory describes a memory bank attached to an ECU.
type Memory struct {
	Type   string `json:"type" jsonschema_description:"Memory type, e.g. Flash, SRAM."`
	SizeMB int    `json:"size_mb" jsonschema_description:"Bank size in megabytes."`
}

// ECU is the payload shape of an add_ecu call and the element shape of
// create_configuration's ecus list. Only id is required; every other field
// defaults to its zero value when the model omits it.
type ECU struct {
	ID          string       `json:"id" jsonschema_description:"Unique ECU identifier, e.g. ECU-1."`
	CPU         string       `json:"cpu,omitempty" jsonschema_description:"CPU core, e.g. Cortex-M4."`
	Memories    []Memory     `json:"memories,omitempty" jsonschema_description:"Attached memory banks."`
	Controllers []Controller `json:"controllers,omitempty" jsonschema_description:"Attached bus controllers."`
	Notes       string       `json:"notes,omitempty" jsonschema_description:"Free-form notes."`
	Uncertainty []string     `json:"uncertainty,omitempty" jsonschema_description:"Names of fields the model was unsure about."`
}

// AddProtocolInput is the payload shape of an add_protocol call.
type AddProtocolInput struct {
	// Protocol accepts a single name or a list of names; the doc block
	// states the accepted forms since no single JSON type covers both.
	Protocol any `json:"protocol" jsonschema_description:"string or list of strings; allowed values: CAN, Ethernet, LIN, FlexRay"`
}

// AddHwipBlockInput is the payload shape of an add_hwip_block call.
type AddHwipBlockInput struct {
	ECUID string `json:"ecu_id" jsonschema_description:"Identifier of the ECU to attach the block to."`
	Type  string `json:"type" jsonschema_description:"Block type, e.g. I2C, SPI, UART."`
	Count int    `json:"count" jsonschema_description:"Number of blocks to attach."`
}

// ValidateConfigurationInput is the payload shape of a validate_configuration call.
type ValidateConfigurationInput struct {
	Config map[string]any `json:"config" jsonschema_description:"Current configuration object."`
}

// CreateConfigurationInput is the payload shape of a create_configuration call.
type CreateConfigurationInput struct {
	ECUCount     int      `json:"ecu_count,omitempty" jsonschema_description:"Expected number of ECUs."`
	ECUs         []ECU    `json:"ecus" jsonschema_description:"ECUs making up the configuration."`
	Protocols    []string `json:"protocols" jsonschema_description:"Communication protocols in use."`
	PowerBudgetW float64  `json:"power_budget_w,omitempty" jsonschema_description:"Total power budget in watts."`
	Notes        string   `json:"notes,omitempty" jsonschema_description:"Free-form notes."`
}
