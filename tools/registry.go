package tools

var AddECUDefinition = ToolDefinition{
	Name:        "add_ecu",
	Description: "Add a single ECU to the configuration.",
	InputSchema: AddECUInputSchema,
	Example: ECU{
		ID:          "ECU-1",
		CPU:         "Cortex-M4",
		Controllers: []Controller{{Type: "CAN", Count: 2}},
	},
}

var AddProtocolDefinition = ToolDefinition{
	Name:        "add_protocol",
	Description: "Declare one or more communication protocols for the system.",
	InputSchema: AddProtocolInputSchema,
	Example:     AddProtocolInput{Protocol: []string{"CAN", "Ethernet"}},
}

var AddHwipBlockDefinition = ToolDefinition{
	Name:        "add_hwip_block",
	Description: "Attach a hardware IP block to an existing ECU.",
	InputSchema: AddHwipBlockInputSchema,
	Example:     AddHwipBlockInput{ECUID: "ECU-1", Type: "I2C", Count: 1},
}

var ValidateConfigurationDefinition = ToolDefinition{
	Name:        "validate_configuration",
	Description: "Check the current configuration object for consistency.",
	InputSchema: ValidateConfigurationInputSchema,
	Example:     ValidateConfigurationInput{Config: map[string]any{}},
}

var CreateConfigurationDefinition = ToolDefinition{
	Name:        "create_configuration",
	Description: "Create a complete configuration in one call.",
	InputSchema: CreateConfigurationInputSchema,
	Example: CreateConfigurationInput{
		ECUCount:  1,
		ECUs:      []ECU{{ID: "ECU-1", CPU: "Cortex-M4"}},
		Protocols: []string{"CAN"},
	},
}

var AddECUInputSchema = GenerateSchema[ECU]()
var AddProtocolInputSchema = GenerateSchema[AddProtocolInput]()
var AddHwipBlockInputSchema = GenerateSchema[AddHwipBlockInput]()
var ValidateConfigurationInputSchema = GenerateSchema[ValidateConfigurationInput]()
var CreateConfigurationInputSchema = GenerateSchema[CreateConfigurationInput]()

// Registry returns all tool definitions shown to the model, in the order
// they appear in the documentation block.
func Registry() []ToolDefinition {
	return []ToolDefinition{
		AddECUDefinition,
		AddProtocolDefinition,
		AddHwipBlockDefinition,
		ValidateConfigurationDefinition,
		CreateConfigurationDefinition,
	}
}
