package runner

// Scenario is one fixed probe: an identifier plus the natural-language
// instruction handed to the model.
type Scenario struct {
	ID          string
	Instruction string
}

// Scenarios returns the fixed probe list. The set covers each tool once and
// ends with a deliberately out-of-catalogue CPU to watch how the model
// handles uncertainty.
func Scenarios() []Scenario {
	return []Scenario{
		{ID: "S1_simple_ecu", Instruction: "Create an ECU with Cortex-M4 and 2 CAN controllers."},
		{ID: "S2_protocols", Instruction: "The system should support both CAN and Ethernet communication."},
		{ID: "S3_memory", Instruction: "Add an ECU with Cortex-R5, 4MB Flash memory and 2 SPI controllers."},
		{ID: "S4_hwip", Instruction: "Attach an I2C block to ECU-1."},
		{ID: "S5_validate", Instruction: "Check if the configuration is valid."},
		{ID: "S6_ambiguous", Instruction: "Create an ECU with Cortex-M6 and 3 CAN controllers."},
	}
}
