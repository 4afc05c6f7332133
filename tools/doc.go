// Package tools declares the hardware-configuration tool surface shown to the model.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, doc example.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Config tools: add_ecu, add_protocol, add_hwip_block,
//     validate_configuration, create_configuration.
//   - DecodeInput[T](): coerce tool-call parameters into typed records.
//   - Invariant: tools are documentation and validation contracts only; the
//     harness never executes them.
package tools
