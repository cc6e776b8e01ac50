// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the solver
// engines (defined in internal/solver) to fulfill application features.
//
// The service package implements the application layer: it coordinates the
// flow of data between the delivery mechanism (the HTTP API) and the domain
// layer, abstracting away infrastructure details such as image decoding and
// engine selection.
//
// Key components:
//
// 1. Service Interfaces:
//   - Define application-specific operations available to the delivery mechanisms
//   - SolveService covers the problem-solving use case end to end
//
// 2. Use Case Implementations:
//   - Normalize raw request input (text, base64 image data) into domain problems
//   - Delegate to the configured solver engine and record per-engine metrics
//
// 3. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include the solver engine and cross-cutting concerns
//
// 4. Error Handling:
//   - Surface solver sentinel errors unchanged so the API layer can map them
//   - Provide meaningful error context for API responses
//
// The service layer depends on domain entities and the solver.Engine
// interface, but never on a specific engine implementation.
package service
