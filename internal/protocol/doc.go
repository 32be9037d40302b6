// Package protocol owns the Satori gateway wire contract.
//
// Ownership boundary:
// - payload envelope and opcode dispatch
// - entity validation and coercion primitives
// - timestamp and content normalization
package protocol
