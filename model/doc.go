// Package model defines the provider-agnostic abstraction for the text
// generator consumed by the mind-map session.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Carry the conversation transcript as plain role-tagged messages
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the session layer remains decoupled from vendor SDKs. Generation
// is a single blocking call per request: the session serializes commands and
// has no streaming or cancellation contract at this layer.
package model
