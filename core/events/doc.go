// Package events defines the typed notifications emitted while a
// conversation runs: transcript mutations, session state changes, user
// speech activity and assistant audio cues.
//
// Events carry plain values (entry IDs, roles, tokens) rather than
// orchestration types so consumers can observe a conversation without
// depending on the orchestrator itself.
package events
