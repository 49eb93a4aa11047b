// Package writers turns analysis and decode results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, pretty blocks, JSON/JSONL/YAML/MessagePack/FASTA).
//   - The core codec stays domain-only; apps only feed channels.
//   - Structured formats go through pkg/api (v1) for a stable wire format.
package writers
