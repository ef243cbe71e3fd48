// Package services defines shared utilities consumed by the assembly pipeline
// and the external tool integrations beneath it.
//
// Key responsibilities:
//   - Context helpers that stamp the run identifier and pipeline state onto a
//     context for structured logging.
//   - Sentinel error markers plus the Wrap helper so every failure collapses
//     to one classified, human-readable message at the CLI boundary.
//
// Subpackages wrap external tools (ffmpeg) behind small interfaces so the
// orchestrator can be exercised without the real binaries.
package services
