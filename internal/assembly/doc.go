// Package assembly runs one audiobook conversion from input folder to
// finished .m4b.
//
// The Orchestrator walks a fixed sequence of states:
//
//	Init -> OutputPrepared -> InputValidated -> SegmentsDiscovered ->
//	DescriptorReady -> MetadataAssembled -> Encoding -> Done
//
// Any state may end the run early. The first error wins and is reported in
// the Outcome; nothing is retried. Banners and the progress bar go to the
// configured output writer, diagnostics go to the logger.
package assembly
