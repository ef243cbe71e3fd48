// Package ffmpeg drives the ffmpeg binary to concatenate segments into a
// single chapterized audiobook.
//
// Encode writes a concat demuxer list and an FFMETADATA1 document into a
// per-run work directory, runs ffmpeg with "-progress pipe:1", and reports
// fractional progress to an observer while the process runs. The encode is
// a one-shot operation; failures are returned, never retried.
package ffmpeg
