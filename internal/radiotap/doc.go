// Package radiotap decodes IEEE 802.11 RadioTap headers.
//
// Ownership boundary:
// - fixed 8-byte header and payload split
// - presence bitmask walk over the known field table
// - per-field byte accounting and decode
//
// Capture files, the 802.11 frame that follows the header, and display
// formatting belong to callers. Decoding is a pure function of its input
// slice, so independent headers may be decoded concurrently.
package radiotap
