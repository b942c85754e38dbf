// Package capture feeds RadioTap headers from pcap and pcapng files to the
// radiotap decoder.
//
// Ownership boundary:
// - capture file format detection and record iteration
// - per-packet decode scheduling and ordered delivery
// - batch statistics and decode metrics
package capture
