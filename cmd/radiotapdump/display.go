package main

import (
	"github.com/danmuck/radiotap/internal/capture"
	"github.com/rs/zerolog"
)

// headerEvent adds the present fields of a decoded header to e.
func headerEvent(e *zerolog.Event, res capture.Result) *zerolog.Event {
	h := res.Header
	p, f := h.Present, h.Fields

	e = e.Int("packet", res.Index).
		Time("captured", res.Info.Timestamp).
		Uint8("version", h.Revision).
		Uint16("length", h.Length)

	if p.TSFT() {
		e = e.Int64("tsft_us", f.TSFT)
	}
	if p.Flags() {
		e = e.Uint8("flags", f.Flags)
	}
	if p.Rate() {
		e = e.Uint32("rate_kbps", f.Rate)
	}
	if p.Channel() {
		ch := f.Channel
		e = e.Dict("channel", zerolog.Dict().
			Int("number", ch.Number).
			Uint16("frequency_mhz", ch.Frequency).
			Bool("turbo", ch.Flags.Turbo()).
			Bool("cck", ch.Flags.CCK()).
			Bool("ofdm", ch.Flags.OFDM()).
			Bool("spectrum_2ghz", ch.Flags.Spectrum2GHz()).
			Bool("spectrum_5ghz", ch.Flags.Spectrum5GHz()).
			Bool("passive_only", ch.Flags.PassiveOnly()).
			Bool("dynamic_cck_ofdm", ch.Flags.DynamicCCKOFDM()).
			Bool("gfsk", ch.Flags.GFSK()))
	}
	if p.FHSS() {
		e = e.Uint8("fhss_hop_set", f.FHSS)
	}
	if p.DBMAntennaSignal() {
		e = e.Int8("antenna_signal_dbm", f.DBMAntennaSignal)
	}
	if p.DBMAntennaNoise() {
		e = e.Int8("antenna_noise_dbm", f.DBMAntennaNoise)
	}
	if p.LockQuality() {
		e = e.Uint16("lock_quality", f.LockQuality)
	}
	if p.TxAttenuation() {
		e = e.Uint16("tx_attenuation", f.TxAttenuation)
	}
	if p.DBTxAttenuation() {
		e = e.Uint16("tx_attenuation_db", f.DBTxAttenuation)
	}
	if p.DBMTxPower() {
		e = e.Int8("tx_power_dbm", f.DBMTxPower)
	}
	if p.Antenna() {
		e = e.Uint8("antenna", f.Antenna)
	}
	if p.DBAntennaSignal() {
		e = e.Uint8("antenna_signal_db", f.DBAntennaSignal)
	}
	if p.DBAntennaNoise() {
		e = e.Uint8("antenna_noise_db", f.DBAntennaNoise)
	}
	if p.RxFlags() {
		e = e.Bool("plcp_crc_error", f.PLCPCRCError)
	}
	if p.MCS() {
		e = e.Uint8("mcs_rate", f.MCS.Rate)
	}
	if p.AMPDUStatus() {
		e = e.Hex("ampdu_status", f.AMPDUStatus[:])
	}
	if p.VHT() {
		e = e.Hex("vht", f.VHT[:])
	}
	return e
}
