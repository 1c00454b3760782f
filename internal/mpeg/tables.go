package mpeg

// sampleRates maps frequency index -> MPEG version id -> Hz.
var sampleRates = map[byte]map[byte]int{
	0: {VersionMPEG25: 11025, VersionMPEG2: 22050, VersionMPEG1: 44100},
	1: {VersionMPEG25: 12000, VersionMPEG2: 24000, VersionMPEG1: 48000},
	2: {VersionMPEG25: 8000, VersionMPEG2: 16000, VersionMPEG1: 32000},
}

// bitrates maps bitrate index -> MPEG version id -> layer -> kbit/s.
// Index 0 is the free-format escape and 15 is forbidden; both are
// absent so lookups surface ReservedValueError.
var bitrates = map[byte]map[byte]map[byte]int{
	1: {
		VersionMPEG1: {LayerI: 32, LayerII: 32, LayerIII: 32},
		VersionMPEG2: {LayerI: 32, LayerII: 32, LayerIII: 8},
	},
	2: {
		VersionMPEG1: {LayerI: 64, LayerII: 48, LayerIII: 40},
		VersionMPEG2: {LayerI: 64, LayerII: 48, LayerIII: 16},
	},
	3: {
		VersionMPEG1: {LayerI: 96, LayerII: 56, LayerIII: 48},
		VersionMPEG2: {LayerI: 96, LayerII: 56, LayerIII: 24},
	},
	4: {
		VersionMPEG1: {LayerI: 128, LayerII: 64, LayerIII: 56},
		VersionMPEG2: {LayerI: 128, LayerII: 64, LayerIII: 32},
	},
	5: {
		VersionMPEG1: {LayerI: 160, LayerII: 80, LayerIII: 64},
		VersionMPEG2: {LayerI: 160, LayerII: 80, LayerIII: 64},
	},
	6: {
		VersionMPEG1: {LayerI: 192, LayerII: 96, LayerIII: 80},
		VersionMPEG2: {LayerI: 192, LayerII: 96, LayerIII: 80},
	},
	7: {
		VersionMPEG1: {LayerI: 224, LayerII: 112, LayerIII: 96},
		VersionMPEG2: {LayerI: 224, LayerII: 112, LayerIII: 56},
	},
	8: {
		VersionMPEG1: {LayerI: 256, LayerII: 128, LayerIII: 112},
		VersionMPEG2: {LayerI: 256, LayerII: 128, LayerIII: 64},
	},
	9: {
		VersionMPEG1: {LayerI: 288, LayerII: 160, LayerIII: 128},
		VersionMPEG2: {LayerI: 288, LayerII: 160, LayerIII: 128},
	},
	10: {
		VersionMPEG1: {LayerI: 320, LayerII: 192, LayerIII: 160},
		VersionMPEG2: {LayerI: 320, LayerII: 192, LayerIII: 160},
	},
	11: {
		VersionMPEG1: {LayerI: 352, LayerII: 224, LayerIII: 192},
		VersionMPEG2: {LayerI: 352, LayerII: 224, LayerIII: 112},
	},
	12: {
		VersionMPEG1: {LayerI: 384, LayerII: 256, LayerIII: 224},
		VersionMPEG2: {LayerI: 384, LayerII: 256, LayerIII: 128},
	},
	13: {
		VersionMPEG1: {LayerI: 416, LayerII: 320, LayerIII: 256},
		VersionMPEG2: {LayerI: 416, LayerII: 320, LayerIII: 256},
	},
	14: {
		VersionMPEG1: {LayerI: 448, LayerII: 384, LayerIII: 320},
		VersionMPEG2: {LayerI: 448, LayerII: 384, LayerIII: 320},
	},
}
