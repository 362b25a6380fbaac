// Package encoding selects the audio container used for a recording.
package encoding

import "voicereport/internal/domain"

var (
	WebMOpus = domain.Encoding{MIMEType: "audio/webm;codecs=opus", Extension: "webm"}
	WAV      = domain.Encoding{MIMEType: "audio/wav", Extension: "wav"}
	Ogg      = domain.Encoding{MIMEType: "audio/ogg", Extension: "ogg"}
)

// Preference is the fixed negotiation order. The last entry is used when nothing
// earlier is reported as supported, without asking the host about it.
var Preference = []domain.Encoding{WebMOpus, WAV, Ogg}

// Negotiate returns the first preferred encoding the host supports.
// A nil supported func behaves as if nothing is supported.
func Negotiate(supported func(mimeType string) bool) domain.Encoding {
	last := len(Preference) - 1
	for _, enc := range Preference[:last] {
		if supported != nil && supported(enc.MIMEType) {
			return enc
		}
	}
	return Preference[last]
}

// Lookup finds a preferred encoding by MIME type.
func Lookup(mimeType string) (domain.Encoding, bool) {
	for _, enc := range Preference {
		if enc.MIMEType == mimeType {
			return enc, true
		}
	}
	return domain.Encoding{}, false
}
