// Package phone maps Philippine mobile number prefixes to the telco
// network that serves them. The storefront uses the mapping to route
// SMS notifications; the seed generator uses it to stamp customers
// with numbers that classify correctly.
package phone

import (
	"sort"
	"strings"
)

// Network identifies a Philippine mobile carrier.
type Network string

const (
	NetworkGlobe   Network = "Globe"
	NetworkSmart   Network = "Smart"
	NetworkTNT     Network = "TNT"
	NetworkTM      Network = "TM"
	NetworkDITO    Network = "DITO"
	NetworkSun     Network = "Sun"
	NetworkUnknown Network = "Unknown"
)

// prefixNetworks maps 4-digit mobile prefixes (leading "09") to carriers.
var prefixNetworks = map[string]Network{
	// Globe
	"0905": NetworkGlobe, "0906": NetworkGlobe, "0915": NetworkGlobe,
	"0916": NetworkGlobe, "0917": NetworkGlobe, "0926": NetworkGlobe,
	"0927": NetworkGlobe, "0935": NetworkGlobe, "0936": NetworkGlobe,
	"0945": NetworkGlobe, "0955": NetworkGlobe, "0956": NetworkGlobe,
	"0965": NetworkGlobe, "0966": NetworkGlobe, "0967": NetworkGlobe,
	"0975": NetworkGlobe, "0977": NetworkGlobe, "0995": NetworkGlobe,
	"0997": NetworkGlobe,
	// Smart
	"0908": NetworkSmart, "0918": NetworkSmart, "0919": NetworkSmart,
	"0920": NetworkSmart, "0921": NetworkSmart, "0928": NetworkSmart,
	"0929": NetworkSmart, "0939": NetworkSmart, "0947": NetworkSmart,
	"0949": NetworkSmart, "0951": NetworkSmart, "0961": NetworkSmart,
	"0998": NetworkSmart, "0999": NetworkSmart,
	// TNT
	"0907": NetworkTNT, "0909": NetworkTNT, "0910": NetworkTNT,
	"0912": NetworkTNT, "0930": NetworkTNT, "0938": NetworkTNT,
	"0946": NetworkTNT, "0948": NetworkTNT, "0950": NetworkTNT,
	// TM
	"0953": NetworkTM, "0954": NetworkTM, "0963": NetworkTM,
	"0976": NetworkTM, "0978": NetworkTM, "0979": NetworkTM,
	// DITO
	"0895": NetworkDITO, "0896": NetworkDITO, "0897": NetworkDITO,
	"0898": NetworkDITO, "0991": NetworkDITO, "0992": NetworkDITO,
	"0993": NetworkDITO, "0994": NetworkDITO,
	// Sun
	"0922": NetworkSun, "0923": NetworkSun, "0924": NetworkSun,
	"0925": NetworkSun, "0931": NetworkSun, "0932": NetworkSun,
	"0933": NetworkSun, "0934": NetworkSun, "0940": NetworkSun,
	"0941": NetworkSun, "0942": NetworkSun, "0943": NetworkSun,
}

// Normalize rewrites a PH mobile number to local 09XXXXXXXXX form.
// Accepted inputs: "+639XXXXXXXXX", "639XXXXXXXXX", "09XXXXXXXXX",
// with optional spaces or hyphens. Anything else is returned trimmed.
func Normalize(msisdn string) string {
	s := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(msisdn))
	switch {
	case strings.HasPrefix(s, "+63"):
		return "0" + s[3:]
	case strings.HasPrefix(s, "63") && len(s) == 12:
		return "0" + s[2:]
	default:
		return s
	}
}

// NetworkOf reports the carrier serving the given mobile number, or
// NetworkUnknown when the prefix is not recognized.
func NetworkOf(msisdn string) Network {
	s := Normalize(msisdn)
	if len(s) < 4 {
		return NetworkUnknown
	}
	if n, ok := prefixNetworks[s[:4]]; ok {
		return n
	}
	return NetworkUnknown
}

// Prefixes returns all known mobile prefixes in ascending order.
func Prefixes() []string {
	out := make([]string, 0, len(prefixNetworks))
	for p := range prefixNetworks {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
