package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PREFIXES defines the valid mobile prefixes for supported operators
var PREFIXES = struct {
	SAFARICOM []int
}{
	SAFARICOM: []int{
		701, 702, 703, 704, 705, 706, 707, 708, 709,
		710, 711, 712, 713, 714, 715, 716, 717, 718, 719,
		720, 721, 722, 723, 724, 725, 726, 727, 728, 729,
		740, 741, 742, 743, 745, 746, 748,
		757, 758, 759,
		768, 769,
		790, 791, 792, 793, 794, 795, 796, 797, 798, 799,
	},
}

// ValidateMSISDN validates a phone number format and checks if it's a
// Safaricom number. Returns the number formatted with the 254 country code.
func ValidateMSISDN(msisdn string) (bool, string, error) {
	// Clean the input by removing separators
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code if present (254 for Kenya)
	if strings.HasPrefix(stripped, "254") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	prefixesStr := make([]string, len(PREFIXES.SAFARICOM))
	for i, prefix := range PREFIXES.SAFARICOM {
		prefixesStr[i] = fmt.Sprintf("%d", prefix)
	}

	pattern := fmt.Sprintf("^(%s)\\d{6}$", strings.Join(prefixesStr, "|"))
	isValid := regexp.MustCompile(pattern).MatchString(stripped)

	if !isValid {
		return false, "", fmt.Errorf("invalid MSISDN format or not a Safaricom number")
	}

	// Format with country code
	formatted := "254" + stripped

	return true, formatted, nil
}
