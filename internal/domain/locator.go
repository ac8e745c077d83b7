package domain

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const locatorAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	pnrPattern      = regexp.MustCompile(`^IB[A-Z0-9]{6}$`)
	memberIDPattern = regexp.MustCompile(`^IB[A-Z0-9]{9}$`)
)

func randomLocator(prefix string, n int) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for i := 0; i < n; i++ {
		sb.WriteByte(locatorAlphabet[rand.IntN(len(locatorAlphabet))])
	}
	return sb.String()
}

// GeneratePNR returns a booking locator: "IB" + 6 uppercase alphanumerics.
func GeneratePNR() string {
	return randomLocator("IB", 6)
}

// GenerateMemberID returns a loyalty member id: "IB" + 9 uppercase alphanumerics.
func GenerateMemberID() string {
	return randomLocator("IB", 9)
}

func ValidPNR(pnr string) bool {
	return pnrPattern.MatchString(strings.ToUpper(pnr))
}

func ValidMemberID(id string) bool {
	return memberIDPattern.MatchString(strings.ToUpper(id))
}
