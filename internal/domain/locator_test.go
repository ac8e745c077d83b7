package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePNR_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		pnr := GeneratePNR()
		assert.Len(t, pnr, 8)
		assert.True(t, ValidPNR(pnr), "generated PNR %q should be valid", pnr)
	}
}

func TestGenerateMemberID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateMemberID()
		assert.Len(t, id, 11)
		assert.True(t, ValidMemberID(id), "generated member id %q should be valid", id)
	}
}

func TestValidPNR(t *testing.T) {
	testCases := []struct {
		pnr   string
		valid bool
	}{
		{"IBAB12CD", true},
		{"ibab12cd", true},
		{"IBXYZ123", true},
		{"IB12345", false},
		{"IB1234567", false},
		{"XXAB12CD", false},
		{"", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.valid, ValidPNR(tc.pnr), "pnr %q", tc.pnr)
	}
}
