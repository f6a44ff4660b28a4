package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	svc "vendorflow/internal/service"
)

func TestAbbreviate(t *testing.T) {
	cases := map[string]string{
		"Jane Doe Designs":  "JAN",
		"O'Brien & Co.":     "O'B",
		"":                  "",
		"Al":                "AL",
		"a-b.c+d":           "ABC",
		"(Studio) Nine":     "STU",
		"  x  ":             "X",
		"élan vital":        "ÉLA",
		"-.+() ":            "",
		"Maison-Margiela 2": "MAI",
	}
	for in, want := range cases {
		require.Equal(t, want, svc.Abbreviate(in), "input %q", in)
	}
}
