// SPDX-License-Identifier: GPL-3.0-or-later

package annotation

var restrictionSymbols = map[int]string{
	1: "RESTRICTION_CATEGORY_DIAGNOSTIC",
	2: "RESTRICTION_CATEGORY_SYSTEM_INTELLIGENCE",
	3: "RESTRICTION_CATEGORY_AUTHENTICATION",
	4: "RESTRICTION_CATEGORY_FRAUD_AND_ABUSE",
}

// RestrictionSymbol maps a RESTRICTION_CATEGORY value to its symbol.
// Unknown values map to "" and false.
func RestrictionSymbol(v int) (string, bool) {
	s, ok := restrictionSymbols[v]
	return s, ok
}
