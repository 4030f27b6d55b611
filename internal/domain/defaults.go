package domain

// DefaultFederalTariffTable returns a hardcoded federal tariff table, used
// when no embedded config fixture can be loaded. Mirrors the teacher's
// GetDefaultStochasticConfig fallback-literal pattern.
func DefaultFederalTariffTable() FederalTable {
	return NewFederalTable([]TariffRow{
		{From: 0, Base: 0, PerHundred: 0},
		{From: 14500, Base: 0, PerHundred: 0.77},
		{From: 31600, Base: 132, PerHundred: 0.88},
		{From: 41400, Base: 218, PerHundred: 2.64},
		{From: 55200, Base: 582, PerHundred: 2.97},
		{From: 72500, Base: 1096, PerHundred: 5.94},
		{From: 78100, Base: 1429, PerHundred: 6.60},
		{From: 103600, Base: 3112, PerHundred: 8.80},
		{From: 134600, Base: 5840, PerHundred: 11.00},
		{From: 176000, Base: 10394, PerHundred: 13.20},
		{From: 755200, Base: 86848, PerHundred: 11.50},
	}, FederalChildDeduction{AmountPerChild: 6700})
}

// DefaultTariffTable returns a flat single-bracket tariff table for an
// unrecognized canton, used as a last-resort fallback rather than failing
// the whole simulation over missing config.
func DefaultTariffTable(canton string) TariffTable {
	return NewTariffTable(canton, []TariffRow{{From: 0, Base: 0, PerHundred: 5}})
}

// DefaultBracketTable returns a flat legacy bracket table, kept for
// scenarios built against the pre-tariff tax profile (spec.md §4.6, legacy
// path).
func DefaultBracketTable() BracketTable {
	return BracketTable{Rows: []BracketRow{
		{From: 0, To: 30000, Rate: 0.02},
		{From: 30000, To: 100000, Rate: 0.06},
		{From: 100000, To: 0, Rate: 0.10},
	}}
}
