// Package elements keeps read-only reference data about chemical elements:
// standard atomic weights and the most stable isotopes of elements that
// have no standard atomic weight.
//
// Standard atomic weights follow the NIST "Atomic Weights and Isotopic
// Compositions" tables. When a weight is published as an interval, the
// middle of the interval is used.
package elements

import (
	"strconv"
	"strings"
)

// Element describes one chemical element.
type Element struct {
	// Number is the atomic number.
	Number int
	// Symbol is the chemical symbol, e.g. "Al".
	Symbol string
	// Weight is the standard atomic weight. Zero for elements without
	// a standard atomic weight.
	Weight float64
	// StableIsotope is the mass number of the most stable isotope for
	// elements without a standard atomic weight.
	StableIsotope int
	// IsotopeMass is the relative atomic mass of StableIsotope.
	IsotopeMass float64
}

// Mass returns the standard mass of the element. For elements without
// a standard atomic weight it is the mass of the most stable isotope.
func (e Element) Mass() float64 {
	if e.Weight > 0 {
		return e.Weight
	}
	return e.IsotopeMass
}

var (
	bySymbol = func() map[string]Element {
		res := make(map[string]Element, len(table))
		for _, v := range table {
			res[v.Symbol] = v
		}
		return res
	}()

	// systematic (temporary) names of elements that got permanent symbols
	renames = map[string]string{
		"Unq": "Rf", "Unp": "Db", "Unh": "Sg", "Uns": "Bh", "Uno": "Hs",
		"Une": "Mt", "Uun": "Ds", "Uuu": "Rg", "Uub": "Cn", "Uut": "Nh",
		"Uuq": "Fl", "Uup": "Mc", "Uuh": "Lv", "Uus": "Ts", "Uuo": "Og",
	}

	// hydrogen isotopes have their own symbols
	hydrogen = map[string]float64{
		"D":   2.01410177812,
		"T":   3.0160492779,
		"H-1": 1.00782503223,
		"H-2": 2.01410177812,
		"H-3": 3.0160492779,
	}
)

// Lookup finds an element by its symbol. Systematic symbols like "Uuo"
// are resolved to their permanent symbols.
func Lookup(symbol string) (Element, bool) {
	symbol = strings.TrimSpace(symbol)
	if s, ok := renames[symbol]; ok {
		symbol = s
	}
	res, ok := bySymbol[symbol]
	return res, ok
}

// IsElement returns true if the tag is a recognized element symbol,
// including hydrogen isotope symbols D and T.
func IsElement(tag string) bool {
	if _, ok := hydrogen[tag]; ok {
		return true
	}
	_, ok := Lookup(tag)
	return ok
}

// Mass returns the standard mass for an element tag. A tag is an element
// symbol ("Fe"), a hydrogen isotope ("D", "H-2"), or an element with the
// mass number of its most stable isotope ("Pu-244").
func Mass(tag string) (float64, error) {
	tag = strings.TrimSpace(tag)
	if m, ok := hydrogen[tag]; ok {
		return m, nil
	}

	if symbol, num, found := strings.Cut(tag, "-"); found {
		massNumber, err := strconv.Atoi(num)
		if err != nil {
			return 0, UnknownElementError(tag)
		}
		el, ok := Lookup(symbol)
		if !ok || el.StableIsotope != massNumber {
			return 0, UnknownElementError(tag)
		}
		return el.IsotopeMass, nil
	}

	el, ok := Lookup(tag)
	if !ok {
		return 0, UnknownElementError(tag)
	}
	return el.Mass(), nil
}

var table = []Element{
	{Number: 1, Symbol: "H", Weight: 1.007975},
	{Number: 2, Symbol: "He", Weight: 4.002602},
	{Number: 3, Symbol: "Li", Weight: 6.9675},
	{Number: 4, Symbol: "Be", Weight: 9.0121831},
	{Number: 5, Symbol: "B", Weight: 10.8135},
	{Number: 6, Symbol: "C", Weight: 12.0106},
	{Number: 7, Symbol: "N", Weight: 14.006855},
	{Number: 8, Symbol: "O", Weight: 15.9994},
	{Number: 9, Symbol: "F", Weight: 18.998403163},
	{Number: 10, Symbol: "Ne", Weight: 20.1797},
	{Number: 11, Symbol: "Na", Weight: 22.98976928},
	{Number: 12, Symbol: "Mg", Weight: 24.3055},
	{Number: 13, Symbol: "Al", Weight: 26.9815385},
	{Number: 14, Symbol: "Si", Weight: 28.085},
	{Number: 15, Symbol: "P", Weight: 30.973761998},
	{Number: 16, Symbol: "S", Weight: 32.0675},
	{Number: 17, Symbol: "Cl", Weight: 35.4515},
	{Number: 18, Symbol: "Ar", Weight: 39.948},
	{Number: 19, Symbol: "K", Weight: 39.0983},
	{Number: 20, Symbol: "Ca", Weight: 40.078},
	{Number: 21, Symbol: "Sc", Weight: 44.955908},
	{Number: 22, Symbol: "Ti", Weight: 47.867},
	{Number: 23, Symbol: "V", Weight: 50.9415},
	{Number: 24, Symbol: "Cr", Weight: 51.9961},
	{Number: 25, Symbol: "Mn", Weight: 54.938044},
	{Number: 26, Symbol: "Fe", Weight: 55.845},
	{Number: 27, Symbol: "Co", Weight: 58.933194},
	{Number: 28, Symbol: "Ni", Weight: 58.6934},
	{Number: 29, Symbol: "Cu", Weight: 63.546},
	{Number: 30, Symbol: "Zn", Weight: 65.38},
	{Number: 31, Symbol: "Ga", Weight: 69.723},
	{Number: 32, Symbol: "Ge", Weight: 72.630},
	{Number: 33, Symbol: "As", Weight: 74.921595},
	{Number: 34, Symbol: "Se", Weight: 78.971},
	{Number: 35, Symbol: "Br", Weight: 79.904},
	{Number: 36, Symbol: "Kr", Weight: 83.798},
	{Number: 37, Symbol: "Rb", Weight: 85.4678},
	{Number: 38, Symbol: "Sr", Weight: 87.62},
	{Number: 39, Symbol: "Y", Weight: 88.90584},
	{Number: 40, Symbol: "Zr", Weight: 91.224},
	{Number: 41, Symbol: "Nb", Weight: 92.90637},
	{Number: 42, Symbol: "Mo", Weight: 95.95},
	{Number: 43, Symbol: "Tc", StableIsotope: 97, IsotopeMass: 96.9063667},
	{Number: 44, Symbol: "Ru", Weight: 101.07},
	{Number: 45, Symbol: "Rh", Weight: 102.90550},
	{Number: 46, Symbol: "Pd", Weight: 106.42},
	{Number: 47, Symbol: "Ag", Weight: 107.8682},
	{Number: 48, Symbol: "Cd", Weight: 112.414},
	{Number: 49, Symbol: "In", Weight: 114.818},
	{Number: 50, Symbol: "Sn", Weight: 118.710},
	{Number: 51, Symbol: "Sb", Weight: 121.760},
	{Number: 52, Symbol: "Te", Weight: 127.60},
	{Number: 53, Symbol: "I", Weight: 126.90447},
	{Number: 54, Symbol: "Xe", Weight: 131.293},
	{Number: 55, Symbol: "Cs", Weight: 132.90545196},
	{Number: 56, Symbol: "Ba", Weight: 137.327},
	{Number: 57, Symbol: "La", Weight: 138.90547},
	{Number: 58, Symbol: "Ce", Weight: 140.116},
	{Number: 59, Symbol: "Pr", Weight: 140.90766},
	{Number: 60, Symbol: "Nd", Weight: 144.242},
	{Number: 61, Symbol: "Pm", StableIsotope: 145, IsotopeMass: 144.9127559},
	{Number: 62, Symbol: "Sm", Weight: 150.36},
	{Number: 63, Symbol: "Eu", Weight: 151.964},
	{Number: 64, Symbol: "Gd", Weight: 157.25},
	{Number: 65, Symbol: "Tb", Weight: 158.92535},
	{Number: 66, Symbol: "Dy", Weight: 162.500},
	{Number: 67, Symbol: "Ho", Weight: 164.93033},
	{Number: 68, Symbol: "Er", Weight: 167.259},
	{Number: 69, Symbol: "Tm", Weight: 168.93422},
	{Number: 70, Symbol: "Yb", Weight: 173.054},
	{Number: 71, Symbol: "Lu", Weight: 174.9668},
	{Number: 72, Symbol: "Hf", Weight: 178.49},
	{Number: 73, Symbol: "Ta", Weight: 180.94788},
	{Number: 74, Symbol: "W", Weight: 183.84},
	{Number: 75, Symbol: "Re", Weight: 186.207},
	{Number: 76, Symbol: "Os", Weight: 190.23},
	{Number: 77, Symbol: "Ir", Weight: 192.217},
	{Number: 78, Symbol: "Pt", Weight: 195.084},
	{Number: 79, Symbol: "Au", Weight: 196.966569},
	{Number: 80, Symbol: "Hg", Weight: 200.592},
	{Number: 81, Symbol: "Tl", Weight: 204.3835},
	{Number: 82, Symbol: "Pb", Weight: 207.2},
	{Number: 83, Symbol: "Bi", Weight: 208.98040},
	{Number: 84, Symbol: "Po", StableIsotope: 209, IsotopeMass: 208.9824308},
	{Number: 85, Symbol: "At", StableIsotope: 210, IsotopeMass: 209.9871479},
	{Number: 86, Symbol: "Rn", StableIsotope: 222, IsotopeMass: 222.0175782},
	{Number: 87, Symbol: "Fr", StableIsotope: 223, IsotopeMass: 223.019736},
	{Number: 88, Symbol: "Ra", StableIsotope: 226, IsotopeMass: 226.0254103},
	{Number: 89, Symbol: "Ac", StableIsotope: 227, IsotopeMass: 227.0277523},
	{Number: 90, Symbol: "Th", Weight: 232.0377},
	{Number: 91, Symbol: "Pa", Weight: 231.03588},
	{Number: 92, Symbol: "U", Weight: 238.02891},
	{Number: 93, Symbol: "Np", StableIsotope: 237, IsotopeMass: 237.0481736},
	{Number: 94, Symbol: "Pu", StableIsotope: 244, IsotopeMass: 244.0642053},
	{Number: 95, Symbol: "Am", StableIsotope: 243, IsotopeMass: 243.0613813},
	{Number: 96, Symbol: "Cm", StableIsotope: 247, IsotopeMass: 247.0703541},
	{Number: 97, Symbol: "Bk", StableIsotope: 247, IsotopeMass: 247.0703073},
	{Number: 98, Symbol: "Cf", StableIsotope: 251, IsotopeMass: 251.0795886},
	{Number: 99, Symbol: "Es", StableIsotope: 252, IsotopeMass: 252.08298},
	{Number: 100, Symbol: "Fm", StableIsotope: 257, IsotopeMass: 257.0951061},
	{Number: 101, Symbol: "Md", StableIsotope: 258, IsotopeMass: 258.0984315},
	{Number: 102, Symbol: "No", StableIsotope: 259, IsotopeMass: 259.10103},
	{Number: 103, Symbol: "Lr", StableIsotope: 262, IsotopeMass: 262.10961},
	{Number: 104, Symbol: "Rf", StableIsotope: 267, IsotopeMass: 267.12179},
	{Number: 105, Symbol: "Db", StableIsotope: 268, IsotopeMass: 268.12567},
	{Number: 106, Symbol: "Sg", StableIsotope: 269, IsotopeMass: 269.12863},
	{Number: 107, Symbol: "Bh", StableIsotope: 270, IsotopeMass: 270.13336},
	{Number: 108, Symbol: "Hs", StableIsotope: 269, IsotopeMass: 269.13375},
	{Number: 109, Symbol: "Mt", StableIsotope: 278, IsotopeMass: 278.15631},
	{Number: 110, Symbol: "Ds", StableIsotope: 281, IsotopeMass: 281.16451},
	{Number: 111, Symbol: "Rg", StableIsotope: 282, IsotopeMass: 282.16912},
	{Number: 112, Symbol: "Cn", StableIsotope: 285, IsotopeMass: 285.17712},
	{Number: 113, Symbol: "Nh", StableIsotope: 286, IsotopeMass: 286.18221},
	{Number: 114, Symbol: "Fl", StableIsotope: 289, IsotopeMass: 289.19042},
	{Number: 115, Symbol: "Mc", StableIsotope: 289, IsotopeMass: 289.19363},
	{Number: 116, Symbol: "Lv", StableIsotope: 293, IsotopeMass: 293.20449},
	{Number: 117, Symbol: "Ts", StableIsotope: 294, IsotopeMass: 294.21046},
	{Number: 118, Symbol: "Og", StableIsotope: 294, IsotopeMass: 294.21392},
}
