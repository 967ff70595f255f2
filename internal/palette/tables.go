package palette

// Palette names accepted by the rainbow color mode
const (
	Rainbow = "rainbow"
	Viridis = "viridis"
	Plasma  = "plasma"
	Magma   = "magma"
	BlueRed = "blue-red"
	Pastel  = "pastel"
)

// DefaultPalette is used when the rainbow mode is given no palette
const DefaultPalette = Rainbow

// DefaultCustomColor is the single color used by the custom mode when none is given
const DefaultCustomColor = "#4ECDC4"

// DefaultElementColor colors elements missing from the element table
const DefaultElementColor = "#FF1493"

// DefaultResidueColor colors residues missing from the amino-acid table
const DefaultResidueColor = "#BEA06E"

// paletteOrder fixes the listing order of palettes
var paletteOrder = []string{Rainbow, Viridis, Plasma, Magma, BlueRed, Pastel}

// rainbowPalettes holds the control points of every rainbow palette
var rainbowPalettes = map[string][]string{
	Rainbow: {"#0000FF", "#00FFFF", "#00FF00", "#FFFF00", "#FF8000", "#FF0000"},
	Viridis: {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89",
		"#35b779", "#6ece58", "#b5de2b", "#fde724"},
	Plasma: {"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b",
		"#ed7953", "#fb9f3a", "#fdca26", "#f0f921"},
	Magma: {"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55964",
		"#fb8861", "#fec287", "#fcfdbf"},
	BlueRed: {"#0000FF", "#FF0000"},
	Pastel:  {"#FFB3BA", "#FFDFBA", "#FFFFBA", "#BAFFC9", "#BAE1FF", "#E0BBE4"},
}

// chainColors is cycled over chains without an explicit color
var chainColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B4B4", "#52B788",
}

// namedColors are the color names accepted wherever a hex color is
var namedColors = map[string]string{
	"teal":   "#4ECDC4",
	"red":    "#FF6B6B",
	"blue":   "#4DABF7",
	"green":  "#69DB7C",
	"yellow": "#FFD93D",
	"orange": "#FF922B",
	"purple": "#DA77F2",
	"pink":   "#FF8CC8",
	"cyan":   "#15AABF",
	"gray":   "#868E96",
}

// Confidence band names
const (
	BandVeryHigh  = "very_high"
	BandConfident = "confident"
	BandLow       = "low"
	BandVeryLow   = "very_low"
)

// plddtColors maps confidence bands to colors (AlphaFold DB convention)
var plddtColors = map[string]string{
	BandVeryHigh:  "#0053D6",
	BandConfident: "#65CBF3",
	BandLow:       "#FFDB13",
	BandVeryLow:   "#FF7D45",
}

// Secondary structure classes
const (
	Helix = "helix"
	Sheet = "sheet"
	Coil  = "coil"
)

var secondaryColors = map[string]string{
	Helix: "#0FA3FF",
	Sheet: "#24B235",
	Coil:  "#E8E8E8",
}

// elementColors is the CPK table in its Jmol variant
var elementColors = map[string]string{
	"H":  "#FFFFFF",
	"C":  "#909090",
	"N":  "#3050F8",
	"O":  "#FF0D0D",
	"F":  "#90E050",
	"NA": "#AB5CF2",
	"MG": "#8AFF00",
	"P":  "#FF8000",
	"S":  "#FFFF30",
	"CL": "#1FF01F",
	"K":  "#8F40D4",
	"CA": "#3DFF00",
	"MN": "#9C7AC7",
	"FE": "#E06633",
	"CO": "#F090A0",
	"NI": "#50D050",
	"CU": "#C88033",
	"ZN": "#7D80B0",
	"SE": "#FFA100",
	"BR": "#A62929",
	"I":  "#940094",
}

// residueColors is the amino-acid table (Jmol "amino" scheme)
var residueColors = map[string]string{
	"ASP": "#E60A0A",
	"GLU": "#E60A0A",
	"CYS": "#E6E600",
	"MET": "#E6E600",
	"LYS": "#145AFF",
	"ARG": "#145AFF",
	"SER": "#FA9600",
	"THR": "#FA9600",
	"PHE": "#3232AA",
	"TYR": "#3232AA",
	"ASN": "#00DCDC",
	"GLN": "#00DCDC",
	"GLY": "#EBEBEB",
	"LEU": "#0F820F",
	"VAL": "#0F820F",
	"ILE": "#0F820F",
	"ALA": "#C8C8C8",
	"TRP": "#B45AB4",
	"HIS": "#8282D2",
	"PRO": "#DC9682",
}
