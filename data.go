package periodictable

// Element data for the built-in table: standard atomic weights in u,
// covalent radii in Å (Cordero et al. 2008), and bulk densities in g/cm³
// at standard conditions. A density of 0 means unknown.

type elementEntry struct {
	symbol  string
	number  int
	mass    float64
	radius  float64
	density float64
}

var elementData = []elementEntry{
	{"H", 1, 1.008, 0.31, 0.00008988},
	{"He", 2, 4.002602, 0.28, 0.0001785},
	{"Li", 3, 6.94, 1.28, 0.534},
	{"Be", 4, 9.0121831, 0.96, 1.85},
	{"B", 5, 10.81, 0.84, 2.37},
	{"C", 6, 12.011, 0.76, 2.267},
	{"N", 7, 14.007, 0.71, 0.0012506},
	{"O", 8, 15.999, 0.66, 0.001429},
	{"F", 9, 18.998403163, 0.57, 0.001696},
	{"Ne", 10, 20.1797, 0.58, 0.0008999},
	{"Na", 11, 22.98976928, 1.66, 0.971},
	{"Mg", 12, 24.305, 1.41, 1.738},
	{"Al", 13, 26.9815385, 1.21, 2.699},
	{"Si", 14, 28.085, 1.11, 2.3296},
	{"P", 15, 30.973761998, 1.07, 1.82},
	{"S", 16, 32.06, 1.05, 2.067},
	{"Cl", 17, 35.45, 1.02, 0.003214},
	{"Ar", 18, 39.948, 1.06, 0.0017837},
	{"K", 19, 39.0983, 2.03, 0.862},
	{"Ca", 20, 40.078, 1.76, 1.54},
	{"Sc", 21, 44.955908, 1.70, 2.989},
	{"Ti", 22, 47.867, 1.60, 4.506},
	{"V", 23, 50.9415, 1.53, 6.0},
	{"Cr", 24, 51.9961, 1.39, 7.15},
	{"Mn", 25, 54.938044, 1.39, 7.3},
	{"Fe", 26, 55.845, 1.32, 7.874},
	{"Co", 27, 58.933194, 1.26, 8.86},
	{"Ni", 28, 58.6934, 1.24, 8.912},
	{"Cu", 29, 63.546, 1.32, 8.96},
	{"Zn", 30, 65.38, 1.22, 7.134},
	{"Ga", 31, 69.723, 1.22, 5.907},
	{"Ge", 32, 72.630, 1.20, 5.323},
	{"As", 33, 74.921595, 1.19, 5.776},
	{"Se", 34, 78.971, 1.20, 4.809},
	{"Br", 35, 79.904, 1.20, 3.122},
	{"Kr", 36, 83.798, 1.16, 0.003733},
	{"Rb", 37, 85.4678, 2.20, 1.532},
	{"Sr", 38, 87.62, 1.95, 2.64},
	{"Y", 39, 88.90584, 1.90, 4.469},
	{"Zr", 40, 91.224, 1.75, 6.506},
	{"Nb", 41, 92.90637, 1.64, 8.57},
	{"Mo", 42, 95.95, 1.54, 10.22},
	{"Tc", 43, 98, 1.47, 11.5},
	{"Ru", 44, 101.07, 1.46, 12.37},
	{"Rh", 45, 102.90550, 1.42, 12.41},
	{"Pd", 46, 106.42, 1.39, 12.02},
	{"Ag", 47, 107.8682, 1.45, 10.501},
	{"Cd", 48, 112.414, 1.44, 8.69},
	{"In", 49, 114.818, 1.42, 7.31},
	{"Sn", 50, 118.710, 1.39, 7.287},
	{"Sb", 51, 121.760, 1.39, 6.685},
	{"Te", 52, 127.60, 1.38, 6.232},
	{"I", 53, 126.90447, 1.39, 4.93},
	{"Xe", 54, 131.293, 1.40, 0.005887},
	{"Cs", 55, 132.90545196, 2.44, 1.873},
	{"Ba", 56, 137.327, 2.15, 3.594},
	{"La", 57, 138.90547, 2.07, 6.145},
	{"Ce", 58, 140.116, 2.04, 6.77},
	{"Pr", 59, 140.90766, 2.03, 6.773},
	{"Nd", 60, 144.242, 2.01, 7.007},
	{"Pm", 61, 145, 1.99, 7.26},
	{"Sm", 62, 150.36, 1.98, 7.52},
	{"Eu", 63, 151.964, 1.98, 5.243},
	{"Gd", 64, 157.25, 1.96, 7.895},
	{"Tb", 65, 158.92535, 1.94, 8.229},
	{"Dy", 66, 162.500, 1.92, 8.55},
	{"Ho", 67, 164.93033, 1.92, 8.795},
	{"Er", 68, 167.259, 1.89, 9.066},
	{"Tm", 69, 168.93422, 1.90, 9.321},
	{"Yb", 70, 173.045, 1.87, 6.965},
	{"Lu", 71, 174.9668, 1.87, 9.84},
	{"Hf", 72, 178.49, 1.75, 13.31},
	{"Ta", 73, 180.94788, 1.70, 16.654},
	{"W", 74, 183.84, 1.62, 19.25},
	{"Re", 75, 186.207, 1.51, 21.02},
	{"Os", 76, 190.23, 1.44, 22.587},
	{"Ir", 77, 192.217, 1.41, 22.562},
	{"Pt", 78, 195.084, 1.36, 21.46},
	{"Au", 79, 196.966569, 1.36, 19.282},
	{"Hg", 80, 200.592, 1.32, 13.5336},
	{"Tl", 81, 204.38, 1.45, 11.85},
	{"Pb", 82, 207.2, 1.46, 11.342},
	{"Bi", 83, 208.98040, 1.48, 9.807},
	{"Po", 84, 209, 1.40, 9.32},
	{"At", 85, 210, 1.50, 0},
	{"Rn", 86, 222, 1.50, 0.00973},
	{"Fr", 87, 223, 2.60, 0},
	{"Ra", 88, 226, 2.21, 5.5},
	{"Ac", 89, 227, 2.15, 10.07},
	{"Th", 90, 232.0377, 2.06, 11.72},
	{"Pa", 91, 231.03588, 2.00, 15.37},
	{"U", 92, 238.02891, 1.96, 18.95},
}

// Isotope masses in u for the commonly substituted elements. A mass number
// absent from this table does not exist for the purposes of resolution.
var isotopeMasses = map[string]map[int]float64{
	"H":  {1: 1.00782503207, 2: 2.0141017778, 3: 3.0160492777},
	"He": {3: 3.0160293, 4: 4.0026032},
	"Li": {6: 6.015122795, 7: 7.01600455},
	"B":  {10: 10.0129370, 11: 11.0093054},
	"C":  {12: 12.0, 13: 13.0033548378},
	"N":  {14: 14.0030740048, 15: 15.0001088982},
	"O":  {16: 15.99491461956, 17: 16.99913170, 18: 17.9991610},
	"F":  {19: 18.99840322},
	"Na": {23: 22.9897692809},
	"Mg": {24: 23.985041700, 25: 24.98583692, 26: 25.982592929},
	"Al": {27: 26.98153863},
	"Si": {28: 27.9769265325, 29: 28.976494700, 30: 29.97377017},
	"P":  {31: 30.97376163},
	"S":  {32: 31.97207100, 33: 32.97145876, 34: 33.96786690, 36: 35.96708076},
	"Cl": {35: 34.96885268, 37: 36.96590259},
	"K":  {39: 38.96370668, 40: 39.96399848, 41: 40.96182576},
	"Ca": {40: 39.96259098, 42: 41.95861801, 43: 42.9587666, 44: 43.9554818, 46: 45.9536926, 48: 47.952534},
	"Ti": {46: 45.9526316, 47: 46.9517631, 48: 47.9479463, 49: 48.9478700, 50: 49.9447912},
	"Cr": {50: 49.9460442, 52: 51.9405075, 53: 52.9406494, 54: 53.9388804},
	"Fe": {54: 53.9396105, 56: 55.9349375, 57: 56.9353940, 58: 57.9332756},
	"Ni": {58: 57.9353429, 60: 59.9307864, 61: 60.9310560, 62: 61.9283451, 64: 63.9279660},
	"Cu": {63: 62.9295975, 65: 64.9277895},
	"Zn": {64: 63.9291422, 66: 65.9260334, 67: 66.9271273, 68: 67.9248442, 70: 69.9253193},
	"Ag": {107: 106.905097, 109: 108.904752},
	"Au": {197: 196.9665687},
	"Pb": {204: 203.9730436, 206: 205.9744653, 207: 206.9758969, 208: 207.9766521},
	"U":  {234: 234.0409521, 235: 235.0439299, 238: 238.0507882},
}

// Isotopes with a symbol of their own. They resolve like elements and render
// under that symbol.
var specialIsotopes = map[string]struct {
	element string
	massNum int
}{
	"D": {"H", 2},
	"T": {"H", 3},
}
