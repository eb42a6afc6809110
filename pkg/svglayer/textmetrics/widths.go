package textmetrics

// glyphWidths holds the advance of each supported glyph at the calibration
// size, as a {regular, bold} pair. Runes missing from the table use 'x'.
var glyphWidths = map[rune][2]float64{
	'0': {50, 50},
	'1': {50, 50},
	'2': {50, 50},
	'3': {50, 50},
	'4': {50, 50},
	'5': {50, 50},
	'6': {50, 50},
	'7': {50, 50},
	'8': {50, 50},
	'9': {50, 50},

	' ':  {25, 25},
	'!':  {33.3046875, 33.3046875},
	'"':  {40.8203125, 55.5234375},
	'#':  {50, 50},
	'$':  {50, 50},
	'%':  {83.3046875, 100},
	'&':  {77.7890625, 83.3046875},
	'\'': {18.0234375, 27.7890625},
	'(':  {33.3046875, 33.3046875},
	')':  {33.3046875, 33.3046875},
	'*':  {50, 50},
	'+':  {56.3984375, 56.984375},
	',':  {25, 25},
	'-':  {33.3046875, 33.3046875},
	'.':  {25, 25},
	'/':  {27.7890625, 27.7890625},
	':':  {27.7890625, 33.3046875},
	';':  {27.7890625, 33.3046875},
	'<':  {56.3984375, 56.984375},
	'=':  {56.3984375, 56.984375},
	'>':  {56.3984375, 56.984375},
	'?':  {44.390625, 50},
	'@':  {92.09375, 93.0234375},
	'[':  {33.3046875, 33.3046875},
	'\\': {27.7890625, 27.7890625},
	']':  {33.3046875, 33.3046875},
	'^':  {46.9296875, 58.109375},
	'_':  {50, 50},
	'`':  {33.3046875, 33.3046875},
	'{':  {48, 39.40625},
	'|':  {20.0234375, 22.0234375},
	'}':  {48, 39.40625},
	'~':  {54.1015625, 52.0078125},

	'A': {72.21875, 72.21875},
	'B': {66.703125, 66.703125},
	'C': {66.703125, 72.21875},
	'D': {72.21875, 72.21875},
	'E': {61.0859375, 66.703125},
	'F': {55.6171875, 61.0859375},
	'G': {72.21875, 77.7890625},
	'H': {72.21875, 77.7890625},
	'I': {33.3046875, 38.921875},
	'J': {38.921875, 50},
	'K': {72.21875, 77.7890625},
	'L': {61.0859375, 66.703125},
	'M': {88.921875, 94.390625},
	'N': {72.21875, 72.21875},
	'O': {72.21875, 77.7890625},
	'P': {55.6171875, 61.0859375},
	'Q': {72.21875, 77.7890625},
	'R': {66.703125, 72.21875},
	'S': {55.6171875, 55.6171875},
	'T': {61.0859375, 66.703125},
	'U': {72.21875, 72.21875},
	'V': {72.21875, 72.21875},
	'W': {94.390625, 100},
	'X': {72.21875, 72.21875},
	'Y': {72.21875, 72.21875},
	'Z': {61.0859375, 66.703125},

	'a': {44.390625, 50},
	'b': {50, 55.6171875},
	'c': {44.390625, 44.390625},
	'd': {50, 55.6171875},
	'e': {44.390625, 44.390625},
	'f': {33.3046875, 33.3046875},
	'g': {50, 50},
	'h': {50, 55.6171875},
	'i': {27.7890625, 27.7890625},
	'j': {27.7890625, 33.3046875},
	'k': {50, 55.6171875},
	'l': {27.7890625, 27.7890625},
	'm': {77.7890625, 83.3046875},
	'n': {50, 55.6171875},
	'o': {50, 50},
	'p': {50, 55.6171875},
	'q': {50, 55.6171875},
	'r': {33.3046875, 44.390625},
	's': {38.921875, 38.921875},
	't': {27.7890625, 33.3046875},
	'u': {50, 55.6171875},
	'v': {50, 50},
	'w': {72.21875, 72.21875},
	'x': {50, 50},
	'y': {50, 50},
	'z': {44.390625, 44.390625},
}
