package scanner

// ParseTemperature converts the bytes strictly between ';' and '\n' into
// tenths of a degree. Grammar: -?[0-9]{1,2}\.[0-9] (measurements.txt
// grammar, spec §6). Branchless in the sense the teacher's parseFloat was:
// no loop, a fixed handful of index reads chosen by length and sign.
//
// Examples: "-0.1" -> -1, "9.9" -> 99, "-99.9" -> -999, "0.0" -> 0.
func ParseTemperature(bs []byte) int16 {
	neg := bs[0] == '-'
	if neg {
		bs = bs[1:]
	}

	// bs is now digit,'.',digit or digit,digit,'.',digit
	var whole int16
	var frac int16
	if len(bs) == 4 { // DD.D
		whole = int16(bs[0]-'0')*10 + int16(bs[1]-'0')
		frac = int16(bs[3] - '0')
	} else { // D.D
		whole = int16(bs[0] - '0')
		frac = int16(bs[2] - '0')
	}

	v := whole*10 + frac
	if neg {
		v = -v
	}
	return v
}

// SplitOnSemicolon separates a line (without its trailing '\n') into the
// station name and the temperature bytes, scanning for ';' from the end:
// the ';' and the temperature after it take at most 6 bytes (";-99.9"), so
// a reverse scan over the last 6 bytes finds it in far fewer comparisons than a
// forward scan past a name that may run up to 100 bytes (spec §4.1, §9).
func SplitOnSemicolon(line []byte) (name, temp []byte) {
	tail := line
	offset := len(line) - 6
	if offset < 0 {
		offset = 0
	}
	tail = line[offset:]
	if i := FindByteReverse(tail, ';'); i != noIndex {
		semi := offset + i
		return line[:semi], line[semi+1:]
	}
	// the ';' lies before the 6-byte tail window (a temp suffix longer than
	// the grammar allows): fall back to a full reverse scan.
	if i := FindByteReverse(line, ';'); i != noIndex {
		return line[:i], line[i+1:]
	}
	panic("scanner: no semicolon found in line")
}
